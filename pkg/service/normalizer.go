package service

import (
	"comments-ingest/pkg/model"

	"github.com/spf13/cast"
	"go.uber.org/zap"
)

type RecordNormalizer struct{}

func NewRecordNormalizer() *RecordNormalizer {
	return &RecordNormalizer{}
}

// Normalize 把已验证的对象逐条映射到固定 schema。
// 字符串字段缺失补空串，comment_likes 转换失败时取 0（不因为这个字段丢整条记录）；
// 身份字段（video_id、quote）为空的记录单条丢弃并计数，不影响同文件的其它记录
func (n *RecordNormalizer) Normalize(rows []map[string]interface{}, filename string) ([]model.CommentRecord, int) {
	records := make([]model.CommentRecord, 0, len(rows))
	skipped := 0

	for i, row := range rows {
		rec := model.CommentRecord{
			VideoID:      cast.ToString(row["video_id"]),
			VideoTitle:   cast.ToString(row["video_title"]),
			ChannelTitle: cast.ToString(row["channel_title"]),
			PublishDate:  cast.ToString(row["publish_date"]),
			Topic:        cast.ToString(row["topic"]),
			Quote:        cast.ToString(row["quote"]),
			CommentLikes: likesToInt(row["comment_likes"]),
		}
		if !rec.HasIdentity() {
			zap.S().Warnf("跳过缺少身份字段的记录: %s [index %d]", filename, i)
			skipped++
			continue
		}
		records = append(records, rec)
	}

	return records, skipped
}

// likesToInt 宽容地把点赞数转成非负整数，任何转换失败都按 0 处理
func likesToInt(v interface{}) int {
	likes, err := cast.ToIntE(v)
	if err != nil || likes < 0 {
		return 0
	}
	return likes
}
