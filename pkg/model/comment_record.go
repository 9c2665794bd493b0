package model

import (
	"strconv"

	"github.com/spf13/cast"
)

// ColumnOrder 主表的固定列顺序。下游工具依赖列名和列顺序，不能调整
var ColumnOrder = []string{
	"video_id",
	"video_title",
	"channel_title",
	"publish_date",
	"topic",
	"quote",
	"comment_likes",
}

// CommentRecord 表示一条评论观点记录
type CommentRecord struct {
	VideoID      string `json:"video_id"`
	VideoTitle   string `json:"video_title"`
	ChannelTitle string `json:"channel_title"`
	PublishDate  string `json:"publish_date"` // ISO 日期字符串
	Topic        string `json:"topic"`
	Quote        string `json:"quote"`
	CommentLikes int    `json:"comment_likes"`
}

// RecordKey 是 (video_id, quote) 组成的身份键，用于去重
type RecordKey struct {
	VideoID string
	Quote   string
}

// Key 返回记录的身份键
func (r CommentRecord) Key() RecordKey {
	return RecordKey{VideoID: r.VideoID, Quote: r.Quote}
}

// HasIdentity 判断身份字段是否齐全，身份字段不全的记录不允许进主表
func (r CommentRecord) HasIdentity() bool {
	return r.VideoID != "" && r.Quote != ""
}

// ToRow 按 ColumnOrder 的顺序输出一行 CSV 值
func (r CommentRecord) ToRow() []string {
	return []string{
		r.VideoID,
		r.VideoTitle,
		r.ChannelTitle,
		r.PublishDate,
		r.Topic,
		r.Quote,
		strconv.Itoa(r.CommentLikes),
	}
}

// RecordFromRow 根据表头把一行 CSV 值还原为记录。
// 按列名映射而不是按位置，历史文件列顺序不同也能正确读取
func RecordFromRow(header, row []string) CommentRecord {
	values := make(map[string]string, len(header))
	for i, col := range header {
		if i < len(row) {
			values[col] = row[i]
		}
	}
	return CommentRecord{
		VideoID:      values["video_id"],
		VideoTitle:   values["video_title"],
		ChannelTitle: values["channel_title"],
		PublishDate:  values["publish_date"],
		Topic:        values["topic"],
		Quote:        values["quote"],
		CommentLikes: cast.ToInt(values["comment_likes"]),
	}
}
