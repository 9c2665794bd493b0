package service

import "comments-ingest/pkg/model"

// MergeDedup 把已有主表记录和本次新解析的记录合并去重。
// 扫描顺序固定为先旧后新，(video_id, quote) 相同的只保留最先出现的一条：
// 重复运行同一批输入不会改变主表内容，重新抓取时变化过的点赞数
// 也不会覆盖首次入库的值
func MergeDedup(existing, fresh []model.CommentRecord) (merged []model.CommentRecord, added, duplicates int) {
	seen := make(map[model.RecordKey]struct{}, len(existing)+len(fresh))
	merged = make([]model.CommentRecord, 0, len(existing)+len(fresh))

	for _, rec := range existing {
		if _, ok := seen[rec.Key()]; ok {
			continue
		}
		seen[rec.Key()] = struct{}{}
		merged = append(merged, rec)
	}

	for _, rec := range fresh {
		if _, ok := seen[rec.Key()]; ok {
			duplicates++
			continue
		}
		seen[rec.Key()] = struct{}{}
		merged = append(merged, rec)
		added++
	}

	return merged, added, duplicates
}
