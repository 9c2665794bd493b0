package model

import "time"

// RunReport 表示单次运行的统计结果，由 CLI 层展示
type RunReport struct {
	RunID               string        `json:"run_id"`               // 本次运行的 UUID
	FilesProcessed      int           `json:"files_processed"`      // 读到的输入文件数
	FilesQuarantined    int           `json:"files_quarantined"`    // 结构校验失败被隔离的文件数
	RecordsSkipped      int           `json:"records_skipped"`      // 缺身份字段被丢弃的记录数
	RecordsAdded        int           `json:"records_added"`        // 本次新增进主表的记录数
	DuplicatesDiscarded int           `json:"duplicates_discarded"` // 与主表或本次内部重复被丢弃的记录数
	TotalRecords        int           `json:"total_records"`        // 写回后主表总行数
	Elapsed             time.Duration `json:"elapsed"`
}
