package service

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"comments-ingest/pkg/model"
	"comments-ingest/pkg/store"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// CommentsFileSuffix 识别评论提取输出文件的固定后缀
const CommentsFileSuffix = "_COMMENTS.txt"

// IngestService 串起整个入库管道：
// 枚举输入文件 → 清洗 → 结构校验（坏文件进隔离区）→ 规范化 → 与主表合并去重 → 原子写回
type IngestService struct {
	normalizer *RecordNormalizer
	quarantine *QuarantineSink
	store      *store.MasterStore
	inDir      string
}

func NewIngestService(inDir string, masterStore *store.MasterStore) *IngestService {
	return &IngestService{
		normalizer: NewRecordNormalizer(),
		quarantine: NewQuarantineSink(filepath.Join(inDir, QuarantineDirName)),
		store:      masterStore,
		inDir:      inDir,
	}
}

// Run 执行一次完整入库并返回统计结果。
// 文件级和记录级的问题只计数不中断，任意多的坏文件都跑得完；
// 只有主表读写失败才返回错误，且失败发生在写回之前，已有主表不会被碰
func (s *IngestService) Run(ctx context.Context) (*model.RunReport, error) {
	report := &model.RunReport{RunID: uuid.NewString()}
	startTime := time.Now()

	existing, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	files, err := s.listInputFiles()
	if err != nil {
		return nil, err
	}
	zap.S().Infof("运行 %s: 在 %s 找到 %d 个待解析文件", report.RunID, s.inDir, len(files))

	var fresh []model.CommentRecord
	for _, fp := range files {
		// 中断只允许发生在写回阶段之前，主表不会处于半写状态
		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "运行被中断，主表未修改")
		default:
		}

		filename := filepath.Base(fp)
		raw, err := os.ReadFile(fp)
		if err != nil {
			zap.S().Warnf("读取文件失败，跳过: %s, %v", fp, err)
			continue
		}
		report.FilesProcessed++

		cleaned := CleanJSONText(string(raw))
		rows, parseErr := ParseCommentRows(cleaned, filename)
		if parseErr != nil {
			if qerr := s.quarantine.Write(filename, string(raw), parseErr); qerr != nil {
				zap.S().Errorf("隔离写入失败: %v", qerr)
			}
			report.FilesQuarantined++
			continue
		}

		records, skipped := s.normalizer.Normalize(rows, filename)
		report.RecordsSkipped += skipped
		fresh = append(fresh, records...)
		zap.S().Infof("已解析 %d 条记录: %s", len(records), filename)
	}

	merged, added, duplicates := MergeDedup(existing, fresh)
	report.RecordsAdded = added
	report.DuplicatesDiscarded = duplicates
	report.TotalRecords = len(merged)

	if err := s.store.Save(merged); err != nil {
		return nil, err
	}

	report.Elapsed = time.Since(startTime)
	zap.S().Infof("入库完成: 新增 %d 条, 重复丢弃 %d 条, 跳过 %d 条, 隔离 %d 个文件, 耗时 %s",
		added, duplicates, report.RecordsSkipped, report.FilesQuarantined, report.Elapsed)
	return report, nil
}

// listInputFiles 按固定后缀枚举输入目录。
// 按文件名排序，保证跨运行的处理顺序稳定
func (s *IngestService) listInputFiles() ([]string, error) {
	entries, err := os.ReadDir(s.inDir)
	if err != nil {
		return nil, errors.Wrapf(err, "读取输入目录失败: %s", s.inDir)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), CommentsFileSuffix) {
			continue
		}
		files = append(files, filepath.Join(s.inDir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}
