package store

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"comments-ingest/pkg/model"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// MasterStore 负责主表文件的读写边界：运行开始整表读入，结束时整表原子写回。
// 主表内容在运行期间是显式传递的值，这里不保存任何记录状态
type MasterStore struct {
	path string
}

func NewMasterStore(outDir, masterName string) *MasterStore {
	return &MasterStore{path: filepath.Join(outDir, masterName)}
}

func (s *MasterStore) Path() string {
	return s.path
}

// Load 读取已有主表。文件不存在视为空表；其它读取错误一律上抛，
// 读不到主表时绝不能继续跑否则会整表覆盖掉旧数据
func (s *MasterStore) Load() ([]model.CommentRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			zap.S().Infof("主表不存在，从空表开始: %s", s.path)
			return nil, nil
		}
		return nil, errors.Wrapf(err, "打开主表失败: %s", s.path)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "读取主表失败: %s", s.path)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	// 首行是表头，按列名映射，兼容列顺序不同的历史文件
	header := rows[0]
	records := make([]model.CommentRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, model.RecordFromRow(header, row))
	}

	zap.S().Infof("已加载主表: %s, 共 %d 条", s.path, len(records))
	return records, nil
}

// Save 整表覆盖写回，永远带表头。先写同目录下的临时文件再原子重命名，
// 中途崩溃不会留下半截文件被下次运行当成有效主表
func (s *MasterStore) Save(records []model.CommentRecord) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "创建输出目录失败: %s", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "创建临时文件失败")
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	writer := csv.NewWriter(tmp)
	if err := writer.Write(model.ColumnOrder); err != nil {
		tmp.Close()
		return errors.Wrap(err, "写入表头失败")
	}
	for _, rec := range records {
		if err := writer.Write(rec.ToRow()); err != nil {
			tmp.Close()
			return errors.Wrap(err, "写入记录失败")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		return errors.Wrap(err, "写出 CSV 失败")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "关闭临时文件失败")
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		return errors.Wrapf(err, "替换主表失败: %s", s.path)
	}

	zap.S().Infof("已保存主表: %s, 总行数: %d", s.path, len(records))
	return nil
}
