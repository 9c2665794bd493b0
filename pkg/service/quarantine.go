package service

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// QuarantineDirName 隔离目录名，固定建在输入目录下
const QuarantineDirName = "_debug_bad_json"

// QuarantineSink 把结构校验失败的原始文件内容落盘，供人工排查。
// 只写不读：本系统不会读回隔离区的内容
type QuarantineSink struct {
	dir string
}

func NewQuarantineSink(dir string) *QuarantineSink {
	return &QuarantineSink{dir: dir}
}

// Write 按源文件名写入隔离目录。命名是确定的：
// 重复运行遇到同一个坏文件会覆盖同名隔离文件而不是堆积副本，
// 隔离区始终只反映当前仍然失败的文件
func (q *QuarantineSink) Write(filename string, raw string, reason error) error {
	if err := os.MkdirAll(q.dir, 0755); err != nil {
		return errors.Wrapf(err, "创建隔离目录失败: %s", q.dir)
	}

	target := filepath.Join(q.dir, filepath.Base(filename))
	if err := os.WriteFile(target, []byte(raw), 0644); err != nil {
		return errors.Wrapf(err, "写入隔离文件失败: %s", target)
	}

	zap.S().Warnf("坏 JSON 已隔离: %s, 原因: %v", target, reason)
	return nil
}
