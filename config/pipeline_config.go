package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// PipelineConfig 入库管道的路径配置
type PipelineConfig struct {
	InDir      string `json:"inDir" yaml:"inDir"`           // 输入目录，存放 *_COMMENTS.txt 文件
	OutDir     string `json:"outDir" yaml:"outDir"`         // 输出目录，存放主表 CSV
	MasterName string `json:"masterName" yaml:"masterName"` // 主表文件名
}

func (p *PipelineConfig) Validate() []error {
	var errs = make([]error, 0)
	if p.InDir == "" {
		errs = append(errs, errors.Errorf("输入目录不能为空"))
	} else if _, err := os.Stat(p.InDir); err != nil {
		errs = append(errs, errors.Errorf("输入目录不存在: %s", p.InDir))
	}

	if p.OutDir == "" {
		errs = append(errs, errors.Errorf("输出目录不能为空"))
	} else if err := os.MkdirAll(p.OutDir, 0755); err != nil {
		// 确保输出目录存在
		errs = append(errs, errors.Errorf("创建输出目录失败: %v", err))
	}

	if p.MasterName == "" {
		errs = append(errs, errors.Errorf("主表文件名不能为空"))
	}
	return errs
}

func NewDefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		InDir:      "./comments_out",
		OutDir:     "./analysis",
		MasterName: "comments_master_table.csv",
	}
}

func (p *PipelineConfig) MasterPath() string {
	return filepath.Join(p.OutDir, p.MasterName)
}
