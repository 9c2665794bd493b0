package cmd

import (
	"errors"
	"os"

	"comments-ingest/config"
	"comments-ingest/pkg/service"
	"comments-ingest/pkg/signals"
	"comments-ingest/pkg/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewIngestCommand() *cobra.Command {
	var configFilePath string
	var inDir string
	var outDir string
	var masterName string

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "解析 *_COMMENTS.txt 并合并进主表",
		Long:  "扫描输入目录中 LLM 生成的评论 JSON 文件，清洗、校验、规范化后去重合并进主表 CSV；结构坏掉的文件存入隔离目录供人工排查",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.NewDefaultGlobalConfig()
			if configFilePath != "" {
				loaded, err := config.TryLoadFromDisk(configFilePath)
				if err != nil {
					zap.S().Errorf("读取本地配置文件错误:%s", err.Error())
					os.Exit(1)
				}
				cfg = loaded
			}
			if cfg.PipelineConfig == nil {
				cfg.PipelineConfig = config.NewDefaultPipelineConfig()
			}

			// 命令行参数覆盖配置文件
			if inDir != "" {
				cfg.PipelineConfig.InDir = inDir
			}
			if outDir != "" {
				cfg.PipelineConfig.OutDir = outDir
			}
			if masterName != "" {
				cfg.PipelineConfig.MasterName = masterName
			}

			if errs := cfg.Validate(); len(errs) > 0 {
				zap.S().Errorf("本地配置验证错误:%s", errors.Join(errs...))
				os.Exit(1)
			}

			ctx := signals.SetupSignalHandler()

			masterStore := store.NewMasterStore(cfg.PipelineConfig.OutDir, cfg.PipelineConfig.MasterName)
			ingestService := service.NewIngestService(cfg.PipelineConfig.InDir, masterStore)

			report, err := ingestService.Run(ctx)
			if err != nil {
				zap.S().Errorf("入库失败:%s", err.Error())
				os.Exit(1)
			}

			// 显示统计信息
			zap.S().Infof("运行 %s 统计: 处理文件 %d, 隔离文件 %d, 跳过记录 %d, 新增记录 %d, 丢弃重复 %d, 主表总行数 %d",
				report.RunID, report.FilesProcessed, report.FilesQuarantined,
				report.RecordsSkipped, report.RecordsAdded, report.DuplicatesDiscarded,
				report.TotalRecords)
		},
	}

	cmd.Flags().StringVarP(&configFilePath, "config", "c", "", "配置文件路径")
	cmd.Flags().StringVar(&inDir, "in", "", "输入目录（存放 *_COMMENTS.txt 文件）")
	cmd.Flags().StringVar(&outDir, "out", "", "输出目录（存放主表 CSV）")
	cmd.Flags().StringVar(&masterName, "master", "", "主表文件名")
	return cmd
}
