package cmd

import (
	"errors"

	"assistant-report/config"
	"assistant-report/pkg/db"
	"assistant-report/pkg/service"
	"assistant-report/pkg/signals"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewExportCommand() *cobra.Command {
	var configFilePath string
	var batchSize int

	cmd := &cobra.Command{
		Use:   "export",
		Short: "批量导出助手回复的转换报告",
		Long:  "从 MySQL 的 tbl_chat_message 表读取助手回复，转换查询结果表格后存储到 DuckDB",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := config.TryLoadFromDisk(configFilePath)
			if err != nil {
				zap.S().Errorf("读取本地配置文件错误:%s", err.Error())
				return
			}
			if errs := cfg.Validate(); len(errs) > 0 {
				zap.S().Errorf("本地配置文件验证错误:%s", errors.Join(errs...))
				return
			}

			if cfg.MySQLConfig == nil {
				zap.S().Error("MySQL 配置未设置")
				return
			}
			if cfg.DuckDBConfig == nil {
				zap.S().Error("DuckDB 配置未设置")
				return
			}

			ctx := signals.SetupSignalHandler()

			// 初始化 MySQL
			if err := db.InitMySQL(cfg.MySQLConfig); err != nil {
				zap.S().Errorf("MySQL 数据库连接错误:%s", err.Error())
				return
			}

			// 初始化 DuckDB
			if err := db.InitDuckDB(cfg.DuckDBConfig); err != nil {
				zap.S().Errorf("DuckDB 连接错误:%s", err.Error())
				return
			}

			// 执行导出
			reportService := newReportService(cfg)
			if err := reportService.ExportReports(ctx, batchSize); err != nil {
				zap.S().Errorf("导出失败:%s", err.Error())
				return
			}

			// 显示统计信息
			count, err := reportService.GetReportCount(ctx)
			if err != nil {
				zap.S().Warnf("获取统计信息失败:%s", err.Error())
			} else {
				zap.S().Infof("DuckDB 中已导出的报告数量: %d", count)
			}
		},
	}

	cmd.Flags().StringVarP(&configFilePath, "config", "c", "./etc/config.yaml", "配置文件路径")
	cmd.Flags().IntVarP(&batchSize, "batch-size", "b", 100, "批量处理大小")
	return cmd
}

func newReportService(cfg *config.GlobalConfig) *service.ReportService {
	if cfg.ConvertConfig != nil {
		return service.NewReportService(cfg.ConvertConfig.Options()...)
	}
	return service.NewReportService()
}
