package cmd

import (
	"assistant-report/pkg/util"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "assistant-report",
		Short: "智能助手查询结果转换工具",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd:   true,
			DisableNoDescFlag:   true,
			DisableDescriptions: true,
			HiddenDefaultCmd:    true,
		},
	}

	// 添加子命令
	rootCmd.AddCommand(NewConvertCommand())
	rootCmd.AddCommand(NewExportCommand())

	rootCmd.Run = func(cmd *cobra.Command, args []string) {
		zap.S().Info("使用 'convert' 子命令转换单条回复，'export' 子命令批量导出")
		cmd.Help()
	}
	rootCmd.Version = util.GetVersion().Version
	return rootCmd
}
