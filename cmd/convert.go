package cmd

import (
	"fmt"
	"io"
	"os"

	"assistant-report/config"
	"assistant-report/pkg/convert"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewConvertCommand() *cobra.Command {
	var configFilePath string
	var inputPath string
	var outputPath string
	var render bool

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "转换单条助手回复",
		Long:  "从标准输入或文件读取助手回复，识别其中的查询结果表格并转换为分条目的中文报告，不含可转换表格时原样输出",
		Run: func(cmd *cobra.Command, args []string) {
			// 配置文件可选，缺省时使用内置默认值
			var opts []convert.Option
			if cfg, err := config.TryLoadFromDisk(configFilePath); err == nil {
				if errs := cfg.Validate(); len(errs) > 0 {
					zap.S().Warnf("配置文件验证存在问题，忽略并使用默认配置")
				} else if cfg.ConvertConfig != nil {
					opts = cfg.ConvertConfig.Options()
				}
			} else {
				zap.S().Debugf("未加载配置文件，使用默认配置: %v", err)
			}

			text, err := readInput(inputPath)
			if err != nil {
				zap.S().Errorf("读取输入失败:%s", err.Error())
				return
			}

			converter := convert.New(opts...)
			result := converter.Convert(text)

			// 未发生转换且开启渲染时，把 markdown 原文渲染为终端样式
			if render && result == text {
				if rendered, rerr := renderMarkdown(result); rerr == nil {
					result = rendered
				} else {
					zap.S().Debugf("markdown 渲染失败，输出原文: %v", rerr)
				}
			}

			if err := writeOutput(outputPath, result); err != nil {
				zap.S().Errorf("写入输出失败:%s", err.Error())
			}
		},
	}

	cmd.Flags().StringVarP(&configFilePath, "config", "c", "./etc/config.yaml", "配置文件路径")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "输入文件路径，缺省时读取标准输入")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "输出文件路径，缺省时写到标准输出")
	cmd.Flags().BoolVar(&render, "render", false, "未转换时将 markdown 渲染为终端样式")
	return cmd
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

func writeOutput(path, content string) error {
	if path == "" {
		fmt.Println(content)
		return nil
	}
	return os.WriteFile(path, []byte(content), 0644)
}

func renderMarkdown(text string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(text)
}
