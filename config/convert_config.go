package config

import (
	"assistant-report/pkg/convert"
)

// ConvertConfig 转换器配置，全部可选
type ConvertConfig struct {
	CurrencyUnit  string            `json:"currencyUnit" yaml:"currencyUnit"`   // 货币单位前缀
	FieldLabels   map[string]string `json:"fieldLabels" yaml:"fieldLabels"`     // 自定义字段翻译，键为小写字段名
	QueryKeywords []string          `json:"queryKeywords" yaml:"queryKeywords"` // 追加的查询结果标记词
}

func (c *ConvertConfig) Validate() []error {
	return nil
}

func NewDefaultConvertConfig() *ConvertConfig {
	return &ConvertConfig{}
}

// Options 将配置展开为转换器选项
func (c *ConvertConfig) Options() []convert.Option {
	opts := make([]convert.Option, 0, 3)
	if c.CurrencyUnit != "" {
		opts = append(opts, convert.WithCurrencyUnit(c.CurrencyUnit))
	}
	if len(c.FieldLabels) > 0 {
		opts = append(opts, convert.WithFieldLabels(c.FieldLabels))
	}
	if len(c.QueryKeywords) > 0 {
		opts = append(opts, convert.WithQueryKeywords(c.QueryKeywords...))
	}
	return opts
}
