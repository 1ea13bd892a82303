// Package convert 实现智能助手回复的 markdown 表格转自然语言报告
// 整条流水线：检测 -> 提取 -> 分类 -> 格式化 -> 组装
// 任何一步失败都原样返回输入，绝不向调用方抛错
package convert

// Options 转换器配置
type Options struct {
	// CurrencyUnit 金额字段的货币单位前缀
	CurrencyUnit string

	// FieldLabels 自定义字段名翻译，优先于内置规则，键为小写字段名
	FieldLabels map[string]string

	// QueryKeywords 判定查询结果的标记词
	QueryKeywords []string
}

// Option 转换器的函数式配置项
type Option func(*Options)

// DefaultOptions 返回默认配置
func DefaultOptions() *Options {
	return &Options{
		CurrencyUnit:  "¥",
		FieldLabels:   map[string]string{},
		QueryKeywords: defaultQueryKeywords,
	}
}

// WithCurrencyUnit 设置货币单位
func WithCurrencyUnit(unit string) Option {
	return func(o *Options) {
		if unit != "" {
			o.CurrencyUnit = unit
		}
	}
}

// WithFieldLabels 追加自定义字段名翻译
func WithFieldLabels(labels map[string]string) Option {
	return func(o *Options) {
		for k, v := range labels {
			o.FieldLabels[k] = v
		}
	}
}

// WithQueryKeywords 追加查询结果标记词
func WithQueryKeywords(keywords ...string) Option {
	return func(o *Options) {
		o.QueryKeywords = append(o.QueryKeywords, keywords...)
	}
}

// Converter 将助手回复中的查询结果表格转换为可读报告
type Converter struct {
	opts *Options
}

// New 创建转换器
func New(opts ...Option) *Converter {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return &Converter{opts: options}
}

// Convert 转换一段助手回复
// 不含表格、不是查询结果、或提取失败时原样返回输入
func (c *Converter) Convert(text string) string {
	if !ContainsTable(text) {
		return text
	}
	if !c.IsQueryResult(text) {
		return text
	}

	block := ExtractTableData(text)
	if block == nil {
		return text
	}

	recordType := ClassifyRecordType(block.Headers, text)
	return c.BuildReport(block, recordType, ExtractQueryTime(text))
}
