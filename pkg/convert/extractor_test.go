package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTableData(t *testing.T) {
	t.Run("round trip for a well formed table", func(t *testing.T) {
		text := "| H1 | H2 |\n|----|----|\n| a | b |\n| c | d |"
		block := ExtractTableData(text)
		require.NotNil(t, block)
		assert.Equal(t, []string{"H1", "H2"}, block.Headers)
		assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, block.DataRows)
	})

	t.Run("nil on prose", func(t *testing.T) {
		assert.Nil(t, ExtractTableData("没有表格的普通文字"))
	})

	t.Run("nil when separator has no neighbor rows", func(t *testing.T) {
		assert.Nil(t, ExtractTableData("标题\n|---|---|\n正文没有竖线"))
	})

	t.Run("nil when all data rows are invalid", func(t *testing.T) {
		text := "| H1 | H2 |\n|----|----|\n| 只有一列 |"
		assert.Nil(t, ExtractTableData(text))
	})

	t.Run("mismatched row is dropped", func(t *testing.T) {
		text := "| H1 | H2 |\n|----|----|\n| a | b |\n| x | y | z |\n| c | d |"
		block := ExtractTableData(text)
		require.NotNil(t, block)
		assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, block.DataRows)
	})

	t.Run("extraction stops at first blank line", func(t *testing.T) {
		text := "| H1 | H2 |\n|----|----|\n| a | b |\n\n| c | d |"
		block := ExtractTableData(text)
		require.NotNil(t, block)
		assert.Equal(t, [][]string{{"a", "b"}}, block.DataRows)
	})

	t.Run("real data table wins over placeholder example", func(t *testing.T) {
		text := "表格格式示例：\n" +
			"| 商品ID | 价格 |\n|----|----|\n| {商品ID} | {价格} |\n\n" +
			"查询结果如下：\n" +
			"| 商品ID | 价格 |\n|----|----|\n| P001 | 299.00 |"
		block := ExtractTableData(text)
		require.NotNil(t, block)
		assert.Equal(t, [][]string{{"P001", "299.00"}}, block.DataRows)
	})

	t.Run("date stamped order numbers mark the real table", func(t *testing.T) {
		text := "| 单号 | 日期 |\n|----|----|\n| {单号} | {日期} |\n\n" +
			"| 单号 | 日期 |\n|----|----|\n| PO20231025001 | 2023-10-25 |"
		block := ExtractTableData(text)
		require.NotNil(t, block)
		assert.Equal(t, "PO20231025001", block.DataRows[0][0])
	})
}

func TestExtractQueryTime(t *testing.T) {
	assert.Equal(t, "2023-10-25 14:30:00", ExtractQueryTime("查询时间：2023-10-25 14:30:00\n其他内容"))
	assert.Equal(t, "", ExtractQueryTime("没有时间信息"))
}
