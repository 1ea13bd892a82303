package convert

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	c := New()

	t.Run("identity on non tabular input", func(t *testing.T) {
		text := "好的，已经为您创建了新的商品记录。"
		assert.Equal(t, text, c.Convert(text))
	})

	t.Run("identity on table that is not a query result", func(t *testing.T) {
		text := "字段说明如下：\n| 字段 | 含义 |\n|------|------|\n| name | 名称 |"
		assert.Equal(t, text, c.Convert(text))
	})

	t.Run("identity when extraction yields no valid rows", func(t *testing.T) {
		text := "查询结果：\n| H1 | H2 |\n|----|----|\n| 只有一列 |"
		assert.Equal(t, text, c.Convert(text))
	})

	t.Run("product query result becomes an itemized report", func(t *testing.T) {
		text := "商品数据库查询结果\n" +
			"查询时间：2023-10-25 14:30:00\n" +
			"| 商品ID | 商品名称 |\n" +
			"|--------|----------|\n" +
			"| P001 | 无线蓝牙耳机 |\n" +
			"| P002 | 不锈钢保温杯 |"

		out := c.Convert(text)
		require.NotEqual(t, text, out)
		assert.Contains(t, out, "商品查询结果")
		assert.Contains(t, out, "2023-10-25 14:30:00")
		assert.Contains(t, out, "共 2 条记录")
		assert.Contains(t, out, "记录 1")
		assert.Contains(t, out, "商品ID：P001")
		assert.Contains(t, out, "记录 2")
		assert.Contains(t, out, "商品ID：P002")
	})

	t.Run("supplier report formats values by field semantics", func(t *testing.T) {
		text := "供应商数据库查询结果\n" +
			"| supplier_name | phone | is_active | created_at |\n" +
			"|----|----|----|----|\n" +
			"| 华南电子 | 13800001111 | true | 2023-10-25 14:30:00 |"

		out := c.Convert(text)
		assert.Contains(t, out, "供应商查询结果")
		assert.Contains(t, out, "供应商名称：华南电子")
		assert.Contains(t, out, "联系电话：138-0000-1111")
		assert.Contains(t, out, "是否激活：激活")
		assert.Contains(t, out, "创建时间：2023-10-25 14:30:00")
	})

	t.Run("report selects the real table when an example precedes it", func(t *testing.T) {
		text := "查询结果：\n" +
			"示例格式：\n| order_no | total_amount |\n|----|----|\n| {单号} | {金额} |\n\n" +
			"实际数据：\n| order_no | total_amount |\n|----|----|\n| SO20231025001 | 1299.50 |"

		out := c.Convert(text)
		assert.Contains(t, out, "订单编号：SO20231025001")
		assert.Contains(t, out, "总金额：¥1,299.50")
		assert.NotContains(t, out, "{单号}")
	})
}

func TestBuildReport(t *testing.T) {
	c := New()

	t.Run("empty cells are skipped", func(t *testing.T) {
		block := &TableBlock{
			Headers:  []string{"name", "remark"},
			DataRows: [][]string{{"测试", ""}},
		}
		out := c.BuildReport(block, RecordTypeGeneric, "")
		assert.Contains(t, out, "名称：测试")
		assert.NotContains(t, out, "备注")
	})

	t.Run("missing query time is omitted", func(t *testing.T) {
		block := &TableBlock{Headers: []string{"name"}, DataRows: [][]string{{"a"}}}
		out := c.BuildReport(block, RecordTypeGeneric, "")
		assert.NotContains(t, out, "查询时间")
		assert.Contains(t, out, "共 1 条记录")
	})

	t.Run("rows are numbered from one", func(t *testing.T) {
		block := &TableBlock{
			Headers:  []string{"name"},
			DataRows: [][]string{{"a"}, {"b"}, {"c"}},
		}
		out := c.BuildReport(block, RecordTypeGeneric, "2023-10-25 14:30:00")
		assert.Contains(t, out, "查询时间：2023-10-25 14:30:00")
		for _, n := range []string{"记录 1", "记录 2", "记录 3"} {
			assert.Contains(t, out, n)
		}
		assert.Equal(t, 1, strings.Count(out, "如需进一步筛选"))
	})
}
