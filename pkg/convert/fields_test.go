package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateFieldLabel(t *testing.T) {
	c := New()

	t.Run("exact match", func(t *testing.T) {
		assert.Equal(t, "供应商名称", c.TranslateFieldLabel("supplier_name"))
		assert.Equal(t, "采购价", c.TranslateFieldLabel("purchase_price"))
		assert.Equal(t, "创建时间", c.TranslateFieldLabel("created_at"))
	})

	t.Run("case and whitespace are normalized", func(t *testing.T) {
		assert.Equal(t, "客户名称", c.TranslateFieldLabel(" Customer_Name "))
	})

	t.Run("substring match", func(t *testing.T) {
		assert.Equal(t, "订单编号", c.TranslateFieldLabel("purchase_order_no"))
		assert.Equal(t, "联系电话", c.TranslateFieldLabel("contact_phone"))
	})

	t.Run("specific rule wins over generic one", func(t *testing.T) {
		// supplier_id 必须命中供应商规则而不是兜底的 id 规则
		assert.Equal(t, "供应商ID", c.TranslateFieldLabel("supplier_id"))
		assert.Equal(t, "单价", c.TranslateFieldLabel("unit_price"))
	})

	t.Run("login_times is a count label not a time label", func(t *testing.T) {
		assert.Equal(t, "登录次数", c.TranslateFieldLabel("login_times"))
		assert.Equal(t, "登录时间", c.TranslateFieldLabel("login_time"))
	})

	t.Run("unknown field falls back to capitalized name", func(t *testing.T) {
		assert.Equal(t, "Shelf_zone", c.TranslateFieldLabel("shelf_zone"))
	})

	t.Run("chinese header passes through unchanged", func(t *testing.T) {
		assert.Equal(t, "商品ID", c.TranslateFieldLabel("商品ID"))
		assert.Equal(t, "商品名称", c.TranslateFieldLabel("商品名称"))
	})

	t.Run("custom labels take precedence", func(t *testing.T) {
		custom := New(WithFieldLabels(map[string]string{"sku": "库存单位"}))
		assert.Equal(t, "库存单位", custom.TranslateFieldLabel("SKU"))
	})
}
