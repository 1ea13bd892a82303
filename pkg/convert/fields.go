package convert

import (
	"strings"
	"unicode"
)

// labelRule 字段名翻译规则：patterns 中任意一个命中即返回 label
type labelRule struct {
	patterns []string
	label    string
}

// 字段名到中文标签的映射，按顺序求值
// 先对所有规则做一轮精确匹配，再做一轮子串匹配，具体字段要排在宽泛字段之前
var labelRules = []labelRule{
	// 供应商
	{[]string{"supplier_id"}, "供应商ID"},
	{[]string{"supplier_name"}, "供应商名称"},
	{[]string{"supplier_code"}, "供应商编码"},
	// 客户
	{[]string{"customer_id"}, "客户ID"},
	{[]string{"customer_name"}, "客户名称"},
	{[]string{"customer_code"}, "客户编码"},
	// 商品
	{[]string{"product_id"}, "商品ID"},
	{[]string{"product_name"}, "商品名称"},
	{[]string{"product_code"}, "商品编码"},
	{[]string{"category_id"}, "分类ID"},
	{[]string{"category_name", "category"}, "商品分类"},
	{[]string{"spec", "specification"}, "规格"},
	{[]string{"unit"}, "单位"},
	{[]string{"barcode"}, "条形码"},
	// 订单
	{[]string{"order_no", "order_number"}, "订单编号"},
	{[]string{"order_date"}, "下单日期"},
	{[]string{"order_status"}, "订单状态"},
	{[]string{"delivery_date"}, "交货日期"},
	{[]string{"purchase_price"}, "采购价"},
	{[]string{"sale_price", "selling_price"}, "销售价"},
	{[]string{"total_amount"}, "总金额"},
	{[]string{"paid_amount"}, "已付金额"},
	{[]string{"discount"}, "折扣"},
	// 库存
	{[]string{"stock_quantity", "stock_qty"}, "库存数量"},
	{[]string{"change_quantity", "change_qty"}, "变动数量"},
	{[]string{"change_type"}, "变动类型"},
	{[]string{"warehouse"}, "仓库"},
	{[]string{"min_stock"}, "最低库存"},
	{[]string{"max_stock"}, "最高库存"},
	// 同步配置
	{[]string{"sync_status"}, "同步状态"},
	{[]string{"sync_count"}, "同步次数"},
	{[]string{"last_sync_time"}, "最后同步时间"},
	{[]string{"sync_interval"}, "同步间隔"},
	{[]string{"api_url", "endpoint"}, "接口地址"},
	{[]string{"api_key"}, "接口密钥"},
	// 操作日志
	{[]string{"operation_type"}, "操作类型"},
	{[]string{"operation_time"}, "操作时间"},
	{[]string{"operator"}, "操作人"},
	{[]string{"module"}, "所属模块"},
	{[]string{"ip_address", "ip_addr", "client_ip"}, "IP地址"},
	{[]string{"detail", "details"}, "详细信息"},
	// 用户
	{[]string{"username", "user_name"}, "用户名"},
	{[]string{"nickname", "nick_name"}, "昵称"},
	{[]string{"real_name"}, "真实姓名"},
	{[]string{"role", "role_name"}, "角色"},
	// login_times 要先于 login_time，否则被登录时间的子串规则拦截
	{[]string{"login_count", "login_times"}, "登录次数"},
	{[]string{"login_time", "last_login"}, "登录时间"},
	{[]string{"avatar"}, "头像"},
	{[]string{"password"}, "密码"},
	// 通用联系信息，电话要排在 contact 之前让 contact_phone 命中电话规则
	{[]string{"phone", "mobile", "telephone", "tel"}, "联系电话"},
	{[]string{"email", "mail"}, "邮箱"},
	{[]string{"contact_person", "contact"}, "联系人"},
	{[]string{"address"}, "地址"},
	// 通用状态与标志
	{[]string{"is_active", "active"}, "是否激活"},
	{[]string{"is_enabled", "enabled"}, "是否启用"},
	{[]string{"is_deleted", "deleted"}, "是否删除"},
	{[]string{"is_processed", "processed"}, "是否处理"},
	{[]string{"status", "state"}, "状态"},
	// 通用数值
	{[]string{"quantity", "qty"}, "数量"},
	{[]string{"unit_price"}, "单价"},
	{[]string{"price"}, "价格"},
	{[]string{"amount"}, "金额"},
	{[]string{"count", "times"}, "次数"},
	// 时间戳
	{[]string{"created_at", "create_time", "created_time"}, "创建时间"},
	{[]string{"updated_at", "update_time", "updated_time"}, "更新时间"},
	{[]string{"deleted_at", "delete_time"}, "删除时间"},
	// 其他通用字段
	{[]string{"config_key"}, "配置项"},
	{[]string{"config_value"}, "配置值"},
	{[]string{"params", "parameters"}, "参数"},
	{[]string{"description", "desc"}, "描述"},
	{[]string{"remark", "remarks", "note", "comment"}, "备注"},
	{[]string{"sort", "sort_order"}, "排序"},
	{[]string{"version"}, "版本"},
	{[]string{"type"}, "类型"},
	{[]string{"name"}, "名称"},
	{[]string{"code"}, "编码"},
	{[]string{"id"}, "ID"},
}

// TranslateFieldLabel 将字段名翻译为中文标签
// 先做精确匹配再做子串匹配，都未命中时返回首字母大写的原字段名
func (c *Converter) TranslateFieldLabel(field string) string {
	normalized := strings.ToLower(strings.TrimSpace(field))
	if normalized == "" {
		return field
	}

	if label, ok := c.opts.FieldLabels[normalized]; ok {
		return label
	}

	// 精确匹配
	for _, rule := range labelRules {
		for _, p := range rule.patterns {
			if normalized == p {
				return rule.label
			}
		}
	}
	// 子串匹配只对纯 ASCII 字段名生效
	// 中文表头（如 商品ID）不能被英文子串规则误翻译，直接原样展示
	if isASCII(normalized) {
		for _, rule := range labelRules {
			for _, p := range rule.patterns {
				if strings.Contains(normalized, p) {
					return rule.label
				}
			}
		}
	}

	return capitalizeFirst(strings.TrimSpace(field))
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}

// capitalizeFirst 将首字符转为大写，非字母字符（如中文）原样返回
func capitalizeFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
