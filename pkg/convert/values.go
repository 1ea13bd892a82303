package convert

import (
	"encoding/json"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cast"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var numberPrinter = message.NewPrinter(language.SimplifiedChinese)

var nonDigitRegex = regexp.MustCompile(`\D`)

// 日期解析按顺序尝试的格式
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
}

// FormatFieldValue 按字段语义格式化单元格的值
// 任何解析或格式化失败都退回原始值，保证本函数永不报错
func (c *Converter) FormatFieldValue(field, value string) string {
	value = strings.TrimSpace(value)
	normalized := strings.ToLower(strings.TrimSpace(field))

	// 1. 空值统一展示为占位符
	switch strings.ToLower(value) {
	case "", "-", "none", "null", "nil":
		return "-"
	}

	// 2. 布尔字面量：true/false 一律转换，1/0 只在标志类字段上转换
	// 避免把数量字段里的 1 误转成"是"
	switch strings.ToLower(value) {
	case "true":
		return boolLabel(normalized, true)
	case "false":
		return boolLabel(normalized, false)
	case "1":
		if isFlagField(normalized) {
			return boolLabel(normalized, true)
		}
	case "0":
		if isFlagField(normalized) {
			return boolLabel(normalized, false)
		}
	}

	// 3. 电话字段要先于通用数字处理，11 位手机号不能按千分位分组
	if isPhoneField(normalized) {
		return formatPhone(value)
	}

	// 4. 邮箱原样展示
	if isEmailField(normalized) {
		return value
	}

	// 5. 状态字段：已带状态符号的值原样保留，已知状态码翻译为中文
	if isStatusField(normalized) {
		return formatStatus(value)
	}

	// 6. 操作/变动类型字段：事务动词翻译为中文
	if isOperationField(normalized) {
		return formatOperation(value)
	}

	// 7. 次数字段要先于日期分支，login_times 不能被 time 子串带进日期解析
	if isCountField(normalized) {
		if f, err := cast.ToFloat64E(value); err == nil {
			return numberPrinter.Sprint(number.Decimal(f)) + "次"
		}
		return value
	}

	// 8. 日期时间字段
	if isDateField(normalized) {
		return formatDate(normalized, value)
	}

	// 9. JSON 字段
	if isJSONField(normalized) {
		return formatJSON(value)
	}

	// 10. 数字：金额字段带货币单位和两位小数，其余千分位分组
	if f, err := cast.ToFloat64E(value); err == nil {
		switch {
		case isCurrencyField(normalized):
			return c.opts.CurrencyUnit + numberPrinter.Sprint(number.Decimal(f, number.Scale(2)))
		case f == math.Trunc(f) && math.Abs(f) < 1e15:
			return numberPrinter.Sprintf("%d", int64(f))
		default:
			return numberPrinter.Sprint(number.Decimal(f))
		}
	}

	// 11. 兜底：原样返回
	return value
}

func fieldContainsAny(field string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(field, kw) {
			return true
		}
	}
	return false
}

func isFlagField(field string) bool {
	return fieldContainsAny(field, "is_", "active", "enabled", "enable", "processed", "flag", "是否", "激活", "启用")
}

func isPhoneField(field string) bool {
	return fieldContainsAny(field, "phone", "mobile", "telephone", "tel", "电话", "手机")
}

func isEmailField(field string) bool {
	return fieldContainsAny(field, "email", "mail", "邮箱")
}

func isStatusField(field string) bool {
	return fieldContainsAny(field, "status", "state", "状态")
}

func isOperationField(field string) bool {
	return fieldContainsAny(field, "operation_type", "change_type", "action", "操作类型", "变动类型")
}

func isDateField(field string) bool {
	return fieldContainsAny(field, "time", "date", "_at", "时间", "日期")
}

func isJSONField(field string) bool {
	return fieldContainsAny(field, "json", "params", "config_value", "detail", "extra", "参数", "配置值")
}

func isCurrencyField(field string) bool {
	return fieldContainsAny(field, "price", "amount", "cost", "fee", "价", "金额", "费用")
}

// isCountField 按 _ 分段后整词比较
// 子串匹配会把 discount 误判为次数，把 login_times 漏判给日期分支
func isCountField(field string) bool {
	if strings.Contains(field, "次数") {
		return true
	}
	for _, token := range strings.FieldsFunc(field, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	}) {
		if token == "count" || token == "times" {
			return true
		}
	}
	return false
}

// boolLabel 按字段名选择布尔值的中文标签对
func boolLabel(field string, v bool) string {
	pair := func(yes, no string) string {
		if v {
			return yes
		}
		return no
	}
	switch {
	case fieldContainsAny(field, "active", "激活"):
		return pair("激活", "未激活")
	case fieldContainsAny(field, "enabled", "enable", "启用"):
		return pair("启用", "禁用")
	case fieldContainsAny(field, "processed", "处理"):
		return pair("已处理", "未处理")
	case fieldContainsAny(field, "sync", "同步"):
		return pair("已同步", "未同步")
	case fieldContainsAny(field, "deleted", "删除"):
		return pair("已删除", "未删除")
	default:
		return pair("是", "否")
	}
}

// 已带展示符号的状态值直接原样保留
var statusGlyphs = []string{"✅", "❌", "⚠", "🔄", "⏸", "✓", "✗"}

var statusLabels = map[string]string{
	"SUCCESS":    "成功",
	"FAILED":     "失败",
	"FAIL":       "失败",
	"ACTIVE":     "运行中",
	"PAUSED":     "已暂停",
	"ERROR":      "错误",
	"PENDING":    "待处理",
	"PROCESSING": "处理中",
	"COMPLETED":  "已完成",
	"FINISHED":   "已完成",
	"CANCELLED":  "已取消",
	"CANCELED":   "已取消",
	"DRAFT":      "草稿",
	"CONFIRMED":  "已确认",
	"SHIPPED":    "已发货",
	"RECEIVED":   "已收货",
	"ENABLED":    "启用",
	"DISABLED":   "禁用",
}

func formatStatus(value string) string {
	for _, g := range statusGlyphs {
		if strings.Contains(value, g) {
			return value
		}
	}
	if label, ok := statusLabels[strings.ToUpper(value)]; ok {
		return label
	}
	return value
}

var operationLabels = map[string]string{
	"INSERT":    "新增",
	"CREATE":    "新增",
	"UPDATE":    "修改",
	"DELETE":    "删除",
	"SELECT":    "查询",
	"IN":        "入库",
	"STOCK_IN":  "入库",
	"OUT":       "出库",
	"STOCK_OUT": "出库",
	"ADJUST":    "调整",
	"LOGIN":     "登录",
	"LOGOUT":    "登出",
	"IMPORT":    "导入",
	"EXPORT":    "导出",
}

func formatOperation(value string) string {
	if label, ok := operationLabels[strings.ToUpper(value)]; ok {
		return label
	}
	return value
}

// formatPhone 提取数字后重新分组：11 位按 3-4-4，10 位按 3-3-4，其余原样返回
func formatPhone(value string) string {
	digits := nonDigitRegex.ReplaceAllString(value, "")
	switch len(digits) {
	case 11:
		return digits[:3] + "-" + digits[3:7] + "-" + digits[7:]
	case 10:
		return digits[:3] + "-" + digits[3:6] + "-" + digits[6:]
	default:
		return value
	}
}

// formatDate 解析日期后重新渲染
// 时间戳类字段（创建/更新/删除/操作时间等）展示到秒，普通日期字段只展示日期
func formatDate(field, value string) string {
	var parsed time.Time
	ok := false
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			parsed = t
			ok = true
			break
		}
	}
	if !ok {
		return value
	}
	if isTimestampField(field) {
		return parsed.Format("2006-01-02 15:04:05")
	}
	return parsed.Format("2006-01-02")
}

func isTimestampField(field string) bool {
	return fieldContainsAny(field, "created", "updated", "deleted", "operation", "login", "sync", "_at", "time", "时间")
}

// formatJSON 尝试解析 JSON：数组用逗号连接，对象按键排序后展示键值对
// 解析失败原样返回，绝不抛错
func formatJSON(value string) string {
	var parsed interface{}
	if err := json.Unmarshal([]byte(value), &parsed); err != nil {
		return value
	}
	switch v := parsed.(type) {
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, cast.ToString(item))
		}
		return strings.Join(parts, ", ")
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+": "+cast.ToString(v[k]))
		}
		return strings.Join(parts, ", ")
	default:
		return value
	}
}
