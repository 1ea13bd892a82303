package convert

import (
	"strings"
)

// RecordType 表示查询结果的记录类型，按表头关键词推断，一张表只推断一次
type RecordType string

const (
	RecordTypeSupplier        RecordType = "supplier"
	RecordTypeCustomer        RecordType = "customer"
	RecordTypeProduct         RecordType = "product"
	RecordTypePurchaseOrder   RecordType = "purchase_order"
	RecordTypeSalesOrder      RecordType = "sales_order"
	RecordTypeStockRecord     RecordType = "stock_record"
	RecordTypeSyncConfig      RecordType = "sync_config"
	RecordTypeSystemAssistant RecordType = "system_assistant"
	RecordTypeOperationLog    RecordType = "operation_log"
	RecordTypeUser            RecordType = "user"
	RecordTypeGeneric         RecordType = "generic"
)

// Label 返回记录类型的中文名称，用于报告标题
func (t RecordType) Label() string {
	if label, ok := recordTypeLabels[t]; ok {
		return label
	}
	return "数据库"
}

var recordTypeLabels = map[RecordType]string{
	RecordTypeSupplier:        "供应商",
	RecordTypeCustomer:        "客户",
	RecordTypeProduct:         "商品",
	RecordTypePurchaseOrder:   "采购订单",
	RecordTypeSalesOrder:      "销售订单",
	RecordTypeStockRecord:     "库存记录",
	RecordTypeSyncConfig:      "同步配置",
	RecordTypeSystemAssistant: "智能助手",
	RecordTypeOperationLog:    "操作日志",
	RecordTypeUser:            "用户",
	RecordTypeGeneric:         "数据库",
}

// classifyRule 分类规则：命中任意一个关键词即判定为对应类型
type classifyRule struct {
	keywords []string
	result   RecordType
}

// 规则按顺序求值，先命中先生效
// 订单类排在前面，避免 采购订单 里的 商品名称 列被误判为商品
var classifyRules = []classifyRule{
	{[]string{"采购订单", "采购单号", "purchase_order", "purchase order", "po_no"}, RecordTypePurchaseOrder},
	{[]string{"销售订单", "销售单号", "sales_order", "sales order", "so_no"}, RecordTypeSalesOrder},
	{[]string{"库存记录", "库存变动", "出入库", "stock_record", "stock record", "变动类型"}, RecordTypeStockRecord},
	{[]string{"同步配置", "sync_config", "sync config", "同步状态", "同步次数"}, RecordTypeSyncConfig},
	{[]string{"智能助手", "助手配置", "assistant"}, RecordTypeSystemAssistant},
	{[]string{"操作日志", "operation_log", "operation log", "操作类型", "操作人"}, RecordTypeOperationLog},
	{[]string{"供应商", "supplier"}, RecordTypeSupplier},
	{[]string{"客户", "customer"}, RecordTypeCustomer},
	{[]string{"商品", "产品", "product", "📦"}, RecordTypeProduct},
	{[]string{"用户", "账号", "user", "username"}, RecordTypeUser},
}

// ClassifyRecordType 根据表头和全文推断记录类型
// 关键词匹配是模糊启发式，误判只影响标题展示，不影响数据本身
func ClassifyRecordType(headers []string, fullText string) RecordType {
	haystack := strings.ToLower(strings.Join(headers, " ") + " " + fullText)
	for _, rule := range classifyRules {
		for _, kw := range rule.keywords {
			if strings.Contains(haystack, strings.ToLower(kw)) {
				return rule.result
			}
		}
	}
	return RecordTypeGeneric
}
