package convert

import (
	"strings"
)

// 查询结果标记词，命中任意一个即认为文本是数据库查询结果
// （智能助手返回的普通表格说明文档不做转换）
var defaultQueryKeywords = []string{
	"查询结果",
	"数据库查询",
	"query result",
	"database query",
}

// ContainsTable 判断文本中是否包含 markdown 表格
// 条件：至少存在一行竖线分隔的内容，且存在包含 --- 的竖线分隔行（表头分隔行）
func ContainsTable(text string) bool {
	if !strings.Contains(text, "|") {
		return false
	}
	for _, line := range strings.Split(text, "\n") {
		if isSeparatorLine(line) {
			return true
		}
	}
	return false
}

// isSeparatorLine 判断是否为表头分隔行，如 |----|----| 或 | :--- | ---: |
func isSeparatorLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.Contains(trimmed, "|") || !strings.Contains(trimmed, "---") {
		return false
	}
	for _, r := range trimmed {
		switch r {
		case '|', '-', ':', ' ', '\t':
		default:
			return false
		}
	}
	return true
}

// IsQueryResult 判断文本是否为数据库查询结果
// 只有查询结果才做转换，其他表格内容原样保留交给 markdown 渲染
func (c *Converter) IsQueryResult(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range c.opts.QueryKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
