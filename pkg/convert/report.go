package convert

import (
	"fmt"
	"regexp"
	"strings"
)

var queryTimeRegex = regexp.MustCompile(`\d{4}-\d{2}-\d{2} \d{2}:\d{2}(:\d{2})?`)

const reportSeparator = "────────────────────────────"

// ExtractQueryTime 从文本中提取查询时间，未找到时返回空字符串
func ExtractQueryTime(text string) string {
	return queryTimeRegex.FindString(text)
}

// BuildReport 将表格数据组装为分条目的中文报告
// 固定顺序：标题、查询元信息、分隔线、逐条记录、分隔线、结尾提示
func (c *Converter) BuildReport(block *TableBlock, recordType RecordType, queryTime string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 %s查询结果\n\n", recordType.Label()))
	if queryTime != "" {
		b.WriteString(fmt.Sprintf("查询时间：%s\n", queryTime))
	}
	b.WriteString(fmt.Sprintf("共 %d 条记录\n", len(block.DataRows)))
	b.WriteString(reportSeparator + "\n")

	for i, row := range block.DataRows {
		b.WriteString(fmt.Sprintf("\n记录 %d\n", i+1))
		for j, header := range block.Headers {
			if j >= len(row) {
				break
			}
			value := strings.TrimSpace(row[j])
			if value == "" {
				continue
			}
			label := c.TranslateFieldLabel(header)
			b.WriteString(fmt.Sprintf("- %s：%s\n", label, c.FormatFieldValue(header, value)))
		}
	}

	b.WriteString("\n" + reportSeparator + "\n")
	b.WriteString("如需进一步筛选，可以继续提问，例如按名称、状态或时间范围查询。\n")
	return b.String()
}
