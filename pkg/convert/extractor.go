package convert

import (
	"regexp"
	"strings"
)

// TableBlock 表示从文本中提取出的一张表格
// 不变量：DataRows 中每一行的列数都等于 Headers 的列数
type TableBlock struct {
	Headers  []string
	DataRows [][]string
}

var (
	// 真实数据特征：ISO 日期、带两位小数的金额、日期戳单号（如 PO20231025001）
	isoDateRegex   = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	decimalRegex   = regexp.MustCompile(`\d+\.\d{2}\b`)
	stampedNoRegex = regexp.MustCompile(`[A-Z]{1,4}\d{8,}`)

	// 示例数据特征：花括号占位符 {xxx}
	placeholderRegex = regexp.MustCompile(`\{[^}]*\}`)
)

// 示例文档常见提示词，出现在表格数据中说明这是说明性示例而非查询结果
var exampleWords = []string{"示例", "例如", "example", "xxx"}

// tableCandidate 表示一个语法上合法的表格位置
type tableCandidate struct {
	headerIndex int // 表头行下标（分隔行的上一行）
	score       int
}

// ExtractTableData 从文本中提取最可能是真实查询数据的表格
// 找不到合法表格或没有合法数据行时返回 nil
func ExtractTableData(text string) *TableBlock {
	lines := strings.Split(text, "\n")

	// 1. 扫描所有语法合法的表格位置：分隔行的上下两行都必须包含竖线
	var candidates []tableCandidate
	for i := 1; i < len(lines)-1; i++ {
		if !isSeparatorLine(lines[i]) {
			continue
		}
		if !strings.Contains(lines[i-1], "|") || !strings.Contains(lines[i+1], "|") {
			continue
		}
		candidates = append(candidates, tableCandidate{
			headerIndex: i - 1,
			score:       scoreDataLines(lines, i+1),
		})
	}
	if len(candidates) == 0 {
		return nil
	}

	// 2. 多张表格时优先选择真实数据得分最高的一张
	// LLM 回复经常先给一张示例表再给真实结果表，真实表必须胜出
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.score > best.score {
			best = c
		}
	}

	// 3. 解析表头：按竖线切分、去空白、丢弃空单元格
	headers := splitRow(lines[best.headerIndex])
	if len(headers) == 0 {
		return nil
	}

	// 4. 解析数据行：遇到空行或不含竖线的行即停止
	// 列数与表头不一致的行直接丢弃，不做修补
	var rows [][]string
	for i := best.headerIndex + 2; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || !strings.Contains(line, "|") {
			break
		}
		cells := splitRow(line)
		if len(cells) != len(headers) {
			continue
		}
		rows = append(rows, cells)
	}
	if len(rows) == 0 {
		return nil
	}

	return &TableBlock{Headers: headers, DataRows: rows}
}

// scoreDataLines 对分隔行之后的数据行打分，分数越高越像真实查询数据
// 字面特征之外再加数字/日期单元格密度，避免只依赖写死的字符串
func scoreDataLines(lines []string, start int) int {
	score := 0
	numericCells := 0
	totalCells := 0

	for i := start; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || !strings.Contains(line, "|") {
			break
		}

		if isoDateRegex.MatchString(line) {
			score += 3
		}
		if decimalRegex.MatchString(line) {
			score += 2
		}
		if stampedNoRegex.MatchString(line) {
			score += 3
		}
		if placeholderRegex.MatchString(line) {
			score -= 5
		}
		lower := strings.ToLower(line)
		for _, w := range exampleWords {
			if strings.Contains(lower, w) {
				score -= 3
			}
		}

		for _, cell := range splitRow(line) {
			totalCells++
			if looksNumericOrDate(cell) {
				numericCells++
			}
		}
	}

	if totalCells > 0 {
		score += numericCells * 2 / totalCells
	}
	return score
}

// looksNumericOrDate 判断单元格是否为纯数字或日期形态
func looksNumericOrDate(cell string) bool {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return false
	}
	if isoDateRegex.MatchString(cell) {
		return true
	}
	dotSeen := false
	for _, r := range cell {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' && !dotSeen:
			dotSeen = true
		default:
			return false
		}
	}
	return true
}

// splitRow 按竖线切分一行表格，去除空白并丢弃空单元格
func splitRow(line string) []string {
	parts := strings.Split(line, "|")
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		cells = append(cells, p)
	}
	return cells
}
