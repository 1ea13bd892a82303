package model

// AssistantReport 表示转换后的报告，存储到 DuckDB
type AssistantReport struct {
	ID         string `json:"id"`          // UUID
	MessageID  uint   `json:"message_id"`  // 对应 tbl_chat_message 表的 id
	SessionID  string `json:"session_id"`  // 会话ID
	RawContent string `json:"raw_content"` // 助手回复原文
	ReportText string `json:"report_text"` // 转换后的报告文本
	RecordType string `json:"record_type"` // 推断出的记录类型
	Converted  bool   `json:"converted"`   // 是否实际发生了转换
}

// TableName 指定表名
func (AssistantReport) TableName() string {
	return "assistant_report"
}
