package model

import (
	"time"

	"gorm.io/gorm"
)

// ChatMessage 表示 ERP 智能助手的聊天消息表 tbl_chat_message
type ChatMessage struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	SessionID string         `gorm:"column:sessionId" json:"session_id"` // 会话ID
	Role      string         `json:"role"`                               // user / assistant
	Content   string         `gorm:"type:text" json:"content"`           // 消息正文（助手回复为 markdown）
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// TableName 指定表名
func (ChatMessage) TableName() string {
	return "tbl_chat_message"
}
