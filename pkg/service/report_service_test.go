package service

import (
	"testing"

	"assistant-report/pkg/model"

	"github.com/stretchr/testify/assert"
)

func TestBuildReport(t *testing.T) {
	s := NewReportService()

	t.Run("query result message is converted and classified", func(t *testing.T) {
		msg := &model.ChatMessage{
			ID:        42,
			SessionID: "sess-1",
			Role:      "assistant",
			Content: "商品数据库查询结果\n" +
				"| 商品ID | 商品名称 |\n|----|----|\n| P001 | 耳机 |",
		}
		report := s.buildReport(msg)
		assert.NotEmpty(t, report.ID)
		assert.Equal(t, uint(42), report.MessageID)
		assert.Equal(t, "sess-1", report.SessionID)
		assert.True(t, report.Converted)
		assert.Equal(t, "product", report.RecordType)
		assert.Contains(t, report.ReportText, "记录 1")
	})

	t.Run("prose message passes through unconverted", func(t *testing.T) {
		msg := &model.ChatMessage{ID: 43, Content: "好的，已为您处理。"}
		report := s.buildReport(msg)
		assert.False(t, report.Converted)
		assert.Equal(t, msg.Content, report.ReportText)
		assert.Equal(t, "generic", report.RecordType)
	})
}
