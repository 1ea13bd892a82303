package service

import (
	"context"
	"time"

	"assistant-report/pkg/convert"
	"assistant-report/pkg/db"
	"assistant-report/pkg/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type ReportService struct {
	converter *convert.Converter
}

func NewReportService(opts ...convert.Option) *ReportService {
	return &ReportService{
		converter: convert.New(opts...),
	}
}

// ExportReports 从 MySQL 的 tbl_chat_message 表分批读取助手回复，
// 逐条转换后写入 DuckDB 的 assistant_report 表
// 单条转换失败不中断批次，最终统计成功、原样保留和失败的数量
func (s *ReportService) ExportReports(ctx context.Context, batchSize int) error {
	if err := s.createReportTable(ctx); err != nil {
		return errors.Wrap(err, "创建 DuckDB 表")
	}

	mysqlDB := db.GetMySQL()
	if mysqlDB == nil {
		return errors.New("MySQL 连接未初始化")
	}

	startTime := time.Now()
	offset := 0
	converted := 0
	passthrough := 0
	failed := 0

	for {
		var messages []model.ChatMessage
		err := mysqlDB.WithContext(ctx).
			Where("role = ?", "assistant").
			Order("id").
			Limit(batchSize).
			Offset(offset).
			Find(&messages).Error
		if err != nil {
			return errors.Wrap(err, "查询聊天消息")
		}
		if len(messages) == 0 {
			break
		}

		for _, msg := range messages {
			report := s.buildReport(&msg)
			if err := s.insertReport(ctx, report); err != nil {
				zap.S().Warnf("写入消息 ID %d 的报告失败: %v", msg.ID, err)
				failed++
				continue
			}
			if report.Converted {
				converted++
			} else {
				passthrough++
			}
		}

		offset += batchSize
	}

	zap.S().Infof("导出完成: 转换 %d 条, 原样保留 %d 条, 失败 %d 条", converted, passthrough, failed)
	zap.S().Infof("耗时：%s", time.Since(startTime))
	return nil
}

// buildReport 转换单条助手回复
// 转换管线保证对任意输入都返回字符串，这里只补充记录类型等元信息
func (s *ReportService) buildReport(msg *model.ChatMessage) *model.AssistantReport {
	report := &model.AssistantReport{
		ID:         uuid.NewString(),
		MessageID:  msg.ID,
		SessionID:  msg.SessionID,
		RawContent: msg.Content,
		RecordType: string(convert.RecordTypeGeneric),
	}

	report.ReportText = s.converter.Convert(msg.Content)
	report.Converted = report.ReportText != msg.Content

	if report.Converted {
		if block := convert.ExtractTableData(msg.Content); block != nil {
			report.RecordType = string(convert.ClassifyRecordType(block.Headers, msg.Content))
		}
	}
	return report
}

// createReportTable 创建 DuckDB 的报告表
func (s *ReportService) createReportTable(ctx context.Context) error {
	duckDB := db.GetDuckDB()
	if duckDB == nil {
		return errors.New("DuckDB 连接未初始化")
	}

	// 重建表，处理表结构变更的情况
	if _, err := duckDB.ExecContext(ctx, "DROP TABLE IF EXISTS assistant_report"); err != nil {
		return errors.Wrap(err, "删除旧表")
	}

	createTableSQL := `
		CREATE TABLE assistant_report (
			id TEXT PRIMARY KEY,
			message_id BIGINT,
			session_id TEXT,
			raw_content TEXT,
			report_text TEXT,
			record_type TEXT,
			converted BOOLEAN
		)
	`
	if _, err := duckDB.ExecContext(ctx, createTableSQL); err != nil {
		return errors.Wrap(err, "创建表")
	}

	zap.S().Debug("DuckDB 表创建成功")
	return nil
}

// insertReport 写入单条报告
func (s *ReportService) insertReport(ctx context.Context, report *model.AssistantReport) error {
	duckDB := db.GetDuckDB()
	if duckDB == nil {
		return errors.New("DuckDB 连接未初始化")
	}

	insertSQL := `
		INSERT INTO assistant_report (id, message_id, session_id, raw_content, report_text, record_type, converted)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := duckDB.ExecContext(ctx, insertSQL,
		report.ID,
		report.MessageID,
		report.SessionID,
		report.RawContent,
		report.ReportText,
		report.RecordType,
		report.Converted,
	)
	if err != nil {
		return errors.Wrap(err, "插入数据")
	}
	return nil
}

// GetReportCount 获取已导出的报告数量
func (s *ReportService) GetReportCount(ctx context.Context) (int64, error) {
	duckDB := db.GetDuckDB()
	if duckDB == nil {
		return 0, errors.New("DuckDB 连接未初始化")
	}

	var count int64
	if err := duckDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM assistant_report").Scan(&count); err != nil {
		return 0, errors.Wrap(err, "查询数量")
	}
	return count, nil
}
