package config

import (
	"github.com/pkg/errors"
)

type MySQLConfig struct {
	DSN          string   `json:"dsn" yaml:"dsn"`                   // ERP 业务库连接串
	ReplicaDSNs  []string `json:"replicaDsns" yaml:"replicaDsns"`   // 只读副本连接串，查询优先走副本
	MaxOpenConns int      `json:"maxOpenConns" yaml:"maxOpenConns"` // 最大连接数
	MaxIdleConns int      `json:"maxIdleConns" yaml:"maxIdleConns"` // 最大空闲连接数
}

func (m *MySQLConfig) Validate() []error {
	var errs = make([]error, 0)
	if m.DSN == "" {
		errs = append(errs, errors.Errorf("MySQL 连接串不能为空"))
	}
	if m.MaxOpenConns <= 0 {
		m.MaxOpenConns = 10
	}
	if m.MaxIdleConns <= 0 {
		m.MaxIdleConns = 5
	}
	return errs
}

func NewDefaultMySQLConfig() *MySQLConfig {
	return &MySQLConfig{
		MaxOpenConns: 10,
		MaxIdleConns: 5,
	}
}
