package db

import (
	"sync"
	"time"

	"assistant-report/config"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

var mysqlDB *gorm.DB
var mysqlOnce sync.Once

// InitMySQL 初始化 ERP 业务库连接
// 配置了只读副本时通过 dbresolver 将查询路由到副本
func InitMySQL(cfg *config.MySQLConfig) error {
	var err error
	mysqlOnce.Do(func() {
		var gdb *gorm.DB
		gdb, err = gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			zap.S().Errorf("连接 MySQL 失败: %v", err)
			err = errors.Wrap(err, "打开 MySQL 连接")
			return
		}

		if len(cfg.ReplicaDSNs) > 0 {
			replicas := make([]gorm.Dialector, 0, len(cfg.ReplicaDSNs))
			for _, dsn := range cfg.ReplicaDSNs {
				replicas = append(replicas, mysql.Open(dsn))
			}
			if err = gdb.Use(dbresolver.Register(dbresolver.Config{
				Replicas: replicas,
			})); err != nil {
				zap.S().Errorf("注册读写分离失败: %v", err)
				err = errors.Wrap(err, "注册 dbresolver")
				return
			}
		}

		sqlDB, dbErr := gdb.DB()
		if dbErr != nil {
			err = errors.Wrap(dbErr, "获取底层连接")
			return
		}
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(time.Hour)

		if err = sqlDB.Ping(); err != nil {
			zap.S().Errorf("MySQL 连接测试失败: %v", err)
			return
		}

		mysqlDB = gdb
		zap.S().Debug("mysql 初始化完成...")
	})
	return err
}

// GetMySQL 获取 MySQL 连接
func GetMySQL() *gorm.DB {
	return mysqlDB
}
