package database

import (
	"fmt"
	"time"

	"github.com/avast/retry-go"
	"github.com/nsxzhou1114/conduit-api/internal/config"
	"github.com/nsxzhou1114/conduit-api/internal/logger"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Open 按配置打开数据库连接，启动阶段的连接失败会按 connect_retries 重试
func Open(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN())
	default:
		dialector = mysql.Open(cfg.DSN())
	}

	gormConfig := &gorm.Config{
		// 外键约束由应用层维护（删除文章时级联清理收藏、标签关联和评论）
		DisableForeignKeyConstraintWhenMigrating: true,
		// 唯一索引冲突翻译为 gorm.ErrDuplicatedKey
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(parseLogLevel(cfg.LogLevel)),
	}

	var db *gorm.DB
	err := retry.Do(
		func() error {
			var err error
			db, err = gorm.Open(dialector, gormConfig)
			if err != nil {
				return err
			}
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Ping()
		},
		retry.Attempts(max(cfg.ConnectRetries, 1)),
		retry.Delay(time.Second),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn("数据库连接失败，准备重试", zap.Uint("attempt", n+1), zap.Error(err))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取数据库连接池失败: %w", err)
	}
	if cfg.Driver == "sqlite" {
		// sqlite 只允许单写连接
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	logger.Info("数据库连接成功", zap.String("driver", cfg.Driver))
	return db, nil
}

func parseLogLevel(level string) gormLogger.LogLevel {
	switch level {
	case "silent":
		return gormLogger.Silent
	case "error":
		return gormLogger.Error
	case "info":
		return gormLogger.Info
	default:
		return gormLogger.Warn
	}
}
