// Package testutil 提供服务层和HTTP层测试共用的内存数据库与种子数据
package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/nsxzhou1114/conduit-api/internal/model"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// DB 为每个测试创建独立的内存 SQLite 数据库并完成迁移
func DB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
		Logger:                                   gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取测试数据库连接失败: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := model.InitTables(db); err != nil {
		t.Fatalf("迁移测试数据库失败: %v", err)
	}
	return db
}

// Logger 返回丢弃输出的日志实例
func Logger(t *testing.T) *zap.SugaredLogger {
	t.Helper()
	return zap.NewNop().Sugar()
}

// CreateUser 直接写入一个用户，密码字段为占位值
func CreateUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "x",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("创建测试用户失败: %v", err)
	}
	return user
}

// CreateArticle 直接写入一篇文章，slug 与标题相同
func CreateArticle(t *testing.T, db *gorm.DB, authorID uint, title string) *model.Article {
	t.Helper()
	article := &model.Article{
		Title:       title,
		Slug:        strings.ToLower(strings.ReplaceAll(title, " ", "-")),
		Description: "desc",
		Body:        "body",
		AuthorID:    authorID,
	}
	if err := db.Create(article).Error; err != nil {
		t.Fatalf("创建测试文章失败: %v", err)
	}
	return article
}
