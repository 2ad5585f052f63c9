package model

import (
	"fmt"

	"gorm.io/gorm"
)

// 需要自动迁移的模型列表
var models = []any{
	&User{},
	&Tag{},
	&Article{},
	&Favorite{},
	&Comment{},
}

// InitTables 初始化数据库表
func InitTables(db *gorm.DB) error {
	if err := db.SetupJoinTable(&Article{}, "Tags", &ArticleTag{}); err != nil {
		return fmt.Errorf("设置文章标签关联表失败: %w", err)
	}
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("自动迁移数据库表失败: %w", err)
	}
	if db.Dialector.Name() == "mysql" {
		// 默认的 _ci 排序规则忽略大小写，标签名需按字节区分
		if err := db.Exec(tagNameBinaryCollationSQL).Error; err != nil {
			return fmt.Errorf("设置标签名排序规则失败: %w", err)
		}
	}
	return nil
}

const tagNameBinaryCollationSQL = "ALTER TABLE tags MODIFY name varchar(64) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL"
