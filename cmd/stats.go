package cmd

import (
	"fmt"

	"github.com/nsxzhou1114/conduit-api/internal/model"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"
)

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:   "stats",
		Usage:  "显示系统统计信息",
		Action: showStats,
	}
}

// tableStat 单个表的统计项
type tableStat struct {
	label string
	model any
}

// showStats 显示用户、文章、标签、评论、收藏数量
func showStats(c *cli.Context) error {
	env, err := setup(c)
	if err != nil {
		return err
	}
	defer env.close()

	stats := []tableStat{
		{"用户", &model.User{}},
		{"文章", &model.Article{}},
		{"标签", &model.Tag{}},
		{"评论", &model.Comment{}},
		{"收藏", &model.Favorite{}},
	}

	db := env.db.WithContext(c.Context)
	fmt.Println("📊 系统统计信息")
	for _, s := range stats {
		count, err := countRows(db, s.model)
		if err != nil {
			return fmt.Errorf("统计%s失败: %w", s.label, err)
		}
		fmt.Printf("%s总数: %d\n", s.label, count)
	}
	return nil
}

func countRows(db *gorm.DB, m any) (int64, error) {
	var count int64
	err := db.Model(m).Count(&count).Error
	return count, err
}
