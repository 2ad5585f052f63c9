package cmd

import (
	"fmt"

	"github.com/nsxzhou1114/conduit-api/internal/logger"
	"github.com/nsxzhou1114/conduit-api/internal/model"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:    "migrate",
		Aliases: []string{"db"},
		Usage:   "创建或更新数据库表",
		Action: func(c *cli.Context) error {
			env, err := setup(c)
			if err != nil {
				return err
			}
			defer env.close()

			if err := model.InitTables(env.db); err != nil {
				return fmt.Errorf("初始化数据库表失败: %w", err)
			}
			logger.Info("数据库表迁移完成", zap.String("driver", env.cfg.Database.Driver))
			return nil
		},
	}
}
