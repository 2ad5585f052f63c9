package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/nsxzhou1114/conduit-api/internal/config"
	"github.com/nsxzhou1114/conduit-api/internal/database"
	"github.com/nsxzhou1114/conduit-api/internal/logger"
	"github.com/nsxzhou1114/conduit-api/pkg/auth"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Execute 执行命令行程序，不带子命令时启动HTTP服务
func Execute() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "conduit-api"
	app.Usage = "博客文章与社交互动API服务"
	app.Version = Version
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "配置文件目录",
			Value:   "./config",
		},
	}
	app.Action = serve
	app.Commands = []*cli.Command{
		serveCommand(),
		migrateCommand(),
		userCommand(),
		statsCommand(),
		versionCommand(),
	}
	return app
}

// environment 命令运行所需的配置与连接
type environment struct {
	cfg   *config.Config
	db    *gorm.DB
	redis *redis.Client
}

// setup 加载配置、初始化日志并连接数据库
func setup(c *cli.Context) (*environment, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("配置初始化失败: %w", err)
	}
	logger.Init(&cfg.Log)

	db, err := database.Open(&cfg.Database)
	if err != nil {
		return nil, err
	}
	return &environment{cfg: cfg, db: db}, nil
}

// blacklist 按配置创建令牌黑名单
func (e *environment) blacklist(ctx context.Context) (auth.Blacklist, error) {
	if auth.BlacklistType(e.cfg.JWT.Blacklist) != auth.RedisBlacklist {
		return auth.NewTokenBlacklist(), nil
	}
	client, err := database.OpenRedis(ctx, &e.cfg.Redis, e.cfg.Database.ConnectRetries)
	if err != nil {
		return nil, err
	}
	e.redis = client
	return auth.NewRedisTokenBlacklist(client), nil
}

// close 释放连接并刷新日志
func (e *environment) close() {
	if sqlDB, err := e.db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Warn("关闭数据库连接失败", zap.Error(err))
		}
	}
	if e.redis != nil {
		if err := e.redis.Close(); err != nil {
			logger.Warn("关闭redis连接失败", zap.Error(err))
		}
	}
	_ = logger.Sync()
}
