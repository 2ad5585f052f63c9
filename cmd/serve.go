package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nsxzhou1114/conduit-api/internal/logger"
	"github.com/nsxzhou1114/conduit-api/internal/model"
	"github.com/nsxzhou1114/conduit-api/internal/router"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// 优雅关闭的最长等待时间
const shutdownTimeout = 10 * time.Second

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "迁移数据库表并启动HTTP服务",
		Action: serve,
	}
}

// serve 启动HTTP服务，收到 SIGINT/SIGTERM 后优雅关闭
func serve(c *cli.Context) error {
	env, err := setup(c)
	if err != nil {
		return err
	}
	defer env.close()

	if err := model.InitTables(env.db); err != nil {
		return fmt.Errorf("初始化数据库表失败: %w", err)
	}

	blacklist, err := env.blacklist(c.Context)
	if err != nil {
		return err
	}

	gin.SetMode(env.cfg.App.Mode)
	r, err := router.New(router.Deps{
		Config:    env.cfg,
		DB:        env.db,
		Blacklist: blacklist,
		Logger:    logger.SugaredLogger,
	})
	if err != nil {
		return fmt.Errorf("初始化路由失败: %w", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", env.cfg.App.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()
	logger.Info("服务已启动", zap.String("addr", srv.Addr))

	// 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		return fmt.Errorf("HTTP服务启动失败: %w", err)
	case <-quit:
	}
	logger.Info("关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("服务关闭失败: %w", err)
	}
	logger.Info("服务已关闭")
	return nil
}
