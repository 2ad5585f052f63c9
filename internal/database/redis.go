package database

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	"github.com/nsxzhou1114/conduit-api/internal/config"
	"github.com/nsxzhou1114/conduit-api/internal/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// OpenRedis 初始化Redis连接
func OpenRedis(ctx context.Context, cfg *config.RedisConfig, attempts uint) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
	})

	err := retry.Do(
		func() error { return client.Ping(ctx).Err() },
		retry.Attempts(max(attempts, 1)),
		retry.Delay(time.Second),
	)
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("连接redis失败: %w", err)
	}

	logger.Info("redis连接成功", zap.String("addr", cfg.Addr()))
	return client, nil
}
