package auth

import (
	"context"
	"time"
)

// Blacklist 令牌黑名单，以令牌ID (jti) 为键
type Blacklist interface {
	// AddToBlacklist 将令牌添加到黑名单，过期后自动失效
	AddToBlacklist(ctx context.Context, tokenID string, expireAt time.Time) error

	// IsBlacklisted 检查令牌是否在黑名单中
	IsBlacklisted(ctx context.Context, tokenID string) (bool, error)
}

// BlacklistType 黑名单类型
type BlacklistType string

const (
	// MemoryBlacklist 内存黑名单
	MemoryBlacklist BlacklistType = "memory"
	// RedisBlacklist Redis黑名单
	RedisBlacklist BlacklistType = "redis"
)
