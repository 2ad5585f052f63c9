package auth

import (
	"context"
	"sync"
	"time"
)

// TokenBlacklist 内存令牌黑名单，单实例部署使用
type TokenBlacklist struct {
	tokens map[string]time.Time // 令牌ID->过期时间
	mutex  sync.RWMutex
	now    func() time.Time
}

// NewTokenBlacklist 创建内存黑名单
func NewTokenBlacklist() *TokenBlacklist {
	return &TokenBlacklist{
		tokens: make(map[string]time.Time),
		now:    time.Now,
	}
}

// AddToBlacklist 将令牌添加到黑名单，同时清理已过期的条目
func (b *TokenBlacklist) AddToBlacklist(_ context.Context, tokenID string, expireAt time.Time) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	now := b.now()
	for id, exp := range b.tokens {
		if now.After(exp) {
			delete(b.tokens, id)
		}
	}
	if now.Before(expireAt) {
		b.tokens[tokenID] = expireAt
	}
	return nil
}

// IsBlacklisted 检查令牌是否在黑名单中
func (b *TokenBlacklist) IsBlacklisted(_ context.Context, tokenID string) (bool, error) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	expireAt, exists := b.tokens[tokenID]
	return exists && b.now().Before(expireAt), nil
}
