package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/nsxzhou1114/conduit-api/pkg/errs"
)

// TokenTTL 访问令牌有效期，签发后固定24小时
const TokenTTL = 24 * time.Hour

// Claims 自定义JWT声明结构体，sub 为用户ID
type Claims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// UserID 从 sub 中解析用户ID
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("无效的subject: %w", err)
	}
	return uint(id), nil
}

// TokenManager 负责签发、解析和撤销令牌
type TokenManager struct {
	secret    []byte
	issuer    string
	blacklist Blacklist
	now       func() time.Time
}

// Option TokenManager 可选项
type Option func(*TokenManager)

// WithClock 替换时间来源
func WithClock(now func() time.Time) Option {
	return func(m *TokenManager) {
		m.now = now
	}
}

// NewTokenManager 创建令牌管理器
func NewTokenManager(secret, issuer string, blacklist Blacklist, opts ...Option) *TokenManager {
	m := &TokenManager{
		secret:    []byte(secret),
		issuer:    issuer,
		blacklist: blacklist,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Sign 签发包含用户ID、用户名、邮箱的访问令牌
func (m *TokenManager) Sign(userID uint, username, email string) (string, error) {
	now := m.now()
	claims := Claims{
		Username: username,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("签名令牌失败: %w", err)
	}
	return signed, nil
}

// Parse 校验并解析令牌。过期、签名错误、格式错误和已撤销统一返回 errs.ErrAuth
func (m *TokenManager) Parse(ctx context.Context, tokenString string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)

	claims := &Claims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, invalidToken(err)
	}
	if !token.Valid {
		return nil, invalidToken(nil)
	}
	if _, err := claims.UserID(); err != nil {
		return nil, invalidToken(err)
	}

	if m.blacklist != nil && claims.ID != "" {
		revoked, err := m.blacklist.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("检查令牌黑名单失败: %w", err)
		}
		if revoked {
			return nil, invalidToken(nil)
		}
	}
	return claims, nil
}

// Revoke 撤销令牌直到其自然过期
func (m *TokenManager) Revoke(ctx context.Context, claims *Claims) error {
	if m.blacklist == nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}
	return m.blacklist.AddToBlacklist(ctx, claims.ID, claims.ExpiresAt.Time)
}

func invalidToken(cause error) error {
	err := errs.Auth("Invalid or expired token")
	if cause != nil {
		return err.WithCause(cause)
	}
	return err
}
