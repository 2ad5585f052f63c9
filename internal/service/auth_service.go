package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nsxzhou1114/conduit-api/internal/dto"
	"github.com/nsxzhou1114/conduit-api/internal/model"
	"github.com/nsxzhou1114/conduit-api/pkg/auth"
	"github.com/nsxzhou1114/conduit-api/pkg/errs"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AuthService 注册、登录和令牌签发
type AuthService struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
	hasher *auth.PasswordHasher
	tokens *auth.TokenManager
}

// NewAuthService 创建认证服务实例
func NewAuthService(db *gorm.DB, logger *zap.SugaredLogger, hasher *auth.PasswordHasher, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		db:     db,
		logger: logger,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register 注册用户并返回访问令牌。
// 用户名和邮箱的唯一性由唯一索引保证，冲突时返回 Conflict。
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (string, error) {
	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return "", err
	}

	user := &model.User{
		Username: strings.TrimSpace(req.Username),
		Email:    normalizeEmail(req.Email),
		Password: hashed,
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", errs.Conflict("Email or username already taken").WithCause(err)
		}
		return "", fmt.Errorf("创建用户失败: %w", err)
	}

	s.logger.Infow("用户注册成功", "userID", user.ID, "username", user.Username)
	return s.SignToken(user.ID, user.Username, user.Email)
}

// Login 校验邮箱和密码并返回访问令牌。
// 邮箱不存在与密码错误返回相同的错误，且都会执行一次bcrypt比较。
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (string, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("email = ?", normalizeEmail(req.Email)).First(&user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("查询用户失败: %w", err)
		}
		s.hasher.CompareDummy(req.Password)
		return "", errs.Auth("Credentials incorrect")
	}

	if !s.hasher.Compare(user.Password, req.Password) {
		return "", errs.Auth("Credentials incorrect")
	}
	return s.SignToken(user.ID, user.Username, user.Email)
}

// SignToken 为用户签发访问令牌
func (s *AuthService) SignToken(userID uint, username, email string) (string, error) {
	return s.tokens.Sign(userID, username, email)
}

// Logout 撤销令牌，之后使用该令牌的请求返回 401
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.Parse(ctx, token)
	if err != nil {
		return err
	}
	if err := s.tokens.Revoke(ctx, claims); err != nil {
		return fmt.Errorf("撤销令牌失败: %w", err)
	}
	s.logger.Infow("用户已登出", "user", claims.Subject)
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
