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

// UserService 用户信息服务
type UserService struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
	hasher *auth.PasswordHasher
}

// NewUserService 创建用户服务实例
func NewUserService(db *gorm.DB, logger *zap.SugaredLogger, hasher *auth.PasswordHasher) *UserService {
	return &UserService{
		db:     db,
		logger: logger,
		hasher: hasher,
	}
}

// GetCurrent 获取当前用户信息
func (s *UserService) GetCurrent(ctx context.Context, userID uint) (*dto.UserView, error) {
	user, err := s.findByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	view := dto.NewUserView(user.Email, user.Username, user.Bio, user.Image)
	return &view, nil
}

// Update 更新当前用户信息，只修改已提交的字段
func (s *UserService) Update(ctx context.Context, userID uint, fields *dto.UserUpdateFields) (*dto.UserView, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}
	user, err := s.findByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]any)
	if fields.Email.Set {
		updates["email"] = normalizeEmail(fields.Email.Value)
	}
	if fields.Username.Set {
		updates["username"] = strings.TrimSpace(fields.Username.Value)
	}
	if fields.Password.Set {
		hashed, err := s.hasher.Hash(fields.Password.Value)
		if err != nil {
			return nil, err
		}
		updates["password"] = hashed
	}
	if fields.Bio.Set {
		updates["bio"] = fields.Bio.Value
	}
	if fields.Image.Set {
		updates["image"] = fields.Image.Value
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(user).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, errs.Conflict("Email or username already taken").WithCause(err)
			}
			return nil, fmt.Errorf("更新用户失败: %w", err)
		}
	}
	return s.GetCurrent(ctx, userID)
}

// GetProfile 获取用户公开信息
func (s *UserService) GetProfile(ctx context.Context, username string) (*dto.ProfileView, error) {
	var user model.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("Profile not found")
		}
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	view := dto.NewProfileView(user.Username, user.Bio, user.Image)
	return &view, nil
}

func (s *UserService) findByID(ctx context.Context, userID uint) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("User not found")
		}
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	return &user, nil
}
