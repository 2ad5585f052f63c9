package dto

import (
	"strings"

	"github.com/nsxzhou1114/conduit-api/pkg/errs"
)

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=100"`
	Username string `json:"username" binding:"required,notblank,max=50"`
	Password string `json:"password" binding:"required,max=72"` // bcrypt 只取前72字节
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse 令牌响应
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// UserView 当前用户信息，不包含密码
type UserView struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
}

// NewUserView 创建当前用户投影
func NewUserView(email, username, bio, image string) UserView {
	return UserView{
		Email:    email,
		Username: username,
		Bio:      bio,
		Image:    image,
	}
}

// UserUpdateRequest 更新用户请求
type UserUpdateRequest struct {
	User UserUpdateFields `json:"user"`
}

// UserUpdateFields 更新用户字段，未提交的字段保持不变
type UserUpdateFields struct {
	Email    Optional[string] `json:"email"`
	Username Optional[string] `json:"username"`
	Password Optional[string] `json:"password"`
	Bio      Optional[string] `json:"bio"`
	Image    Optional[string] `json:"image"`
}

// Validate 校验已提交的字段
func (f *UserUpdateFields) Validate() error {
	if f.Email.Set && !strings.Contains(f.Email.Value, "@") {
		return errs.Validation("invalid email")
	}
	if f.Username.Set && strings.TrimSpace(f.Username.Value) == "" {
		return errs.Validation("username must not be blank")
	}
	if f.Password.Set && (f.Password.Value == "" || len(f.Password.Value) > 72) {
		return errs.Validation("invalid password")
	}
	return nil
}
