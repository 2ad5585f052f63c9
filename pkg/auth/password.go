package auth

import (
	"errors"
	"fmt"

	"github.com/nsxzhou1114/conduit-api/pkg/errs"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher bcrypt 密码哈希
type PasswordHasher struct {
	cost  int
	dummy []byte
}

// NewPasswordHasher 创建哈希器，cost 10 时单次校验约100ms
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	// 用户不存在时也比较一次，使两种失败耗时一致
	dummy, _ := bcrypt.GenerateFromPassword([]byte("conduit-dummy-password"), cost)
	return &PasswordHasher{cost: cost, dummy: dummy}
}

// Hash 生成密码哈希，超过72字节的密码返回校验错误
func (h *PasswordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", errs.Validation("password is too long").WithCause(err)
		}
		return "", fmt.Errorf("密码加密失败: %w", err)
	}
	return string(hashed), nil
}

// Compare 校验密码是否匹配
func (h *PasswordHasher) Compare(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

// CompareDummy 与固定哈希比较并丢弃结果
func (h *PasswordHasher) CompareDummy(password string) {
	_ = bcrypt.CompareHashAndPassword(h.dummy, []byte(password))
}
