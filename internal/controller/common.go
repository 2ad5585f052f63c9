package controller

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nsxzhou1114/conduit-api/internal/middleware"
	"github.com/nsxzhou1114/conduit-api/pkg/errs"
)

// getUserIDFromContext 从上下文中获取用户ID
func getUserIDFromContext(c *gin.Context) (uint, error) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		return 0, errs.Auth("Unauthorized").WithCause(errors.New("用户未登录"))
	}
	return userID, nil
}

// parseIDParam 解析路径中的数字ID
func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errs.Validation("invalid " + name)
	}
	return uint(id), nil
}
