package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nsxzhou1114/conduit-api/internal/logger"
	"github.com/nsxzhou1114/conduit-api/pkg/auth"
	"github.com/nsxzhou1114/conduit-api/pkg/errs"
	"github.com/nsxzhou1114/conduit-api/pkg/response"
	"go.uber.org/zap"
)

// gin上下文中的键
const (
	userIDKey   = "userID"
	usernameKey = "username"
	tokenKey    = "token"
)

// JWTAuth JWT认证中间件，令牌缺失或无效时返回401
func JWTAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			response.Fail(c, errs.Auth("Unauthorized"))
			c.Abort()
			return
		}

		claims, err := tokens.Parse(c.Request.Context(), token)
		if err != nil {
			logger.Warn("无效的令牌", zap.Error(err))
			response.Fail(c, err)
			c.Abort()
			return
		}

		setIdentity(c, claims, token)
		c.Next()
	}
}

// OptionalAuth 可选的JWT认证中间件
// 不会阻止未认证的用户访问，但如果提供了有效的token会设置用户信息到上下文
func OptionalAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := tokens.Parse(c.Request.Context(), token)
		if err != nil {
			// token无效，按匿名访问处理
			logger.Warn("无效的令牌", zap.Error(err))
			c.Next()
			return
		}

		setIdentity(c, claims, token)
		c.Next()
	}
}

// GetUserID 从上下文中获取用户ID
func GetUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	id, ok := userID.(uint)
	return id, ok
}

// GetViewerID 获取可选的当前用户ID，匿名访问时返回 nil
func GetViewerID(c *gin.Context) *uint {
	if id, ok := GetUserID(c); ok {
		return &id
	}
	return nil
}

// GetToken 从上下文中获取当前请求使用的令牌
func GetToken(c *gin.Context) (string, bool) {
	token, exists := c.Get(tokenKey)
	if !exists {
		return "", false
	}
	s, ok := token.(string)
	return s, ok
}

// bearerToken 解析 "Authorization: Bearer <token>"，兼容 "Token <token>"
func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || (parts[0] != "Bearer" && parts[0] != "Token") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func setIdentity(c *gin.Context, claims *auth.Claims, token string) {
	// Parse 已校验过 subject
	userID, _ := claims.UserID()
	c.Set(userIDKey, userID)
	c.Set(usernameKey, claims.Username)
	c.Set(tokenKey, token)
}
