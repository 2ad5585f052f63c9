package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nsxzhou1114/conduit-api/internal/logger"
)

// RequestIDHeader 请求ID头
const RequestIDHeader = "X-Request-ID"

// RequestID 为每个请求分配ID，客户端已提供时沿用
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Set(logger.RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
