package middleware

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/nsxzhou1114/conduit-api/internal/config"
)

// CORS 跨域中间件，允许的来源包含 "*" 时放开所有来源
func CORS(cfg config.CorsConfig) gin.HandlerFunc {
	c := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowOrigins) == 0 || slices.Contains(cfg.AllowOrigins, "*") {
		c.AllowAllOrigins = true
		// 任意来源时不能携带凭证
		c.AllowCredentials = false
	} else {
		c.AllowOrigins = cfg.AllowOrigins
	}
	return cors.New(c)
}
