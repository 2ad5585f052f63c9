package router

import (
	"github.com/gin-gonic/gin"
	"github.com/nsxzhou1114/conduit-api/internal/config"
	"github.com/nsxzhou1114/conduit-api/internal/controller"
	"github.com/nsxzhou1114/conduit-api/internal/logger"
	"github.com/nsxzhou1114/conduit-api/internal/middleware"
	"github.com/nsxzhou1114/conduit-api/internal/service"
	"github.com/nsxzhou1114/conduit-api/pkg/auth"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps 构建路由所需的外部依赖
type Deps struct {
	Config    *config.Config
	DB        *gorm.DB
	Blacklist auth.Blacklist
	Logger    *zap.SugaredLogger
}

// apis 全部控制器
type apis struct {
	user    *controller.UserApi
	article *controller.ArticleApi
	comment *controller.CommentApi
	tag     *controller.TagApi
}

// New 组装服务和控制器，返回配置好中间件与路由的引擎
func New(deps Deps) (*gin.Engine, error) {
	if err := controller.RegisterValidators(); err != nil {
		return nil, err
	}

	cfg := deps.Config
	log := deps.Logger

	slugs, err := service.NewSlugGenerator(cfg.App.MachineID)
	if err != nil {
		return nil, err
	}
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	tokens := auth.NewTokenManager(cfg.JWT.SecretKey, cfg.JWT.Issuer, deps.Blacklist)

	tagService := service.NewTagService(deps.DB, log)
	favoriteService := service.NewFavoriteService(deps.DB, log)
	articleService := service.NewArticleService(deps.DB, log, slugs, tagService, favoriteService,
		service.NewArticleViewAssembler(favoriteService))

	handlers := &apis{
		user: controller.NewUserApi(log,
			service.NewAuthService(deps.DB, log, hasher, tokens),
			service.NewUserService(deps.DB, log, hasher)),
		article: controller.NewArticleApi(log, articleService),
		comment: controller.NewCommentApi(log, service.NewCommentService(deps.DB, log, articleService)),
		tag:     controller.NewTagApi(log, tagService),
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		logger.GinLogger(),
		gin.Recovery(),
		middleware.CORS(cfg.App.Cors),
	)
	setupRoutes(r, handlers, tokens)
	return r, nil
}

// setupRoutes 设置API路由
func setupRoutes(r *gin.Engine, h *apis, tokens *auth.TokenManager) {
	// API 路由组
	api := r.Group("/api")

	// 用户相关路由
	setupUserRoutes(api, h.user, tokens)

	// 标签相关路由
	api.GET("/tags", h.tag.List)

	// 文章相关路由
	setupArticleRoutes(api, h.article, tokens)

	// 评论相关路由
	setupCommentRoutes(api, h.comment, tokens)
}

// setupUserRoutes 设置用户相关路由
func setupUserRoutes(api *gin.RouterGroup, userApi *controller.UserApi, tokens *auth.TokenManager) {
	// 公开路由
	api.POST("/register", userApi.Register)
	api.POST("/login", userApi.Login)
	api.GET("/profiles/:username", middleware.OptionalAuth(tokens), userApi.Profile)

	// 需要认证的路由
	authRoutes := api.Group("", middleware.JWTAuth(tokens))
	{
		authRoutes.POST("/logout", userApi.Logout)
		authRoutes.GET("/user", userApi.Current)
		authRoutes.PUT("/user", userApi.Update)
	}
}

// setupArticleRoutes 设置文章相关路由
func setupArticleRoutes(api *gin.RouterGroup, articleApi *controller.ArticleApi, tokens *auth.TokenManager) {
	// 公开路由，登录用户可看到收藏状态
	publicRoutes := api.Group("/articles", middleware.OptionalAuth(tokens))
	{
		publicRoutes.GET("", articleApi.List)
		publicRoutes.GET("/:slug", articleApi.Get)
	}

	// 需要认证的路由
	authRoutes := api.Group("/articles", middleware.JWTAuth(tokens))
	{
		authRoutes.POST("", articleApi.Create)
		authRoutes.PUT("/:slug", articleApi.Update)
		authRoutes.DELETE("/:slug", articleApi.Delete)
		authRoutes.POST("/:slug/favorite", articleApi.Favorite)
		authRoutes.DELETE("/:slug/favorite", articleApi.Unfavorite)
	}
}

// setupCommentRoutes 设置评论相关路由
func setupCommentRoutes(api *gin.RouterGroup, commentApi *controller.CommentApi, tokens *auth.TokenManager) {
	api.GET("/articles/:slug/comments", middleware.OptionalAuth(tokens), commentApi.List)

	authRoutes := api.Group("/articles/:slug/comments", middleware.JWTAuth(tokens))
	{
		authRoutes.POST("", commentApi.Create)
		authRoutes.DELETE("/:id", commentApi.Delete)
	}
}
