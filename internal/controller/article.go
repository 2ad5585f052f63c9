package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/nsxzhou1114/conduit-api/internal/dto"
	"github.com/nsxzhou1114/conduit-api/internal/middleware"
	"github.com/nsxzhou1114/conduit-api/internal/service"
	"github.com/nsxzhou1114/conduit-api/pkg/response"
	"go.uber.org/zap"
)

// ArticleApi 文章控制器
type ArticleApi struct {
	logger         *zap.SugaredLogger
	articleService *service.ArticleService
}

// NewArticleApi 创建文章控制器实例
func NewArticleApi(logger *zap.SugaredLogger, articleService *service.ArticleService) *ArticleApi {
	return &ArticleApi{
		logger:         logger,
		articleService: articleService,
	}
}

// Create 创建文章
func (api *ArticleApi) Create(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	var req dto.ArticleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, bindError(err))
		return
	}

	article, err := api.articleService.Create(c.Request.Context(), userID, &req.Article)
	if err != nil {
		api.logger.Errorf("创建文章失败: %v", err)
		response.Fail(c, err)
		return
	}

	response.Created(c, "Article created", gin.H{"article": article})
}

// Update 更新文章
func (api *ArticleApi) Update(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	var req dto.ArticleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, bindError(err))
		return
	}

	article, err := api.articleService.Update(c.Request.Context(), c.Param("slug"), userID, &req.Article)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, "Article updated", gin.H{"article": article})
}

// Delete 删除文章
func (api *ArticleApi) Delete(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	if err := api.articleService.Remove(c.Request.Context(), c.Param("slug"), userID); err != nil {
		response.Fail(c, err)
		return
	}

	response.NoContent(c)
}

// Get 获取文章详情
func (api *ArticleApi) Get(c *gin.Context) {
	article, err := api.articleService.Get(c.Request.Context(), c.Param("slug"), middleware.GetViewerID(c))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, "ok", gin.H{"article": article})
}

// List 获取文章列表
func (api *ArticleApi) List(c *gin.Context) {
	var query dto.ArticleListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Fail(c, bindError(err))
		return
	}

	list, err := api.articleService.List(c.Request.Context(), &query, middleware.GetViewerID(c))
	if err != nil {
		api.logger.Errorf("获取文章列表失败: %v", err)
		response.Fail(c, err)
		return
	}

	response.Success(c, "ok", list)
}

// Favorite 收藏文章
func (api *ArticleApi) Favorite(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	article, err := api.articleService.Favorite(c.Request.Context(), c.Param("slug"), userID)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, "Article favorited", gin.H{"article": article})
}

// Unfavorite 取消收藏文章
func (api *ArticleApi) Unfavorite(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	article, err := api.articleService.Unfavorite(c.Request.Context(), c.Param("slug"), userID)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, "Article unfavorited", gin.H{"article": article})
}
