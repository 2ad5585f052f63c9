package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/nsxzhou1114/conduit-api/internal/dto"
	"github.com/nsxzhou1114/conduit-api/internal/service"
	"github.com/nsxzhou1114/conduit-api/pkg/response"
	"go.uber.org/zap"
)

// CommentApi 评论控制器
type CommentApi struct {
	logger         *zap.SugaredLogger
	commentService *service.CommentService
}

// NewCommentApi 创建评论控制器实例
func NewCommentApi(logger *zap.SugaredLogger, commentService *service.CommentService) *CommentApi {
	return &CommentApi{
		logger:         logger,
		commentService: commentService,
	}
}

// Create 发表评论
func (api *CommentApi) Create(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	var req dto.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, bindError(err))
		return
	}

	comment, err := api.commentService.Create(c.Request.Context(), c.Param("slug"), userID, req.Comment.Body)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Created(c, "Comment created", gin.H{"comment": comment})
}

// List 获取文章评论列表
func (api *CommentApi) List(c *gin.Context) {
	var query dto.CommentListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Fail(c, bindError(err))
		return
	}

	comments, err := api.commentService.List(c.Request.Context(), c.Param("slug"), &query)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, "ok", gin.H{"comments": comments})
}

// Delete 删除评论
func (api *CommentApi) Delete(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	commentID, err := parseIDParam(c, "id")
	if err != nil {
		response.Fail(c, err)
		return
	}

	if err := api.commentService.Delete(c.Request.Context(), c.Param("slug"), commentID, userID); err != nil {
		response.Fail(c, err)
		return
	}

	response.NoContent(c)
}
