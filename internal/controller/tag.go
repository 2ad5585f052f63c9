package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/nsxzhou1114/conduit-api/internal/service"
	"github.com/nsxzhou1114/conduit-api/pkg/response"
	"go.uber.org/zap"
)

// TagApi 标签控制器
type TagApi struct {
	logger     *zap.SugaredLogger
	tagService *service.TagService
}

// NewTagApi 创建标签控制器实例
func NewTagApi(logger *zap.SugaredLogger, tagService *service.TagService) *TagApi {
	return &TagApi{
		logger:     logger,
		tagService: tagService,
	}
}

// List 获取全部标签
func (api *TagApi) List(c *gin.Context) {
	tags, err := api.tagService.ListNames(c.Request.Context())
	if err != nil {
		api.logger.Errorf("获取标签列表失败: %v", err)
		response.Fail(c, err)
		return
	}

	response.Success(c, "ok", gin.H{"tags": tags})
}
