package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nsxzhou1114/conduit-api/pkg/errs"
)

// Response 统一响应结构
type Response struct {
	Code    int    `json:"code"`    // 状态码，成功为0
	Message string `json:"message"` // 响应消息
	Data    any    `json:"data"`    // 响应数据
}

// Success 返回成功响应
func Success(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: message,
		Data:    data,
	})
}

// Created 返回201响应
func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Response{
		Code:    0,
		Message: message,
		Data:    data,
	})
}

// NoContent 返回204响应
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error 错误响应
func Error(c *gin.Context, code int, message string, err error) {
	// 记录详细错误信息，但不向客户端暴露
	if err != nil {
		_ = c.Error(err)
	}

	c.JSON(code, Response{
		Code:    code,
		Message: message,
		Data:    nil,
	})
}

// Fail 根据错误类别返回对应的状态码。
// 领域错误返回其消息，其他错误统一返回500且不暴露原因。
func Fail(c *gin.Context, err error) {
	var domainErr *errs.Error
	if errors.As(err, &domainErr) {
		Error(c, domainErr.Kind.HTTPStatus(), domainErr.Message, err)
		return
	}
	InternalServerError(c, "Internal server error", err)
}

// InternalServerError 500错误响应
func InternalServerError(c *gin.Context, message string, err error) {
	Error(c, http.StatusInternalServerError, message, err)
}
