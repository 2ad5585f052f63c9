package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/nsxzhou1114/conduit-api/internal/dto"
	"github.com/nsxzhou1114/conduit-api/internal/middleware"
	"github.com/nsxzhou1114/conduit-api/internal/service"
	"github.com/nsxzhou1114/conduit-api/pkg/errs"
	"github.com/nsxzhou1114/conduit-api/pkg/response"
	"go.uber.org/zap"
)

// UserApi 用户控制器
type UserApi struct {
	logger      *zap.SugaredLogger
	authService *service.AuthService
	userService *service.UserService
}

// NewUserApi 创建用户控制器实例
func NewUserApi(logger *zap.SugaredLogger, authService *service.AuthService, userService *service.UserService) *UserApi {
	return &UserApi{
		logger:      logger,
		authService: authService,
		userService: userService,
	}
}

// Register 用户注册
func (api *UserApi) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, bindError(err))
		return
	}

	token, err := api.authService.Register(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Created(c, "Registered", dto.TokenResponse{AccessToken: token})
}

// Login 用户登录
func (api *UserApi) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, bindError(err))
		return
	}

	token, err := api.authService.Login(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, "Logged in", dto.TokenResponse{AccessToken: token})
}

// Logout 用户登出，撤销当前令牌
func (api *UserApi) Logout(c *gin.Context) {
	token, ok := middleware.GetToken(c)
	if !ok {
		response.Fail(c, errs.Auth("Unauthorized"))
		return
	}

	if err := api.authService.Logout(c.Request.Context(), token); err != nil {
		api.logger.Warnf("登出失败: %v", err)
		response.Fail(c, err)
		return
	}

	response.Success(c, "Logged out", nil)
}

// Current 获取当前用户信息
func (api *UserApi) Current(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	user, err := api.userService.GetCurrent(c.Request.Context(), userID)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, "ok", gin.H{"user": user})
}

// Update 更新当前用户信息
func (api *UserApi) Update(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	var req dto.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, bindError(err))
		return
	}

	user, err := api.userService.Update(c.Request.Context(), userID, &req.User)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, "User updated", gin.H{"user": user})
}

// Profile 获取用户公开信息
func (api *UserApi) Profile(c *gin.Context) {
	profile, err := api.userService.GetProfile(c.Request.Context(), c.Param("username"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, "ok", gin.H{"profile": profile})
}
