package handler

import (
	"errors"

	"vidshare-go/internal/api/dto"
	"vidshare-go/internal/api/response"
	"vidshare-go/internal/service"
	"vidshare-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup 注册
// @Summary 注册
// @Description 注册新账号并返回 Token，可附带头像文件 profilePicture
// @Tags 认证
// @Accept multipart/form-data,json
// @Produce json
// @Param request body dto.SignupRequest true "注册信息"
// @Param profilePicture formData file false "头像"
// @Success 200 {object} dto.AuthData
// @Failure 400 {object} response.ErrorResponse
// @Failure 429 {object} response.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	picture, closeFn := formUpload(c, "profilePicture")
	defer closeFn()

	data, err := h.authService.Signup(c.Request.Context(), &req, picture)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.OK(c, data)
}

// Signin 登录
// @Summary 登录
// @Description 邮箱 + 密码登录，邮箱不区分大小写
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.SigninRequest true "登录信息"
// @Success 200 {object} dto.AuthData
// @Failure 400 {object} response.ErrorResponse "Invalid credentials"
// @Router /auth/signin [post]
func (h *AuthHandler) Signin(c *gin.Context) {
	var req dto.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	data, err := h.authService.Signin(&req)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.OK(c, data)
}

func handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUserExists),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrUsernameRequired):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Auth operation failed", zap.Error(err))
		response.InternalError(c)
	}
}
