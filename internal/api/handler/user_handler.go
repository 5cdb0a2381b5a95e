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

type UserHandler struct {
	userService        *service.UserService
	interactionService *service.InteractionService
}

func NewUserHandler(userService *service.UserService, interactionService *service.InteractionService) *UserHandler {
	return &UserHandler{userService: userService, interactionService: interactionService}
}

// ListUsers 全部账号
// @Summary 账号列表
// @Tags 账号
// @Produce json
// @Success 200 {array} dto.UserInfo
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		handleUserError(c, err)
		return
	}
	response.OK(c, users)
}

// CreateUser 直接创建账号
// @Summary 创建账号
// @Tags 账号
// @Accept json
// @Produce json
// @Param request body dto.UserCreateRequest true "账号信息"
// @Success 201 {object} dto.UserInfo
// @Failure 400 {object} response.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	user, err := h.userService.Create(&req)
	if err != nil {
		handleUserError(c, err)
		return
	}
	response.Created(c, user)
}

// GetUser 账号主页
// @Summary 账号主页
// @Description 含订阅者的用户名、频道名和头像
// @Tags 账号
// @Produce json
// @Param id path int true "账号ID"
// @Success 200 {object} dto.UserProfile
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	profile, err := h.userService.GetProfile(id)
	if err != nil {
		handleUserError(c, err)
		return
	}
	response.OK(c, profile)
}

// UpdateUser 更新本人账号
// @Summary 更新账号
// @Description 仅本人可操作；密码不足 6 位时忽略
// @Tags 账号
// @Accept multipart/form-data,json
// @Produce json
// @Security BearerAuth
// @Param id path int true "账号ID"
// @Param request body dto.UserUpdateRequest false "更新内容"
// @Param profilePicture formData file false "头像"
// @Success 200 {object} dto.UserUpdateData
// @Failure 403 {object} response.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UserUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	picture, closeFn := formUpload(c, "profilePicture")
	defer closeFn()

	user, err := h.userService.Update(c.Request.Context(), id, currentUserID(c), &req, picture)
	if err != nil {
		handleUserError(c, err)
		return
	}
	response.OK(c, dto.UserUpdateData{User: *user})
}

// DeleteUser 删除本人账号
// @Summary 删除账号
// @Tags 账号
// @Produce json
// @Security BearerAuth
// @Param id path int true "账号ID"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id, currentUserID(c)); err != nil {
		handleUserError(c, err)
		return
	}
	response.Message(c, "User deleted successfully")
}

// Subscriptions 当前账号订阅的频道
// @Summary 我的订阅
// @Tags 账号
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ChannelBrief
// @Router /users/subscriptions [get]
func (h *UserHandler) Subscriptions(c *gin.Context) {
	channels, err := h.userService.Subscriptions(currentUserID(c))
	if err != nil {
		handleUserError(c, err)
		return
	}
	response.OK(c, channels)
}

// ToggleSubscribe 订阅/取消订阅
// @Summary 订阅/取消订阅频道
// @Tags 账号
// @Produce json
// @Security BearerAuth
// @Param id path int true "频道账号ID"
// @Success 200 {object} dto.SubscribeResult
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id}/subscribe [post]
func (h *UserHandler) ToggleSubscribe(c *gin.Context) {
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.interactionService.ToggleSubscribe(c.Request.Context(), channelID, currentUserID(c))
	if err != nil {
		handleUserError(c, err)
		return
	}
	response.OK(c, result)
}

func handleUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrUserNoPermission):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrUserExists),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrUsernameRequired):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("User operation failed", zap.Error(err))
		response.InternalError(c)
	}
}
