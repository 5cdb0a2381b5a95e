package handler

import (
	"errors"
	"strconv"

	"vidshare-go/internal/api/dto"
	"vidshare-go/internal/api/response"
	"vidshare-go/internal/service"
	"vidshare-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VideoHandler struct {
	videoService       *service.VideoService
	interactionService *service.InteractionService
	historyService     *service.HistoryService
}

func NewVideoHandler(
	videoService *service.VideoService,
	interactionService *service.InteractionService,
	historyService *service.HistoryService,
) *VideoHandler {
	return &VideoHandler{
		videoService:       videoService,
		interactionService: interactionService,
		historyService:     historyService,
	}
}

// ListVideos 视频列表
// @Summary 视频列表
// @Tags 视频
// @Produce json
// @Param userId query int false "只返回该账号的视频"
// @Success 200 {array} dto.VideoInfo
// @Router /videos [get]
func (h *VideoHandler) ListVideos(c *gin.Context) {
	var ownerID *int64
	if v := c.Query("userId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.BadRequest(c, "Invalid ID")
			return
		}
		ownerID = &id
	}

	videos, err := h.videoService.List(ownerID)
	if err != nil {
		handleVideoError(c, err)
		return
	}
	response.OK(c, videos)
}

// ByChannels 多个频道的视频
// @Summary 按频道拉取视频
// @Tags 视频
// @Produce json
// @Security BearerAuth
// @Param ids query string true "逗号分隔的账号ID"
// @Success 200 {array} dto.VideoInfo
// @Router /videos/by-channels [get]
func (h *VideoHandler) ByChannels(c *gin.Context) {
	var req dto.ChannelVideosRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	videos, err := h.videoService.ListByChannels(req.IDs)
	if err != nil {
		handleVideoError(c, err)
		return
	}
	response.OK(c, videos)
}

// GetVideo 视频详情
// @Summary 视频详情
// @Description 含上传者订阅者 ID 与点赞账号 ID
// @Tags 视频
// @Produce json
// @Param id path int true "视频ID"
// @Success 200 {object} dto.VideoDetail
// @Failure 404 {object} response.ErrorResponse
// @Router /videos/{id} [get]
func (h *VideoHandler) GetVideo(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.videoService.GetDetail(c.Request.Context(), id)
	if err != nil {
		handleVideoError(c, err)
		return
	}
	response.OK(c, detail)
}

// CreateVideo 上传视频
// @Summary 上传视频
// @Tags 视频
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param video formData file true "视频文件"
// @Param thumbnail formData file false "封面"
// @Param title formData string true "标题"
// @Param description formData string true "描述"
// @Param duration formData number true "时长（秒）"
// @Param tags formData []string false "标签"
// @Success 201 {object} dto.VideoInfo
// @Failure 400 {object} response.ErrorResponse
// @Router /videos [post]
func (h *VideoHandler) CreateVideo(c *gin.Context) {
	var req dto.VideoCreateRequest
	if err := c.ShouldBind(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	file, closeFile := formUpload(c, "video")
	defer closeFile()
	thumbnail, closeThumb := formUpload(c, "thumbnail")
	defer closeThumb()

	video, err := h.videoService.Create(c.Request.Context(), currentUserID(c), &req, file, thumbnail)
	if err != nil {
		handleVideoError(c, err)
		return
	}
	response.Created(c, video)
}

// UpdateVideo 更新视频
// @Summary 更新视频标题/描述
// @Tags 视频
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Param request body dto.VideoUpdateRequest true "更新内容"
// @Success 200 {object} dto.VideoInfo
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /videos/{id} [put]
func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.VideoUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	video, err := h.videoService.Update(c.Request.Context(), id, currentUserID(c), &req)
	if err != nil {
		handleVideoError(c, err)
		return
	}
	response.OK(c, video)
}

// DeleteVideo 删除视频
// @Summary 删除视频
// @Tags 视频
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /videos/{id} [delete]
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.videoService.Delete(c.Request.Context(), id, currentUserID(c)); err != nil {
		handleVideoError(c, err)
		return
	}
	response.Message(c, "Video deleted")
}

// ToggleLike 点赞/取消点赞
// @Summary 点赞/取消点赞
// @Tags 视频
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Success 200 {object} dto.LikeResult
// @Failure 404 {object} response.ErrorResponse
// @Router /videos/{id}/like [post]
func (h *VideoHandler) ToggleLike(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.interactionService.ToggleLike(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		handleVideoError(c, err)
		return
	}
	response.OK(c, result)
}

// RecordView 记录播放，同一账号只计一次
// @Summary 记录播放
// @Tags 视频
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Success 200 {object} dto.ViewResult
// @Failure 404 {object} response.ErrorResponse
// @Router /videos/{id}/view [post]
func (h *VideoHandler) RecordView(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.interactionService.RecordView(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		handleVideoError(c, err)
		return
	}
	response.OK(c, result)
}

// RecordHistory 记录观看历史
// @Summary 记录观看历史
// @Tags 视频
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /videos/{id}/history [post]
func (h *VideoHandler) RecordHistory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.historyService.Record(currentUserID(c), id); err != nil {
		handleVideoError(c, err)
		return
	}
	response.Success(c)
}

func handleVideoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVideoNotFound),
		errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrVideoNoPermission):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrVideoFileRequired),
		errors.Is(err, service.ErrVideoFieldsRequired):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Video operation failed", zap.Error(err))
		response.InternalError(c)
	}
}
