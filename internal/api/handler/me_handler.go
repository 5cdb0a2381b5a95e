package handler

import (
	"vidshare-go/internal/api/response"
	"vidshare-go/internal/service"

	"github.com/gin-gonic/gin"
)

// MeHandler 当前账号的个人列表：观看历史、点赞、稍后观看、通知
type MeHandler struct {
	historyService      *service.HistoryService
	interactionService  *service.InteractionService
	notificationService *service.NotificationService
}

func NewMeHandler(
	historyService *service.HistoryService,
	interactionService *service.InteractionService,
	notificationService *service.NotificationService,
) *MeHandler {
	return &MeHandler{
		historyService:      historyService,
		interactionService:  interactionService,
		notificationService: notificationService,
	}
}

// History 观看历史
// @Summary 观看历史
// @Description 最近观看在前，最多 100 条；视频已删除的条目 video 为 null
// @Tags 我的
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.HistoryEntry
// @Router /users/me/history [get]
func (h *MeHandler) History(c *gin.Context) {
	entries, err := h.historyService.List(currentUserID(c))
	if err != nil {
		handleVideoError(c, err)
		return
	}
	response.OK(c, entries)
}

// LikedVideos 点赞过的视频
// @Summary 点赞过的视频
// @Tags 我的
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.VideoInfo
// @Router /users/me/liked-videos [get]
func (h *MeHandler) LikedVideos(c *gin.Context) {
	videos, err := h.interactionService.ListLiked(currentUserID(c))
	if err != nil {
		handleVideoError(c, err)
		return
	}
	response.OK(c, videos)
}

// WatchLater 稍后观看列表
// @Summary 稍后观看列表
// @Tags 我的
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.VideoInfo
// @Router /users/me/watch-later [get]
func (h *MeHandler) WatchLater(c *gin.Context) {
	videos, err := h.interactionService.ListWatchLater(currentUserID(c))
	if err != nil {
		handleVideoError(c, err)
		return
	}
	response.OK(c, videos)
}

// AddWatchLater 加入稍后观看
// @Summary 加入稍后观看
// @Tags 我的
// @Produce json
// @Security BearerAuth
// @Param videoId path int true "视频ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/me/watch-later/{videoId} [post]
func (h *MeHandler) AddWatchLater(c *gin.Context) {
	videoID, ok := parseIDParam(c, "videoId")
	if !ok {
		return
	}
	if err := h.interactionService.AddWatchLater(currentUserID(c), videoID); err != nil {
		handleVideoError(c, err)
		return
	}
	response.Success(c)
}

// RemoveWatchLater 移出稍后观看
// @Summary 移出稍后观看
// @Tags 我的
// @Produce json
// @Security BearerAuth
// @Param videoId path int true "视频ID"
// @Success 200 {object} response.SuccessResponse
// @Router /users/me/watch-later/{videoId} [delete]
func (h *MeHandler) RemoveWatchLater(c *gin.Context) {
	videoID, ok := parseIDParam(c, "videoId")
	if !ok {
		return
	}
	if err := h.interactionService.RemoveWatchLater(currentUserID(c), videoID); err != nil {
		handleVideoError(c, err)
		return
	}
	response.Success(c)
}

// Notifications 最近 20 条通知
// @Summary 通知列表
// @Tags 我的
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.NotificationInfo
// @Router /users/me/notifications [get]
func (h *MeHandler) Notifications(c *gin.Context) {
	items, err := h.notificationService.ListRecent(currentUserID(c))
	if err != nil {
		handleVideoError(c, err)
		return
	}
	response.OK(c, items)
}

// MarkNotificationsRead 全部标为已读
// @Summary 通知全部已读
// @Tags 我的
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Router /users/me/notifications/mark-read [post]
func (h *MeHandler) MarkNotificationsRead(c *gin.Context) {
	if err := h.notificationService.MarkAllRead(currentUserID(c)); err != nil {
		handleVideoError(c, err)
		return
	}
	response.Success(c)
}
