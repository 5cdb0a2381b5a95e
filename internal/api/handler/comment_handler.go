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

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// ListComments 评论分页列表
// @Summary 评论列表
// @Description 最新的在前，可按视频或账号过滤
// @Tags 评论
// @Produce json
// @Param videoId query int false "视频ID"
// @Param userId query int false "账号ID"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页条数" default(10)
// @Success 200 {object} dto.CommentListData
// @Router /comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	var q dto.CommentListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		invalidRequest(c, err)
		return
	}

	data, err := h.commentService.List(&q)
	if err != nil {
		handleCommentError(c, err)
		return
	}
	response.OK(c, data)
}

// GetComment 单条评论
// @Summary 评论详情
// @Tags 评论
// @Produce json
// @Param id path int true "评论ID"
// @Success 200 {object} dto.CommentSummary
// @Failure 404 {object} response.ErrorResponse
// @Router /comments/{id} [get]
func (h *CommentHandler) GetComment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	comment, err := h.commentService.Get(id)
	if err != nil {
		handleCommentError(c, err)
		return
	}
	response.OK(c, comment)
}

// CreateComment 发表评论或回复
// @Summary 发表评论
// @Tags 评论
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CommentCreateRequest true "评论内容"
// @Success 201 {object} dto.CommentInfo
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req dto.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		handleCommentError(c, err)
		return
	}
	response.Created(c, comment)
}

// UpdateComment 修改评论
// @Summary 修改评论
// @Tags 评论
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "评论ID"
// @Param request body dto.CommentUpdateRequest true "新内容"
// @Success 200 {object} dto.CommentInfo
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /comments/{id} [put]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CommentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	comment, err := h.commentService.Update(id, currentUserID(c), &req)
	if err != nil {
		handleCommentError(c, err)
		return
	}
	response.OK(c, comment)
}

// DeleteComment 删除评论
// @Summary 删除评论
// @Description 回复保留
// @Tags 评论
// @Produce json
// @Security BearerAuth
// @Param id path int true "评论ID"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), id, currentUserID(c)); err != nil {
		handleCommentError(c, err)
		return
	}
	response.Message(c, "Comment deleted successfully")
}

// VideoComments 视频的评论树
// @Summary 视频评论树
// @Tags 评论
// @Produce json
// @Param videoId path int true "视频ID"
// @Success 200 {array} dto.CommentNode
// @Router /comments/video/{videoId} [get]
func (h *CommentHandler) VideoComments(c *gin.Context) {
	videoID, ok := parseIDParam(c, "videoId")
	if !ok {
		return
	}

	forest, err := h.commentService.Forest(videoID)
	if err != nil {
		handleCommentError(c, err)
		return
	}
	response.OK(c, forest)
}

func handleCommentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCommentNotFound),
		errors.Is(err, service.ErrParentNotFound),
		errors.Is(err, service.ErrVideoNotFound),
		errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrCommentNoPermission):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrParentVideoMismatch),
		errors.Is(err, service.ErrCommentContentRequired):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Comment operation failed", zap.Error(err))
		response.InternalError(c)
	}
}
