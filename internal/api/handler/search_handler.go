package handler

import (
	"vidshare-go/internal/api/dto"
	"vidshare-go/internal/api/response"
	"vidshare-go/internal/service"
	"vidshare-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SearchHandler struct {
	searchService *service.SearchService
}

func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// SearchVideos 搜索视频
// @Summary 搜索视频
// @Description 按标题或频道名做不区分大小写的子串匹配，标题命中在前；ES 不可用时降级到数据库
// @Tags 搜索
// @Produce json
// @Param q query string false "关键词"
// @Success 200 {array} dto.VideoInfo
// @Router /videos/search [get]
func (h *SearchHandler) SearchVideos(c *gin.Context) {
	var req dto.SearchVideoRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	videos, err := h.searchService.Search(c.Request.Context(), req.Q)
	if err != nil {
		logger.Error("Search videos failed", zap.String("q", req.Q), zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, videos)
}
