package dto

// SearchVideoRequest 搜索请求参数
type SearchVideoRequest struct {
	Q string `form:"q"`
}

// ChannelVideosRequest 按频道拉取视频，ids 为逗号分隔的账号 ID
type ChannelVideosRequest struct {
	IDs string `form:"ids"`
}
