package dto

import "time"

// VideoCreateRequest 视频上传请求（multipart/form-data，文件字段 video、thumbnail）
type VideoCreateRequest struct {
	Title       string   `form:"title" binding:"required,max=200"`
	Description string   `form:"description" binding:"required"`
	Duration    *float64 `form:"duration" binding:"required,gte=0"`
	Tags        []string `form:"tags"`
}

// VideoUpdateRequest 视频更新请求，空字段不更新
type VideoUpdateRequest struct {
	Title       string `json:"title" binding:"omitempty,max=200"`
	Description string `json:"description"`
}

// OwnerBrief 视频中嵌套的上传者信息
type OwnerBrief struct {
	ID             int64    `json:"_id"`
	Username       string   `json:"username"`
	ChannelName    string   `json:"channelName"`
	ProfilePicture string   `json:"profilePicture"`
	Subscribers    []string `json:"subscribers"`
}

// VideoInfo 视频信息
type VideoInfo struct {
	ID           int64       `json:"_id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	VideoURL     string      `json:"videoUrl"`
	ThumbnailURL string      `json:"thumbnailUrl"`
	Owner        *OwnerBrief `json:"owner"`
	Views        int64       `json:"views"`
	Duration     float64     `json:"duration"`
	Tags         []string    `json:"tags"`
	CommentCount int64       `json:"commentCount"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// VideoDetail 视频详情，点赞账号 ID 以字符串数组返回
type VideoDetail struct {
	VideoInfo
	Likes []string `json:"likes"`
}

// LikeResult 点赞翻转结果
type LikeResult struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likesCount"`
}

// ViewResult 播放量
type ViewResult struct {
	Views int64 `json:"views"`
}
