package dto

import "time"

// UserCreateRequest 直接创建账号（不签发 Token）
type UserCreateRequest struct {
	Username       string `json:"username" binding:"required,max=255"`
	Email          string `json:"email" binding:"required,max=255"`
	Password       string `json:"password" binding:"required,min=6,max=255"`
	ProfilePicture string `json:"profilePicture" binding:"omitempty,max=500"`
}

// UserUpdateRequest 更新账号（multipart/form-data，可附带头像文件 profilePicture）
// 密码不足 6 位时忽略
type UserUpdateRequest struct {
	Username    string `form:"username" json:"username" binding:"omitempty,max=255"`
	ChannelName string `form:"channelName" json:"channelName" binding:"omitempty,max=255"`
	Password    string `form:"password" json:"password" binding:"omitempty,max=255"`
}

// UserInfo 账号公开信息（不含密码）
type UserInfo struct {
	ID             int64     `json:"_id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	ChannelName    string    `json:"channelName"`
	ProfilePicture string    `json:"profilePicture"`
	JoinedDate     time.Time `json:"joinedDate"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// UserProfile 账号主页，订阅者展开为简要信息
type UserProfile struct {
	UserInfo
	Subscribers []ChannelBrief `json:"subscribers"`
}

// UserUpdateData 更新账号的响应
type UserUpdateData struct {
	User UserInfo `json:"user"`
}

// ChannelBrief 频道/账号简要信息
type ChannelBrief struct {
	ID             int64  `json:"_id"`
	Username       string `json:"username"`
	ChannelName    string `json:"channelName"`
	ProfilePicture string `json:"profilePicture"`
}

// SubscribeResult 订阅翻转结果
type SubscribeResult struct {
	Subscribed       bool  `json:"subscribed"`
	SubscribersCount int64 `json:"subscribersCount"`
}

// HistoryEntry 观看历史条目，视频已删除时 Video 为 null
type HistoryEntry struct {
	Video     *VideoInfo `json:"video"`
	WatchedAt time.Time  `json:"watchedAt"`
}
