package model

import "time"

// VideoLike 点赞记录，(VideoID, UserID) 唯一
type VideoLike struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:点赞记录ID" json:"id"`
	VideoID   int64     `gorm:"not null;uniqueIndex:uq_video_like;comment:被点赞视频ID" json:"videoId"`
	UserID    int64     `gorm:"not null;uniqueIndex:uq_video_like;index:idx_video_likes_user_id;comment:点赞账号ID" json:"userId"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:点赞时间" json:"createdAt"`
}

func (VideoLike) TableName() string {
	return "video_likes"
}

// VideoView 已计入播放量的观看者，(VideoID, UserID) 唯一
type VideoView struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	VideoID   int64     `gorm:"not null;uniqueIndex:uq_video_view" json:"videoId"`
	UserID    int64     `gorm:"not null;uniqueIndex:uq_video_view" json:"userId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (VideoView) TableName() string {
	return "video_views"
}

// WatchLater 稍后观看列表项，按加入时间倒序展示
type WatchLater struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:uq_watch_later;index:idx_watch_later_user_created,priority:1" json:"userId"`
	VideoID   int64     `gorm:"not null;uniqueIndex:uq_watch_later" json:"videoId"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_watch_later_user_created,priority:2" json:"createdAt"`
}

func (WatchLater) TableName() string {
	return "watch_later"
}
