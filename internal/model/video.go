package model

import (
	"time"

	"github.com/lib/pq"
)

// DefaultThumbnailURL 未上传封面时使用的占位图
const DefaultThumbnailURL = "https://placehold.co/320x180/cccccc/000000?text=Video"

// Video 视频模型
type Video struct {
	ID           int64          `gorm:"primaryKey;autoIncrement;comment:视频标识" json:"id"`
	OwnerID      int64          `gorm:"not null;index:idx_owner_created,priority:1;comment:上传者ID" json:"ownerId"`
	Title        string         `gorm:"size:200;not null;comment:视频标题" json:"title"`
	Description  string         `gorm:"type:text;not null;comment:视频描述" json:"description"`
	VideoURL     string         `gorm:"size:500;not null;comment:视频地址" json:"videoUrl"`
	ThumbnailURL string         `gorm:"size:500;comment:封面地址" json:"thumbnailUrl"`
	Duration     float64        `gorm:"not null;comment:视频时长（秒）" json:"duration"`
	Tags         pq.StringArray `gorm:"type:text[];comment:标签" json:"tags"`
	Views        int64          `gorm:"not null;default:0;comment:播放量" json:"views"`
	CommentCount int64          `gorm:"not null;default:0;comment:评论数" json:"commentCount"`
	CreatedAt    time.Time      `gorm:"autoCreateTime;index:idx_videos_created_at;index:idx_owner_created,priority:2;comment:创建时间" json:"createdAt"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime;comment:更新时间" json:"updatedAt"`

	// 关联关系
	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

func (Video) TableName() string {
	return "videos"
}
