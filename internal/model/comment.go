package model

import "time"

// Comment 评论模型，Username 为发表时的用户名快照
type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:评论ID" json:"id"`
	UserID    int64     `gorm:"not null;index:idx_comments_user_id;comment:评论用户ID" json:"userId"`
	Username  string    `gorm:"size:255;not null;comment:评论时的用户名" json:"username"`
	VideoID   int64     `gorm:"not null;index:idx_composite_video_created,priority:1;comment:被评论视频ID" json:"videoId"`
	Content   string    `gorm:"type:text;not null;comment:评论内容" json:"content"`
	ParentID  *int64    `gorm:"index:idx_comments_parent_id;comment:父评论ID" json:"parentId"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_composite_video_created,priority:2;comment:评论时间" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updatedAt"`
}

func (Comment) TableName() string {
	return "comments"
}
