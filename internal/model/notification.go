package model

import "time"

// Notification 站内通知，UserID 为接收者
type Notification struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;index:idx_notifications_user_created,priority:1" json:"user"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Link      string    `gorm:"size:500" json:"link"`
	Read      bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_notifications_user_created,priority:2" json:"createdAt"`
}

func (Notification) TableName() string {
	return "notifications"
}

// All 需要自动迁移的模型
func All() []interface{} {
	return []interface{}{
		&User{},
		&Subscription{},
		&Video{},
		&VideoLike{},
		&VideoView{},
		&WatchLater{},
		&Comment{},
		&Notification{},
	}
}
