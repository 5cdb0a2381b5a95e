package dto

import "time"

// NotificationInfo 站内通知
type NotificationInfo struct {
	ID        int64     `json:"_id"`
	User      int64     `json:"user"`
	Message   string    `json:"message"`
	Link      string    `json:"link"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
