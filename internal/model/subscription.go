package model

import "time"

// Subscription 订阅关系，ChannelID 为被订阅的账号
type Subscription struct {
	ID           int64     `gorm:"primaryKey;autoIncrement;comment:订阅关系id" json:"id"`
	ChannelID    int64     `gorm:"not null;uniqueIndex:uq_channel_subscriber;index:idx_subscriptions_channel_id;comment:被订阅账号id" json:"channelId"`
	SubscriberID int64     `gorm:"not null;uniqueIndex:uq_channel_subscriber;index:idx_subscriptions_subscriber_id;comment:订阅者账号id" json:"subscriberId"`
	CreatedAt    time.Time `gorm:"autoCreateTime;comment:订阅时间" json:"createdAt"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
