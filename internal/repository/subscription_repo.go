package repository

import (
	"vidshare-go/internal/model"

	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Toggle 翻转订阅关系，返回翻转后的状态与频道订阅数
func (r *SubscriptionRepository) Toggle(channelID, subscriberID int64, notify *model.Notification) (bool, int64, error) {
	return toggleMembership(r.db,
		&model.Subscription{ChannelID: channelID, SubscriberID: subscriberID},
		map[string]interface{}{"channel_id": channelID, "subscriber_id": subscriberID},
		map[string]interface{}{"channel_id": channelID},
		notify,
	)
}

// SubscriberIDs 频道的订阅者 ID
func (r *SubscriptionRepository) SubscriberIDs(channelID int64) ([]int64, error) {
	var ids []int64
	err := r.db.Model(&model.Subscription{}).
		Where("channel_id = ?", channelID).
		Order("created_at ASC").
		Pluck("subscriber_id", &ids).Error
	return ids, err
}

// ListSubscribers 频道的订阅者
func (r *SubscriptionRepository) ListSubscribers(channelID int64) ([]model.User, error) {
	var users []model.User
	err := r.db.Model(&model.User{}).
		Joins("JOIN subscriptions ON subscriptions.subscriber_id = users.id").
		Where("subscriptions.channel_id = ?", channelID).
		Order("subscriptions.created_at ASC").
		Find(&users).Error
	return users, err
}

// ListChannels 用户订阅的频道
func (r *SubscriptionRepository) ListChannels(subscriberID int64) ([]model.User, error) {
	var users []model.User
	err := r.db.Model(&model.User{}).
		Joins("JOIN subscriptions ON subscriptions.channel_id = users.id").
		Where("subscriptions.subscriber_id = ?", subscriberID).
		Order("subscriptions.created_at DESC").
		Find(&users).Error
	return users, err
}
