package service

import (
	"fmt"

	"vidshare-go/internal/api/dto"
	"vidshare-go/internal/metrics"
	"vidshare-go/internal/model"
)

// RecentNotificationLimit 通知列表返回条数
const RecentNotificationLimit = 20

type NotificationService struct {
	notificationRepo NotificationRepository
}

func NewNotificationService(notificationRepo NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// ListRecent 最近 20 条通知，最新的在前
func (s *NotificationService) ListRecent(userID int64) ([]dto.NotificationInfo, error) {
	notifications, err := s.notificationRepo.ListRecent(userID, RecentNotificationLimit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.NotificationInfo, 0, len(notifications))
	for i := range notifications {
		items = append(items, toNotificationInfo(&notifications[i]))
	}
	return items, nil
}

// MarkAllRead 全部标为已读
func (s *NotificationService) MarkAllRead(userID int64) error {
	_, err := s.notificationRepo.MarkAllRead(userID)
	return err
}

// 通知种类，用于指标标签
const (
	notifyComment   = "comment"
	notifyLike      = "like"
	notifySubscribe = "subscribe"
)

// newCommentNotification 评论通知，评论者即视频作者时返回 nil
func newCommentNotification(actor *model.User, video *model.Video) *model.Notification {
	if actor.ID == video.OwnerID {
		return nil
	}
	return &model.Notification{
		UserID:  video.OwnerID,
		Message: fmt.Sprintf("%s commented on your video \"%s\"", actor.Username, video.Title),
		Link:    fmt.Sprintf("/watch/%d", video.ID),
	}
}

// newLikeNotification 点赞通知，给自己的视频点赞时返回 nil
func newLikeNotification(actor *model.User, video *model.Video) *model.Notification {
	if actor.ID == video.OwnerID {
		return nil
	}
	return &model.Notification{
		UserID:  video.OwnerID,
		Message: fmt.Sprintf("%s liked your video \"%s\"", actor.Username, video.Title),
		Link:    fmt.Sprintf("/watch/%d", video.ID),
	}
}

// newSubscribeNotification 订阅通知，订阅自己时返回 nil
func newSubscribeNotification(actor *model.User, channelID int64) *model.Notification {
	if actor.ID == channelID {
		return nil
	}
	return &model.Notification{
		UserID:  channelID,
		Message: fmt.Sprintf("%s subscribed to your channel", actor.Username),
		Link:    fmt.Sprintf("/profile/%d", actor.ID),
	}
}

func countNotification(kind string, n *model.Notification) {
	if n != nil {
		metrics.Notifications.WithLabelValues(kind).Inc()
	}
}
