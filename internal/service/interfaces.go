package service

import (
	"context"
	"io"

	infraKafka "vidshare-go/internal/infra/kafka"
	"vidshare-go/internal/model"
	"vidshare-go/internal/repository"
)

// UserRepository 账号存储
type UserRepository interface {
	GetByID(id int64) (*model.User, error)
	GetByEmail(email string) (*model.User, error)
	Create(user *model.User) error
	Update(id int64, updates map[string]interface{}) (*model.User, error)
	Delete(id int64) (bool, error)
	List() ([]model.User, error)
	GetByIDs(ids []int64) ([]model.User, error)
	SaveWatchHistory(id int64, history model.WatchHistory) error
}

// SubscriptionRepository 订阅关系存储
type SubscriptionRepository interface {
	Toggle(channelID, subscriberID int64, notify *model.Notification) (bool, int64, error)
	SubscriberIDs(channelID int64) ([]int64, error)
	ListSubscribers(channelID int64) ([]model.User, error)
	ListChannels(subscriberID int64) ([]model.User, error)
}

// VideoRepository 视频存储
type VideoRepository interface {
	GetByID(id int64) (*model.Video, error)
	GetByIDWithOwner(id int64) (*model.Video, error)
	Create(video *model.Video) error
	Update(id int64, updates map[string]interface{}) (*model.Video, error)
	Delete(id int64) (bool, error)
	List(ownerID *int64) ([]model.Video, error)
	ListByOwners(ownerIDs []int64) ([]model.Video, error)
	ListByOwner(ownerID int64) ([]model.Video, error)
	GetByIDs(ids []int64) ([]model.Video, error)
	SearchByTitle(q string) ([]model.Video, error)
	SearchByChannelName(q string) ([]model.Video, error)
	RecordView(videoID, userID int64) (bool, int64, error)
}

// LikeRepository 点赞存储
type LikeRepository interface {
	Toggle(videoID, userID int64, notify *model.Notification) (bool, int64, error)
	LikerIDs(videoID int64) ([]int64, error)
	ListLikedVideos(userID int64) ([]model.Video, error)
}

// WatchLaterRepository 稍后观看存储
type WatchLaterRepository interface {
	Add(userID, videoID int64) (bool, error)
	Remove(userID, videoID int64) (bool, error)
	ListVideos(userID int64) ([]model.Video, error)
}

// CommentRepository 评论存储
type CommentRepository interface {
	Create(comment *model.Comment, notify *model.Notification) error
	GetByID(id int64) (*model.Comment, error)
	UpdateContent(id int64, content string) (*model.Comment, error)
	Delete(comment *model.Comment) (bool, error)
	List(filter repository.CommentFilter, skip, limit int) ([]model.Comment, int64, error)
	ListByVideo(videoID int64) ([]model.Comment, error)
}

// NotificationRepository 通知存储
type NotificationRepository interface {
	ListRecent(userID int64, limit int) ([]model.Notification, error)
	MarkAllRead(userID int64) (int64, error)
}

// ObjectStore 媒体文件存储，返回可公开访问的 URL
type ObjectStore interface {
	Save(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
}

// VideoCache 视频详情缓存
// Get 未命中时返回 nil 数据和当前版本号；Set 只在版本号未被 Invalidate 改变时写入
type VideoCache interface {
	Get(ctx context.Context, videoID int64) ([]byte, int64, error)
	Set(ctx context.Context, videoID int64, data []byte, version int64) error
	Invalidate(ctx context.Context, videoIDs ...int64) error
}

// EventPublisher 搜索索引事件发布
type EventPublisher interface {
	PublishVideoEvent(ctx context.Context, ev *infraKafka.VideoEvent) error
}

// VideoSearcher 全文检索后端，返回按相关性排好序的视频 ID
type VideoSearcher interface {
	SearchVideoIDs(ctx context.Context, q string) ([]int64, error)
}

var (
	_ UserRepository         = (*repository.UserRepository)(nil)
	_ SubscriptionRepository = (*repository.SubscriptionRepository)(nil)
	_ VideoRepository        = (*repository.VideoRepository)(nil)
	_ LikeRepository         = (*repository.LikeRepository)(nil)
	_ WatchLaterRepository   = (*repository.WatchLaterRepository)(nil)
	_ CommentRepository      = (*repository.CommentRepository)(nil)
	_ NotificationRepository = (*repository.NotificationRepository)(nil)
)
