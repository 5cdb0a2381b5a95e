package service

import (
	"context"
	"io"

	infraES "vidshare-go/internal/infra/elasticsearch"
	infraKafka "vidshare-go/internal/infra/kafka"
	"vidshare-go/internal/model"
	"vidshare-go/internal/repository"

	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) GetByID(id int64) (*model.User, error) {
	args := m.Called(id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Create(user *model.User) error {
	return m.Called(user).Error(0)
}

func (m *mockUserRepo) Update(id int64, updates map[string]interface{}) (*model.User, error) {
	args := m.Called(id, updates)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Delete(id int64) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) List() ([]model.User, error) {
	args := m.Called()
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *mockUserRepo) GetByIDs(ids []int64) ([]model.User, error) {
	args := m.Called(ids)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *mockUserRepo) SaveWatchHistory(id int64, history model.WatchHistory) error {
	return m.Called(id, history).Error(0)
}

type mockSubscriptionRepo struct{ mock.Mock }

func (m *mockSubscriptionRepo) Toggle(channelID, subscriberID int64, notify *model.Notification) (bool, int64, error) {
	args := m.Called(channelID, subscriberID, notify)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}

func (m *mockSubscriptionRepo) SubscriberIDs(channelID int64) ([]int64, error) {
	args := m.Called(channelID)
	ids, _ := args.Get(0).([]int64)
	return ids, args.Error(1)
}

func (m *mockSubscriptionRepo) ListSubscribers(channelID int64) ([]model.User, error) {
	args := m.Called(channelID)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *mockSubscriptionRepo) ListChannels(subscriberID int64) ([]model.User, error) {
	args := m.Called(subscriberID)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

type mockVideoRepo struct{ mock.Mock }

func (m *mockVideoRepo) GetByID(id int64) (*model.Video, error) {
	args := m.Called(id)
	if v, ok := args.Get(0).(*model.Video); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVideoRepo) GetByIDWithOwner(id int64) (*model.Video, error) {
	args := m.Called(id)
	if v, ok := args.Get(0).(*model.Video); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVideoRepo) Create(video *model.Video) error {
	return m.Called(video).Error(0)
}

func (m *mockVideoRepo) Update(id int64, updates map[string]interface{}) (*model.Video, error) {
	args := m.Called(id, updates)
	if v, ok := args.Get(0).(*model.Video); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVideoRepo) Delete(id int64) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *mockVideoRepo) List(ownerID *int64) ([]model.Video, error) {
	args := m.Called(ownerID)
	videos, _ := args.Get(0).([]model.Video)
	return videos, args.Error(1)
}

func (m *mockVideoRepo) ListByOwners(ownerIDs []int64) ([]model.Video, error) {
	args := m.Called(ownerIDs)
	videos, _ := args.Get(0).([]model.Video)
	return videos, args.Error(1)
}

func (m *mockVideoRepo) ListByOwner(ownerID int64) ([]model.Video, error) {
	args := m.Called(ownerID)
	videos, _ := args.Get(0).([]model.Video)
	return videos, args.Error(1)
}

func (m *mockVideoRepo) GetByIDs(ids []int64) ([]model.Video, error) {
	args := m.Called(ids)
	videos, _ := args.Get(0).([]model.Video)
	return videos, args.Error(1)
}

func (m *mockVideoRepo) SearchByTitle(q string) ([]model.Video, error) {
	args := m.Called(q)
	videos, _ := args.Get(0).([]model.Video)
	return videos, args.Error(1)
}

func (m *mockVideoRepo) SearchByChannelName(q string) ([]model.Video, error) {
	args := m.Called(q)
	videos, _ := args.Get(0).([]model.Video)
	return videos, args.Error(1)
}

func (m *mockVideoRepo) RecordView(videoID, userID int64) (bool, int64, error) {
	args := m.Called(videoID, userID)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}

type mockLikeRepo struct{ mock.Mock }

func (m *mockLikeRepo) Toggle(videoID, userID int64, notify *model.Notification) (bool, int64, error) {
	args := m.Called(videoID, userID, notify)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}

func (m *mockLikeRepo) LikerIDs(videoID int64) ([]int64, error) {
	args := m.Called(videoID)
	ids, _ := args.Get(0).([]int64)
	return ids, args.Error(1)
}

func (m *mockLikeRepo) ListLikedVideos(userID int64) ([]model.Video, error) {
	args := m.Called(userID)
	videos, _ := args.Get(0).([]model.Video)
	return videos, args.Error(1)
}

type mockWatchLaterRepo struct{ mock.Mock }

func (m *mockWatchLaterRepo) Add(userID, videoID int64) (bool, error) {
	args := m.Called(userID, videoID)
	return args.Bool(0), args.Error(1)
}

func (m *mockWatchLaterRepo) Remove(userID, videoID int64) (bool, error) {
	args := m.Called(userID, videoID)
	return args.Bool(0), args.Error(1)
}

func (m *mockWatchLaterRepo) ListVideos(userID int64) ([]model.Video, error) {
	args := m.Called(userID)
	videos, _ := args.Get(0).([]model.Video)
	return videos, args.Error(1)
}

type mockCommentRepo struct{ mock.Mock }

func (m *mockCommentRepo) Create(comment *model.Comment, notify *model.Notification) error {
	return m.Called(comment, notify).Error(0)
}

func (m *mockCommentRepo) GetByID(id int64) (*model.Comment, error) {
	args := m.Called(id)
	if c, ok := args.Get(0).(*model.Comment); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommentRepo) UpdateContent(id int64, content string) (*model.Comment, error) {
	args := m.Called(id, content)
	if c, ok := args.Get(0).(*model.Comment); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommentRepo) Delete(comment *model.Comment) (bool, error) {
	args := m.Called(comment)
	return args.Bool(0), args.Error(1)
}

func (m *mockCommentRepo) List(filter repository.CommentFilter, skip, limit int) ([]model.Comment, int64, error) {
	args := m.Called(filter, skip, limit)
	comments, _ := args.Get(0).([]model.Comment)
	return comments, args.Get(1).(int64), args.Error(2)
}

func (m *mockCommentRepo) ListByVideo(videoID int64) ([]model.Comment, error) {
	args := m.Called(videoID)
	comments, _ := args.Get(0).([]model.Comment)
	return comments, args.Error(1)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) Get(ctx context.Context, videoID int64) ([]byte, int64, error) {
	args := m.Called(ctx, videoID)
	data, _ := args.Get(0).([]byte)
	return data, args.Get(1).(int64), args.Error(2)
}

func (m *mockCache) Set(ctx context.Context, videoID int64, data []byte, version int64) error {
	return m.Called(ctx, videoID, data, version).Error(0)
}

func (m *mockCache) Invalidate(ctx context.Context, videoIDs ...int64) error {
	return m.Called(ctx, videoIDs).Error(0)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) PublishVideoEvent(ctx context.Context, ev *infraKafka.VideoEvent) error {
	return m.Called(ctx, ev).Error(0)
}

type mockSearcher struct{ mock.Mock }

func (m *mockSearcher) SearchVideoIDs(ctx context.Context, q string) ([]int64, error) {
	args := m.Called(ctx, q)
	ids, _ := args.Get(0).([]int64)
	return ids, args.Error(1)
}

type mockStore struct{ mock.Mock }

func (m *mockStore) Save(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, key, reader, size, contentType)
	return args.String(0), args.Error(1)
}

type mockIndexer struct{ mock.Mock }

func (m *mockIndexer) IndexVideo(ctx context.Context, doc *infraES.VideoDoc) error {
	return m.Called(ctx, doc).Error(0)
}

func (m *mockIndexer) DeleteVideo(ctx context.Context, videoID int64) error {
	return m.Called(ctx, videoID).Error(0)
}

func (m *mockIndexer) BulkIndexVideos(ctx context.Context, docs []infraES.VideoDoc) (int, int, error) {
	args := m.Called(ctx, docs)
	return args.Int(0), args.Int(1), args.Error(2)
}
