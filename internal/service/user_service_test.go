package service

import (
	"context"
	"testing"

	infraKafka "vidshare-go/internal/infra/kafka"
	"vidshare-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userFixture struct {
	svc       *UserService
	users     *mockUserRepo
	videos    *mockVideoRepo
	cache     *mockCache
	publisher *mockPublisher
}

func setupUserService() *userFixture {
	f := &userFixture{
		users:     new(mockUserRepo),
		videos:    new(mockVideoRepo),
		cache:     new(mockCache),
		publisher: new(mockPublisher),
	}
	f.svc = NewUserService(f.users, new(mockSubscriptionRepo), f.videos, nil, f.cache, f.publisher, "test")
	return f
}

func TestUserService_Delete_NotOwner(t *testing.T) {
	f := setupUserService()

	err := f.svc.Delete(context.Background(), 1, 2)

	assert.ErrorIs(t, err, ErrUserNoPermission)
	f.users.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestUserService_Delete_NotFound(t *testing.T) {
	f := setupUserService()
	f.users.On("Delete", int64(1)).Return(false, nil)

	err := f.svc.Delete(context.Background(), 1, 1)

	assert.ErrorIs(t, err, ErrUserNotFound)
	f.cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "PublishVideoEvent", mock.Anything, mock.Anything)
}

func TestUserService_Delete_RefreshesChannelVideos(t *testing.T) {
	f := setupUserService()
	f.users.On("Delete", int64(1)).Return(true, nil)
	f.videos.On("ListByOwner", int64(1)).Return([]model.Video{{ID: 7, OwnerID: 1}, {ID: 8, OwnerID: 1}}, nil)
	f.cache.On("Invalidate", mock.Anything, []int64{7, 8}).Return(nil)
	f.publisher.On("PublishVideoEvent", mock.Anything, &infraKafka.VideoEvent{
		Type:   infraKafka.EventChannelRename,
		UserID: 1,
	}).Return(nil)

	require.NoError(t, f.svc.Delete(context.Background(), 1, 1))

	f.cache.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}
