package service

import (
	"testing"
	"time"

	"vidshare-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestHistoryService_Record(t *testing.T) {
	users := new(mockUserRepo)
	videos := new(mockVideoRepo)
	svc := NewHistoryService(users, videos)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	earlier := now.Add(-time.Hour)
	videos.On("GetByID", int64(2)).Return(&model.Video{ID: 2}, nil)
	users.On("GetByID", int64(1)).Return(&model.User{ID: 1, WatchHistory: model.WatchHistory{
		{VideoID: 1, WatchedAt: earlier},
		{VideoID: 2, WatchedAt: earlier},
	}}, nil)
	users.On("SaveWatchHistory", int64(1), model.WatchHistory{
		{VideoID: 2, WatchedAt: now},
		{VideoID: 1, WatchedAt: earlier},
	}).Return(nil)

	require.NoError(t, svc.Record(1, 2))
	users.AssertExpectations(t)
}

func TestHistoryService_Record_UnknownVideo(t *testing.T) {
	users := new(mockUserRepo)
	videos := new(mockVideoRepo)
	svc := NewHistoryService(users, videos)
	videos.On("GetByID", int64(2)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.Record(1, 2)

	assert.ErrorIs(t, err, ErrVideoNotFound)
	users.AssertNotCalled(t, "SaveWatchHistory", mock.Anything, mock.Anything)
}

func TestHistoryService_List_DeletedVideoIsNull(t *testing.T) {
	users := new(mockUserRepo)
	videos := new(mockVideoRepo)
	svc := NewHistoryService(users, videos)
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	users.On("GetByID", int64(1)).Return(&model.User{ID: 1, WatchHistory: model.WatchHistory{
		{VideoID: 3, WatchedAt: at},
		{VideoID: 4, WatchedAt: at},
	}}, nil)
	videos.On("GetByIDs", []int64{3, 4}).Return([]model.Video{{ID: 4, Title: "kept"}}, nil)

	entries, err := svc.List(1)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Nil(t, entries[0].Video)
	require.NotNil(t, entries[1].Video)
	assert.Equal(t, "kept", entries[1].Video.Title)
	assert.Equal(t, at, entries[1].WatchedAt)
}
