package service

import (
	"context"
	"testing"
	"time"

	infraES "vidshare-go/internal/infra/elasticsearch"
	infraKafka "vidshare-go/internal/infra/kafka"
	"vidshare-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestIndexService_HandleVideoEvent(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("upsert indexes video with channel name", func(t *testing.T) {
		videos, users, indexer := new(mockVideoRepo), new(mockUserRepo), new(mockIndexer)
		svc := NewIndexService(videos, users, indexer)
		videos.On("GetByIDWithOwner", int64(10)).Return(&model.Video{
			ID: 10, OwnerID: 1, Title: "Cats", CreatedAt: created,
			Owner: model.User{ID: 1, ChannelName: "Alice TV"},
		}, nil)
		indexer.On("IndexVideo", ctx, &infraES.VideoDoc{
			ID: 10, OwnerID: 1, Title: "Cats", ChannelName: "Alice TV", CreatedAt: created,
		}).Return(nil)

		require.NoError(t, svc.HandleVideoEvent(ctx, &infraKafka.VideoEvent{Type: infraKafka.EventVideoUpsert, VideoID: 10}))
		indexer.AssertExpectations(t)
	})

	t.Run("upsert of deleted video removes document", func(t *testing.T) {
		videos, users, indexer := new(mockVideoRepo), new(mockUserRepo), new(mockIndexer)
		svc := NewIndexService(videos, users, indexer)
		videos.On("GetByIDWithOwner", int64(10)).Return(nil, gorm.ErrRecordNotFound)
		indexer.On("DeleteVideo", ctx, int64(10)).Return(nil)

		require.NoError(t, svc.HandleVideoEvent(ctx, &infraKafka.VideoEvent{Type: infraKafka.EventVideoUpsert, VideoID: 10}))
		indexer.AssertExpectations(t)
	})

	t.Run("channel rename reindexes owner videos", func(t *testing.T) {
		videos, users, indexer := new(mockVideoRepo), new(mockUserRepo), new(mockIndexer)
		svc := NewIndexService(videos, users, indexer)
		users.On("GetByID", int64(1)).Return(&model.User{ID: 1, ChannelName: "New Name"}, nil)
		videos.On("ListByOwner", int64(1)).Return([]model.Video{{ID: 7, OwnerID: 1}, {ID: 8, OwnerID: 1}}, nil)
		indexer.On("BulkIndexVideos", ctx, mock.MatchedBy(func(docs []infraES.VideoDoc) bool {
			return len(docs) == 2 && docs[0].ChannelName == "New Name" && docs[1].ChannelName == "New Name"
		})).Return(2, 0, nil)

		require.NoError(t, svc.HandleVideoEvent(ctx, &infraKafka.VideoEvent{Type: infraKafka.EventChannelRename, UserID: 1}))
		indexer.AssertExpectations(t)
	})

	t.Run("channel of deleted account drops channel name", func(t *testing.T) {
		videos, users, indexer := new(mockVideoRepo), new(mockUserRepo), new(mockIndexer)
		svc := NewIndexService(videos, users, indexer)
		users.On("GetByID", int64(1)).Return(nil, gorm.ErrRecordNotFound)
		videos.On("ListByOwner", int64(1)).Return([]model.Video{{ID: 7, OwnerID: 1, Title: "Cats"}}, nil)
		indexer.On("BulkIndexVideos", ctx, mock.MatchedBy(func(docs []infraES.VideoDoc) bool {
			return len(docs) == 1 && docs[0].ID == 7 && docs[0].ChannelName == ""
		})).Return(1, 0, nil)

		require.NoError(t, svc.HandleVideoEvent(ctx, &infraKafka.VideoEvent{Type: infraKafka.EventChannelRename, UserID: 1}))
		indexer.AssertExpectations(t)
	})

	t.Run("unknown type", func(t *testing.T) {
		svc := NewIndexService(new(mockVideoRepo), new(mockUserRepo), new(mockIndexer))
		err := svc.HandleVideoEvent(ctx, &infraKafka.VideoEvent{Type: "bogus"})
		assert.Error(t, err)
	})
}
