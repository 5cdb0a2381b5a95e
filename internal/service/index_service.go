package service

import (
	"context"
	"errors"
	"fmt"

	infraES "vidshare-go/internal/infra/elasticsearch"
	infraKafka "vidshare-go/internal/infra/kafka"
	"vidshare-go/internal/model"
	"vidshare-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// VideoIndexer 搜索索引写入端
type VideoIndexer interface {
	IndexVideo(ctx context.Context, doc *infraES.VideoDoc) error
	DeleteVideo(ctx context.Context, videoID int64) error
	BulkIndexVideos(ctx context.Context, docs []infraES.VideoDoc) (success, failed int, err error)
}

var _ VideoIndexer = (*infraES.Client)(nil)

// IndexService 消费视频事件并维护搜索索引
type IndexService struct {
	videoRepo VideoRepository
	userRepo  UserRepository
	indexer   VideoIndexer
}

func NewIndexService(videoRepo VideoRepository, userRepo UserRepository, indexer VideoIndexer) *IndexService {
	return &IndexService{videoRepo: videoRepo, userRepo: userRepo, indexer: indexer}
}

// HandleVideoEvent 处理单条视频事件
func (s *IndexService) HandleVideoEvent(ctx context.Context, ev *infraKafka.VideoEvent) error {
	switch ev.Type {
	case infraKafka.EventVideoUpsert:
		video, err := s.videoRepo.GetByIDWithOwner(ev.VideoID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// 事件到达前视频已被删除
				return s.indexer.DeleteVideo(ctx, ev.VideoID)
			}
			return err
		}
		doc := toVideoDoc(video, &video.Owner)
		return s.indexer.IndexVideo(ctx, &doc)

	case infraKafka.EventVideoDelete:
		return s.indexer.DeleteVideo(ctx, ev.VideoID)

	case infraKafka.EventChannelRename:
		return s.reindexChannel(ctx, ev.UserID)

	default:
		return fmt.Errorf("unknown video event type %q", ev.Type)
	}
}

func (s *IndexService) reindexChannel(ctx context.Context, ownerID int64) error {
	owner, err := s.userRepo.GetByID(ownerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// 账号已删除，视频仍在，去掉频道名
		owner, err = &model.User{ID: ownerID}, nil
	}
	if err != nil {
		return err
	}

	videos, err := s.videoRepo.ListByOwner(ownerID)
	if err != nil {
		return err
	}
	if len(videos) == 0 {
		return nil
	}

	docs := make([]infraES.VideoDoc, 0, len(videos))
	for i := range videos {
		docs = append(docs, toVideoDoc(&videos[i], owner))
	}

	success, failed, err := s.indexer.BulkIndexVideos(ctx, docs)
	if err != nil {
		return err
	}
	logger.Info("Channel reindexed", zap.Int64("owner_id", ownerID), zap.Int("success", success), zap.Int("failed", failed))
	return nil
}

// ReindexAll 全量重建索引
func (s *IndexService) ReindexAll(ctx context.Context) error {
	videos, err := s.videoRepo.List(nil)
	if err != nil {
		return err
	}
	if len(videos) == 0 {
		logger.Info("No videos to reindex")
		return nil
	}

	docs := make([]infraES.VideoDoc, 0, len(videos))
	for i := range videos {
		docs = append(docs, toVideoDoc(&videos[i], &videos[i].Owner))
	}

	success, failed, err := s.indexer.BulkIndexVideos(ctx, docs)
	if err != nil {
		return err
	}
	logger.Info("Full reindex completed", zap.Int("total", len(docs)), zap.Int("success", success), zap.Int("failed", failed))
	return nil
}

func toVideoDoc(v *model.Video, owner *model.User) infraES.VideoDoc {
	return infraES.VideoDoc{
		ID:          v.ID,
		OwnerID:     v.OwnerID,
		Title:       v.Title,
		ChannelName: owner.ChannelName,
		CreatedAt:   v.CreatedAt,
	}
}
