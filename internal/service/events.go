package service

import (
	"context"
	"time"

	infraKafka "vidshare-go/internal/infra/kafka"
	"vidshare-go/pkg/logger"

	"go.uber.org/zap"
)

const sideEffectTimeout = 3 * time.Second

// invalidateVideos 删除视频详情缓存，失败只记录日志，缓存有 TTL 兜底
func invalidateVideos(ctx context.Context, cache VideoCache, ids ...int64) {
	if cache == nil || len(ids) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, sideEffectTimeout)
	defer cancel()
	if err := cache.Invalidate(ctx, ids...); err != nil {
		logger.Warn("Invalidate video cache failed", zap.Int64s("video_ids", ids), zap.Error(err))
	}
}

// invalidateChannelVideos 上传者信息变化后删除其全部视频的详情缓存
func invalidateChannelVideos(ctx context.Context, cache VideoCache, videoRepo VideoRepository, ownerID int64) {
	if cache == nil {
		return
	}
	videos, err := videoRepo.ListByOwner(ownerID)
	if err != nil {
		logger.Warn("List channel videos for cache invalidation failed", zap.Int64("owner_id", ownerID), zap.Error(err))
		return
	}
	ids := make([]int64, 0, len(videos))
	for i := range videos {
		ids = append(ids, videos[i].ID)
	}
	invalidateVideos(ctx, cache, ids...)
}

// publishVideoEvent 发送搜索索引事件，失败只记录日志，索引可通过 worker -reindex 重建
func publishVideoEvent(ctx context.Context, publisher EventPublisher, ev *infraKafka.VideoEvent) {
	if publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, sideEffectTimeout)
	defer cancel()
	if err := publisher.PublishVideoEvent(ctx, ev); err != nil {
		logger.Warn("Publish video event failed",
			zap.String("type", ev.Type),
			zap.Int64("video_id", ev.VideoID),
			zap.Int64("user_id", ev.UserID),
			zap.Error(err),
		)
	}
}
