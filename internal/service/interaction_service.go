package service

import (
	"context"
	"errors"

	"vidshare-go/internal/api/dto"
	"vidshare-go/internal/metrics"
	"vidshare-go/internal/model"

	"gorm.io/gorm"
)

// InteractionService 点赞、订阅、播放量、稍后观看
type InteractionService struct {
	userRepo       UserRepository
	videoRepo      VideoRepository
	likeRepo       LikeRepository
	subRepo        SubscriptionRepository
	watchLaterRepo WatchLaterRepository
	cache          VideoCache
}

func NewInteractionService(
	userRepo UserRepository,
	videoRepo VideoRepository,
	likeRepo LikeRepository,
	subRepo SubscriptionRepository,
	watchLaterRepo WatchLaterRepository,
	cache VideoCache,
) *InteractionService {
	return &InteractionService{
		userRepo:       userRepo,
		videoRepo:      videoRepo,
		likeRepo:       likeRepo,
		subRepo:        subRepo,
		watchLaterRepo: watchLaterRepo,
		cache:          cache,
	}
}

// ToggleLike 点赞/取消点赞，返回新的状态与点赞数
func (s *InteractionService) ToggleLike(ctx context.Context, videoID, userID int64) (*dto.LikeResult, error) {
	video, err := s.getVideo(videoID)
	if err != nil {
		return nil, err
	}
	actor, err := s.getUser(userID)
	if err != nil {
		return nil, err
	}

	notify := newLikeNotification(actor, video)
	liked, count, err := s.likeRepo.Toggle(videoID, userID, notify)
	if err != nil {
		return nil, err
	}

	recordToggle("like", liked)
	if liked {
		countNotification(notifyLike, notify)
	}
	invalidateVideos(ctx, s.cache, videoID)

	return &dto.LikeResult{Liked: liked, LikesCount: count}, nil
}

// ToggleSubscribe 订阅/取消订阅频道，返回新的状态与订阅数
func (s *InteractionService) ToggleSubscribe(ctx context.Context, channelID, userID int64) (*dto.SubscribeResult, error) {
	if _, err := s.getUser(channelID); err != nil {
		return nil, err
	}
	actor, err := s.getUser(userID)
	if err != nil {
		return nil, err
	}

	notify := newSubscribeNotification(actor, channelID)
	subscribed, count, err := s.subRepo.Toggle(channelID, userID, notify)
	if err != nil {
		return nil, err
	}

	recordToggle("subscribe", subscribed)
	if subscribed {
		countNotification(notifySubscribe, notify)
	}
	invalidateChannelVideos(ctx, s.cache, s.videoRepo, channelID)

	return &dto.SubscribeResult{Subscribed: subscribed, SubscribersCount: count}, nil
}

// RecordView 记录观看，同一账号对同一视频只计一次
func (s *InteractionService) RecordView(ctx context.Context, videoID, userID int64) (*dto.ViewResult, error) {
	if _, err := s.getVideo(videoID); err != nil {
		return nil, err
	}

	counted, views, err := s.videoRepo.RecordView(videoID, userID)
	if err != nil {
		return nil, err
	}

	if counted {
		metrics.Views.Inc()
		invalidateVideos(ctx, s.cache, videoID)
	}

	return &dto.ViewResult{Views: views}, nil
}

// AddWatchLater 加入稍后观看，重复加入为空操作
func (s *InteractionService) AddWatchLater(userID, videoID int64) error {
	if _, err := s.getVideo(videoID); err != nil {
		return err
	}
	added, err := s.watchLaterRepo.Add(userID, videoID)
	if err != nil {
		return err
	}
	if added {
		recordToggle("watch_later", true)
	}
	return nil
}

// RemoveWatchLater 移出稍后观看，不在列表中为空操作
func (s *InteractionService) RemoveWatchLater(userID, videoID int64) error {
	removed, err := s.watchLaterRepo.Remove(userID, videoID)
	if err != nil {
		return err
	}
	if removed {
		recordToggle("watch_later", false)
	}
	return nil
}

// ListWatchLater 稍后观看列表，最近加入的在前
func (s *InteractionService) ListWatchLater(userID int64) ([]dto.VideoInfo, error) {
	videos, err := s.watchLaterRepo.ListVideos(userID)
	if err != nil {
		return nil, err
	}
	return toVideoInfos(videos), nil
}

// ListLiked 当前账号点赞过的视频
func (s *InteractionService) ListLiked(userID int64) ([]dto.VideoInfo, error) {
	videos, err := s.likeRepo.ListLikedVideos(userID)
	if err != nil {
		return nil, err
	}
	return toVideoInfos(videos), nil
}

func (s *InteractionService) getVideo(videoID int64) (*model.Video, error) {
	video, err := s.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	return video, nil
}

func (s *InteractionService) getUser(userID int64) (*model.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func recordToggle(kind string, added bool) {
	state := "removed"
	if added {
		state = "added"
	}
	metrics.Toggles.WithLabelValues(kind, state).Inc()
}
