package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"vidshare-go/internal/api/dto"
	infraKafka "vidshare-go/internal/infra/kafka"
	"vidshare-go/internal/model"
	"vidshare-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrVideoNotFound       = errors.New("Video not found")
	ErrVideoNoPermission   = errors.New("Unauthorized")
	ErrVideoFileRequired   = errors.New("Video file is required")
	ErrVideoFieldsRequired = errors.New("Title and description are required")
)

type VideoService struct {
	videoRepo VideoRepository
	likeRepo  LikeRepository
	subRepo   SubscriptionRepository
	store     ObjectStore
	cache     VideoCache
	publisher EventPublisher
	folder    string
}

func NewVideoService(
	videoRepo VideoRepository,
	likeRepo LikeRepository,
	subRepo SubscriptionRepository,
	store ObjectStore,
	cache VideoCache,
	publisher EventPublisher,
	folder string,
) *VideoService {
	return &VideoService{
		videoRepo: videoRepo,
		likeRepo:  likeRepo,
		subRepo:   subRepo,
		store:     store,
		cache:     cache,
		publisher: publisher,
		folder:    folder,
	}
}

// Create 上传视频文件与封面，只保存返回的 URL
func (s *VideoService) Create(ctx context.Context, ownerID int64, req *dto.VideoCreateRequest, file, thumbnail *Upload) (*dto.VideoInfo, error) {
	if file == nil {
		return nil, ErrVideoFileRequired
	}

	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if title == "" || description == "" {
		return nil, ErrVideoFieldsRequired
	}

	videoURL, err := saveUpload(ctx, s.store, s.folder, "videos", file)
	if err != nil {
		return nil, err
	}

	thumbnailURL := model.DefaultThumbnailURL
	if thumbnail != nil {
		thumbnailURL, err = saveUpload(ctx, s.store, s.folder, "thumbnails", thumbnail)
		if err != nil {
			return nil, err
		}
	}

	var duration float64
	if req.Duration != nil {
		duration = *req.Duration
	}

	video := &model.Video{
		OwnerID:      ownerID,
		Title:        title,
		Description:  description,
		VideoURL:     videoURL,
		ThumbnailURL: thumbnailURL,
		Duration:     duration,
		Tags:         parseTags(req.Tags),
	}

	if err := s.videoRepo.Create(video); err != nil {
		logger.Error("Create video record failed, uploaded objects are orphaned",
			zap.String("video_url", videoURL), zap.Error(err))
		return nil, err
	}

	publishVideoEvent(ctx, s.publisher, &infraKafka.VideoEvent{Type: infraKafka.EventVideoUpsert, VideoID: video.ID})

	if withOwner, err := s.videoRepo.GetByIDWithOwner(video.ID); err == nil {
		video = withOwner
	}
	return toVideoInfo(video), nil
}

// GetDetail 视频详情，上传者含订阅者 ID，点赞账号 ID 为字符串数组；优先读缓存
func (s *VideoService) GetDetail(ctx context.Context, videoID int64) (*dto.VideoDetail, error) {
	// 读缓存失败时不回填，回填只在拿到版本号时进行
	var version int64
	fill := false
	if s.cache != nil {
		data, v, err := s.cache.Get(ctx, videoID)
		if err != nil {
			logger.Warn("Read video cache failed", zap.Int64("video_id", videoID), zap.Error(err))
		} else if data == nil {
			fill, version = true, v
		} else {
			var detail dto.VideoDetail
			if err := json.Unmarshal(data, &detail); err == nil {
				return &detail, nil
			}
		}
	}

	video, err := s.videoRepo.GetByIDWithOwner(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	likerIDs, err := s.likeRepo.LikerIDs(videoID)
	if err != nil {
		return nil, err
	}

	detail := &dto.VideoDetail{
		VideoInfo: *toVideoInfo(video),
		Likes:     idStrings(likerIDs),
	}

	if detail.Owner != nil {
		subscriberIDs, err := s.subRepo.SubscriberIDs(video.OwnerID)
		if err != nil {
			return nil, err
		}
		detail.Owner.Subscribers = idStrings(subscriberIDs)
	}

	if fill {
		if data, err := json.Marshal(detail); err == nil {
			if err := s.cache.Set(ctx, videoID, data, version); err != nil {
				logger.Warn("Write video cache failed", zap.Int64("video_id", videoID), zap.Error(err))
			}
		}
	}

	return detail, nil
}

// List 全部视频，ownerID 非空时只返回该账号的视频
func (s *VideoService) List(ownerID *int64) ([]dto.VideoInfo, error) {
	videos, err := s.videoRepo.List(ownerID)
	if err != nil {
		return nil, err
	}
	return toVideoInfos(videos), nil
}

// ListByChannels 多个频道的视频，最新的在前；ids 为逗号分隔，无效 ID 忽略
func (s *VideoService) ListByChannels(ids string) ([]dto.VideoInfo, error) {
	ownerIDs := parseIDList(ids)
	if len(ownerIDs) == 0 {
		return []dto.VideoInfo{}, nil
	}

	videos, err := s.videoRepo.ListByOwners(ownerIDs)
	if err != nil {
		return nil, err
	}
	return toVideoInfos(videos), nil
}

// Update 更新视频标题/描述（仅上传者本人）
func (s *VideoService) Update(ctx context.Context, videoID, currentUserID int64, req *dto.VideoUpdateRequest) (*dto.VideoInfo, error) {
	video, err := s.getOwned(videoID, currentUserID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if v := strings.TrimSpace(req.Title); v != "" {
		updates["title"] = v
	}
	if v := strings.TrimSpace(req.Description); v != "" {
		updates["description"] = v
	}

	if len(updates) == 0 {
		if withOwner, err := s.videoRepo.GetByIDWithOwner(video.ID); err == nil {
			video = withOwner
		}
		return toVideoInfo(video), nil
	}

	updated, err := s.videoRepo.Update(videoID, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	invalidateVideos(ctx, s.cache, videoID)
	publishVideoEvent(ctx, s.publisher, &infraKafka.VideoEvent{Type: infraKafka.EventVideoUpsert, VideoID: videoID})

	return toVideoInfo(updated), nil
}

// Delete 删除视频（仅上传者本人），评论保留
func (s *VideoService) Delete(ctx context.Context, videoID, currentUserID int64) error {
	if _, err := s.getOwned(videoID, currentUserID); err != nil {
		return err
	}

	deleted, err := s.videoRepo.Delete(videoID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrVideoNotFound
	}

	invalidateVideos(ctx, s.cache, videoID)
	publishVideoEvent(ctx, s.publisher, &infraKafka.VideoEvent{Type: infraKafka.EventVideoDelete, VideoID: videoID})

	return nil
}

func (s *VideoService) getOwned(videoID, currentUserID int64) (*model.Video, error) {
	video, err := s.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	if video.OwnerID != currentUserID {
		return nil, ErrVideoNoPermission
	}
	return video, nil
}

// parseTags 支持重复字段和逗号分隔两种写法，去空白、去重
func parseTags(raw []string) []string {
	tags := make([]string, 0, len(raw))
	seen := make(map[string]bool)
	for _, field := range raw {
		for _, t := range strings.Split(field, ",") {
			t = strings.TrimSpace(t)
			if t == "" || seen[t] {
				continue
			}
			seen[t] = true
			tags = append(tags, t)
		}
	}
	return tags
}

// parseIDList 解析逗号分隔的 ID，忽略无效项
func parseIDList(raw string) []int64 {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil || id <= 0 {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
