package service

import (
	"errors"
	"time"

	"vidshare-go/internal/api/dto"
	"vidshare-go/internal/model"

	"gorm.io/gorm"
)

// HistoryService 观看历史
// 写入为读-改-写，同一账号并发观看时后写覆盖先写
type HistoryService struct {
	userRepo  UserRepository
	videoRepo VideoRepository
	now       func() time.Time
}

func NewHistoryService(userRepo UserRepository, videoRepo VideoRepository) *HistoryService {
	return &HistoryService{userRepo: userRepo, videoRepo: videoRepo, now: time.Now}
}

// Record 记录一次观看
func (s *HistoryService) Record(userID, videoID int64) error {
	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	history := user.WatchHistory.Record(videoID, s.now())
	if err := s.userRepo.SaveWatchHistory(userID, history); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// List 观看历史，视频已删除的条目 video 为 null
func (s *HistoryService) List(userID int64) ([]dto.HistoryEntry, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	entries := make([]dto.HistoryEntry, 0, len(user.WatchHistory))
	if len(user.WatchHistory) == 0 {
		return entries, nil
	}

	videos, err := s.videoRepo.GetByIDs(user.WatchHistory.VideoIDs())
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*model.Video, len(videos))
	for i := range videos {
		byID[videos[i].ID] = &videos[i]
	}

	for _, e := range user.WatchHistory {
		entry := dto.HistoryEntry{WatchedAt: e.WatchedAt}
		if v, ok := byID[e.VideoID]; ok {
			entry.Video = toVideoInfo(v)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
