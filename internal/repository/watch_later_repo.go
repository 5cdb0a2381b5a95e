package repository

import (
	"vidshare-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WatchLaterRepository struct {
	db *gorm.DB
}

func NewWatchLaterRepository(db *gorm.DB) *WatchLaterRepository {
	return &WatchLaterRepository{db: db}
}

// Add 加入稍后观看，已存在时保持原位置，返回是否新加入
func (r *WatchLaterRepository) Add(userID, videoID int64) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.WatchLater{UserID: userID, VideoID: videoID})
	return res.RowsAffected > 0, res.Error
}

// Remove 移出稍后观看，不存在时为空操作，返回是否真的移除
func (r *WatchLaterRepository) Remove(userID, videoID int64) (bool, error) {
	res := r.db.Where("user_id = ? AND video_id = ?", userID, videoID).
		Delete(&model.WatchLater{})
	return res.RowsAffected > 0, res.Error
}

// ListVideos 稍后观看的视频，最近加入的在前
func (r *WatchLaterRepository) ListVideos(userID int64) ([]model.Video, error) {
	var videos []model.Video
	err := r.db.Model(&model.Video{}).
		Joins("JOIN watch_later ON watch_later.video_id = videos.id").
		Where("watch_later.user_id = ?", userID).
		Order("watch_later.created_at DESC").
		Order("watch_later.id DESC").
		Preload("Owner").
		Find(&videos).Error
	return videos, err
}
