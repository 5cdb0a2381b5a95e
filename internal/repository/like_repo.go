package repository

import (
	"vidshare-go/internal/model"

	"gorm.io/gorm"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// Toggle 翻转点赞状态，返回翻转后的状态与视频点赞数
func (r *LikeRepository) Toggle(videoID, userID int64, notify *model.Notification) (bool, int64, error) {
	return toggleMembership(r.db,
		&model.VideoLike{VideoID: videoID, UserID: userID},
		map[string]interface{}{"video_id": videoID, "user_id": userID},
		map[string]interface{}{"video_id": videoID},
		notify,
	)
}

// LikerIDs 视频的点赞账号 ID
func (r *LikeRepository) LikerIDs(videoID int64) ([]int64, error) {
	var ids []int64
	err := r.db.Model(&model.VideoLike{}).
		Where("video_id = ?", videoID).
		Order("created_at ASC").
		Pluck("user_id", &ids).Error
	return ids, err
}

// ListLikedVideos 用户点赞过的视频
func (r *LikeRepository) ListLikedVideos(userID int64) ([]model.Video, error) {
	var videos []model.Video
	err := r.db.Model(&model.Video{}).
		Joins("JOIN video_likes ON video_likes.video_id = videos.id").
		Where("video_likes.user_id = ?", userID).
		Order("video_likes.created_at DESC").
		Preload("Owner").
		Find(&videos).Error
	return videos, err
}
