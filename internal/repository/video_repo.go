package repository

import (
	"vidshare-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// GetByID 根据 ID 获取视频
func (r *VideoRepository) GetByID(id int64) (*model.Video, error) {
	var video model.Video
	err := r.db.First(&video, id).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// GetByIDWithOwner 根据 ID 获取视频（含上传者信息）
func (r *VideoRepository) GetByIDWithOwner(id int64) (*model.Video, error) {
	var video model.Video
	err := r.db.Preload("Owner").First(&video, id).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// Create 创建视频记录
func (r *VideoRepository) Create(video *model.Video) error {
	return r.db.Create(video).Error
}

// Update 更新视频字段
func (r *VideoRepository) Update(id int64, updates map[string]interface{}) (*model.Video, error) {
	result := r.db.Model(&model.Video{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByIDWithOwner(id)
}

// Delete 删除视频，评论保留
func (r *VideoRepository) Delete(id int64) (bool, error) {
	result := r.db.Delete(&model.Video{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// List 视频列表，ownerID 非空时只返回该用户的视频
func (r *VideoRepository) List(ownerID *int64) ([]model.Video, error) {
	query := r.db.Model(&model.Video{}).Preload("Owner")
	if ownerID != nil {
		query = query.Where("owner_id = ?", *ownerID)
	}

	var videos []model.Video
	err := query.Order("id ASC").Find(&videos).Error
	return videos, err
}

// ListByOwners 多个频道的视频，最新的在前
func (r *VideoRepository) ListByOwners(ownerIDs []int64) ([]model.Video, error) {
	if len(ownerIDs) == 0 {
		return nil, nil
	}
	var videos []model.Video
	err := r.db.Preload("Owner").
		Where("owner_id IN ?", ownerIDs).
		Order("created_at DESC").
		Find(&videos).Error
	return videos, err
}

// ListByOwner 单个用户的全部视频，供搜索索引重建
func (r *VideoRepository) ListByOwner(ownerID int64) ([]model.Video, error) {
	var videos []model.Video
	err := r.db.Where("owner_id = ?", ownerID).Order("id ASC").Find(&videos).Error
	return videos, err
}

// GetByIDs 批量查询视频（含上传者），不保证顺序
func (r *VideoRepository) GetByIDs(ids []int64) ([]model.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var videos []model.Video
	err := r.db.Preload("Owner").Where("id IN ?", ids).Find(&videos).Error
	return videos, err
}

// SearchByTitle 标题包含 q（大小写不敏感）的视频
func (r *VideoRepository) SearchByTitle(q string) ([]model.Video, error) {
	var videos []model.Video
	err := r.db.Preload("Owner").
		Where(`LOWER(videos.title) LIKE ? ESCAPE '\'`, containsPattern(q)).
		Order("videos.id ASC").
		Find(&videos).Error
	return videos, err
}

// SearchByChannelName 上传者频道名包含 q（大小写不敏感）的视频
func (r *VideoRepository) SearchByChannelName(q string) ([]model.Video, error) {
	var videos []model.Video
	err := r.db.Preload("Owner").
		Joins("JOIN users ON users.id = videos.owner_id").
		Where(`LOWER(users.channel_name) LIKE ? ESCAPE '\'`, containsPattern(q)).
		Order("videos.id ASC").
		Find(&videos).Error
	return videos, err
}

// RecordView 记录一次观看，同一账号只计一次，返回是否新计入与当前播放量
func (r *VideoRepository) RecordView(videoID, userID int64) (bool, int64, error) {
	var counted bool
	var views int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model.VideoView{VideoID: videoID, UserID: userID})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected > 0 {
			counted = true
			if err := tx.Model(&model.Video{}).Where("id = ?", videoID).
				UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
				return err
			}
		}

		return tx.Model(&model.Video{}).Where("id = ?", videoID).
			Pluck("views", &views).Error
	})
	return counted, views, err
}
