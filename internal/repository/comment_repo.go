package repository

import (
	"vidshare-go/internal/model"

	"gorm.io/gorm"
)

// CommentFilter 评论列表筛选条件
type CommentFilter struct {
	VideoID *int64
	UserID  *int64
}

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create 在一个事务内写入评论、视频评论数 +1 和可选的通知
func (r *CommentRepository) Create(comment *model.Comment, notify *model.Notification) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Video{}).Where("id = ?", comment.VideoID).
			UpdateColumn("comment_count", gorm.Expr("comment_count + 1")).Error; err != nil {
			return err
		}
		if notify != nil {
			return tx.Create(notify).Error
		}
		return nil
	})
}

func (r *CommentRepository) GetByID(id int64) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpdateContent 更新评论内容
func (r *CommentRepository) UpdateContent(id int64, content string) (*model.Comment, error) {
	result := r.db.Model(&model.Comment{}).Where("id = ?", id).Update("content", content)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

// Delete 删除评论并将视频评论数 -1（不低于 0），回复保留
func (r *CommentRepository) Delete(comment *model.Comment) (bool, error) {
	var deleted bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.Comment{}, comment.ID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		deleted = true
		return tx.Model(&model.Video{}).Where("id = ? AND comment_count > 0", comment.VideoID).
			UpdateColumn("comment_count", gorm.Expr("comment_count - 1")).Error
	})
	return deleted, err
}

// List 分页查询评论，最新的在前
func (r *CommentRepository) List(filter CommentFilter, skip, limit int) ([]model.Comment, int64, error) {
	query := r.db.Model(&model.Comment{})
	if filter.VideoID != nil {
		query = query.Where("video_id = ?", *filter.VideoID)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []model.Comment
	err := query.Order("created_at DESC").Order("id DESC").
		Offset(skip).Limit(limit).Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

// ListByVideo 视频的全部评论，按发表时间升序，供组装评论树
func (r *CommentRepository) ListByVideo(videoID int64) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.Where("video_id = ?", videoID).
		Order("created_at ASC").Order("id ASC").
		Find(&comments).Error
	return comments, err
}
