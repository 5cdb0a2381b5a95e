package service

import (
	"context"
	"errors"
	"strings"

	"vidshare-go/internal/api/dto"
	"vidshare-go/internal/model"
	"vidshare-go/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrCommentNotFound        = errors.New("Comment not found")
	ErrCommentNoPermission    = errors.New("Not authorized")
	ErrParentNotFound         = errors.New("Parent comment not found")
	ErrParentVideoMismatch    = errors.New("Parent comment belongs to another video")
	ErrCommentContentRequired = errors.New("Content is required")
)

const (
	defaultCommentPage  = 1
	defaultCommentLimit = 10
	maxCommentLimit     = 100
)

type CommentService struct {
	commentRepo CommentRepository
	videoRepo   VideoRepository
	userRepo    UserRepository
	cache       VideoCache
}

func NewCommentService(commentRepo CommentRepository, videoRepo VideoRepository, userRepo UserRepository, cache VideoCache) *CommentService {
	return &CommentService{commentRepo: commentRepo, videoRepo: videoRepo, userRepo: userRepo, cache: cache}
}

// List 分页查询评论，最新的在前
func (s *CommentService) List(q *dto.CommentListQuery) (*dto.CommentListData, error) {
	page := q.Page
	if page < 1 {
		page = defaultCommentPage
	}
	limit := q.Limit
	if limit < 1 {
		limit = defaultCommentLimit
	}
	if limit > maxCommentLimit {
		limit = maxCommentLimit
	}

	comments, total, err := s.commentRepo.List(repository.CommentFilter{
		VideoID: q.VideoID,
		UserID:  q.UserID,
	}, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CommentSummary, 0, len(comments))
	for i := range comments {
		items = append(items, toCommentSummary(&comments[i]))
	}

	return &dto.CommentListData{
		Comments: items,
		Total:    total,
		Page:     page,
		Pages:    (total + int64(limit) - 1) / int64(limit),
	}, nil
}

// Get 单条评论
func (s *CommentService) Get(id int64) (*dto.CommentSummary, error) {
	comment, err := s.getComment(id)
	if err != nil {
		return nil, err
	}
	summary := toCommentSummary(comment)
	return &summary, nil
}

// Create 发表评论或回复，评论、计数与通知在同一事务内写入
func (s *CommentService) Create(ctx context.Context, userID int64, req *dto.CommentCreateRequest) (*dto.CommentInfo, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrCommentContentRequired
	}

	video, err := s.videoRepo.GetByID(req.VideoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	author, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.ParentID != nil {
		parent, err := s.commentRepo.GetByID(*req.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrParentNotFound
			}
			return nil, err
		}
		if parent.VideoID != video.ID {
			return nil, ErrParentVideoMismatch
		}
	}

	comment := &model.Comment{
		UserID:   author.ID,
		Username: author.Username,
		VideoID:  video.ID,
		Content:  content,
		ParentID: req.ParentID,
	}
	notify := newCommentNotification(author, video)
	if err := s.commentRepo.Create(comment, notify); err != nil {
		return nil, err
	}

	countNotification(notifyComment, notify)
	invalidateVideos(ctx, s.cache, video.ID)

	return toCommentInfo(comment), nil
}

// Update 修改评论内容，仅作者可操作
func (s *CommentService) Update(id, userID int64, req *dto.CommentUpdateRequest) (*dto.CommentInfo, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrCommentContentRequired
	}

	comment, err := s.getComment(id)
	if err != nil {
		return nil, err
	}
	if comment.UserID != userID {
		return nil, ErrCommentNoPermission
	}

	updated, err := s.commentRepo.UpdateContent(id, content)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return toCommentInfo(updated), nil
}

// Delete 删除评论，仅作者可操作，回复保留
func (s *CommentService) Delete(ctx context.Context, id, userID int64) error {
	comment, err := s.getComment(id)
	if err != nil {
		return err
	}
	if comment.UserID != userID {
		return ErrCommentNoPermission
	}

	deleted, err := s.commentRepo.Delete(comment)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCommentNotFound
	}

	invalidateVideos(ctx, s.cache, comment.VideoID)
	return nil
}

// Forest 视频的评论树
func (s *CommentService) Forest(videoID int64) ([]*dto.CommentNode, error) {
	comments, err := s.commentRepo.ListByVideo(videoID)
	if err != nil {
		return nil, err
	}
	return BuildCommentForest(comments), nil
}

func (s *CommentService) getComment(id int64) (*model.Comment, error) {
	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return comment, nil
}
