package service

import (
	"context"
	"errors"
	"strings"

	"vidshare-go/internal/api/dto"
	infraKafka "vidshare-go/internal/infra/kafka"
	"vidshare-go/pkg/utils"

	"gorm.io/gorm"
)

var ErrUserNoPermission = errors.New("Unauthorized")

type UserService struct {
	userRepo  UserRepository
	subRepo   SubscriptionRepository
	videoRepo VideoRepository
	store     ObjectStore
	cache     VideoCache
	publisher EventPublisher
	folder    string
}

func NewUserService(
	userRepo UserRepository,
	subRepo SubscriptionRepository,
	videoRepo VideoRepository,
	store ObjectStore,
	cache VideoCache,
	publisher EventPublisher,
	folder string,
) *UserService {
	return &UserService{
		userRepo:  userRepo,
		subRepo:   subRepo,
		videoRepo: videoRepo,
		store:     store,
		cache:     cache,
		publisher: publisher,
		folder:    folder,
	}
}

// List 全部账号
func (s *UserService) List() ([]dto.UserInfo, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserInfo, 0, len(users))
	for i := range users {
		items = append(items, *toUserInfo(&users[i]))
	}
	return items, nil
}

// Create 直接创建账号，不签发 Token
func (s *UserService) Create(req *dto.UserCreateRequest) (*dto.UserInfo, error) {
	user, err := newAccount(req.Username, req.Email, req.Password, "", req.ProfilePicture)
	if err != nil {
		return nil, err
	}
	if err := createAccount(s.userRepo, user); err != nil {
		return nil, err
	}
	return toUserInfo(user), nil
}

// GetProfile 账号主页，含订阅者简要信息
func (s *UserService) GetProfile(id int64) (*dto.UserProfile, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	subscribers, err := s.subRepo.ListSubscribers(id)
	if err != nil {
		return nil, err
	}

	return &dto.UserProfile{
		UserInfo:    *toUserInfo(user),
		Subscribers: toChannelBriefs(subscribers),
	}, nil
}

// Update 更新本人账号，picture 为可选的新头像
func (s *UserService) Update(ctx context.Context, targetID, currentUserID int64, req *dto.UserUpdateRequest, picture *Upload) (*dto.UserInfo, error) {
	if targetID != currentUserID {
		return nil, ErrUserNoPermission
	}

	current, err := s.userRepo.GetByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	updates := make(map[string]interface{})
	if v := strings.TrimSpace(req.Username); v != "" && v != current.Username {
		updates["username"] = v
	}
	if v := strings.TrimSpace(req.ChannelName); v != "" && v != current.ChannelName {
		updates["channel_name"] = v
	}
	if picture != nil {
		url, err := saveUpload(ctx, s.store, s.folder, "avatars", picture)
		if err != nil {
			return nil, err
		}
		updates["profile_picture"] = url
	}
	if len(req.Password) >= 6 {
		hashed, err := utils.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hashed
	}

	if len(updates) == 0 {
		return toUserInfo(current), nil
	}

	user, err := s.userRepo.Update(targetID, updates)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, ErrUserExists
		}
		return nil, err
	}

	_, renamed := updates["channel_name"]
	_, newName := updates["username"]
	_, newPicture := updates["profile_picture"]
	if renamed || newName || newPicture {
		invalidateChannelVideos(ctx, s.cache, s.videoRepo, targetID)
	}
	if renamed {
		publishVideoEvent(ctx, s.publisher, &infraKafka.VideoEvent{Type: infraKafka.EventChannelRename, UserID: targetID})
	}

	return toUserInfo(user), nil
}

// Delete 删除本人账号，视频与评论保留
func (s *UserService) Delete(ctx context.Context, targetID, currentUserID int64) error {
	if targetID != currentUserID {
		return ErrUserNoPermission
	}

	deleted, err := s.userRepo.Delete(targetID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}

	// 视频保留，但上传者信息已失效
	invalidateChannelVideos(ctx, s.cache, s.videoRepo, targetID)
	publishVideoEvent(ctx, s.publisher, &infraKafka.VideoEvent{Type: infraKafka.EventChannelRename, UserID: targetID})
	return nil
}

// Subscriptions 当前账号订阅的频道
func (s *UserService) Subscriptions(userID int64) ([]dto.ChannelBrief, error) {
	channels, err := s.subRepo.ListChannels(userID)
	if err != nil {
		return nil, err
	}
	return toChannelBriefs(channels), nil
}
