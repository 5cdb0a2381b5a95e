package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"vidshare-go/internal/api/dto"
	"vidshare-go/internal/model"
	"vidshare-go/pkg/utils"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound       = errors.New("User not found")
	ErrUserExists         = errors.New("Username or email already in use")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrInvalidEmail       = errors.New("Please fill a valid email address")
	ErrPasswordTooShort   = errors.New("Password must be at least 6 characters")
	ErrUsernameRequired   = errors.New("Username is required")
)

var emailPattern = regexp.MustCompile(`.+@.+\..+`)

type AuthService struct {
	userRepo UserRepository
	store    ObjectStore
	tokens   utils.TokenIssuer
	folder   string
}

func NewAuthService(userRepo UserRepository, store ObjectStore, tokens utils.TokenIssuer, folder string) *AuthService {
	return &AuthService{userRepo: userRepo, store: store, tokens: tokens, folder: folder}
}

// Signup 注册账号并签发 Token，picture 为可选头像
func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest, picture *Upload) (*dto.AuthData, error) {
	user, err := newAccount(req.Username, req.Email, req.Password, req.ChannelName, "")
	if err != nil {
		return nil, err
	}

	if picture != nil {
		url, err := saveUpload(ctx, s.store, s.folder, "avatars", picture)
		if err != nil {
			return nil, err
		}
		user.ProfilePicture = url
	}

	if err := createAccount(s.userRepo, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthData{User: *toUserInfo(user), Token: token}, nil
}

// Signin 邮箱 + 密码登录，邮箱不存在与密码错误返回同一错误
func (s *AuthService) Signin(req *dto.SigninRequest) (*dto.AuthData, error) {
	user, err := s.userRepo.GetByEmail(normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.VerifyPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthData{User: *toUserInfo(user), Token: token}, nil
}

// newAccount 校验注册字段并生成待写入的账号，密码在此处哈希
func newAccount(username, email, password, channelName, profilePicture string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUsernameRequired
	}

	email = normalizeEmail(email)
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	if len(password) < 6 {
		return nil, ErrPasswordTooShort
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	profilePicture = strings.TrimSpace(profilePicture)
	if profilePicture == "" {
		profilePicture = model.DefaultProfilePicture
	}

	return &model.User{
		Username:       username,
		Email:          email,
		Password:       hashed,
		ChannelName:    strings.TrimSpace(channelName),
		ProfilePicture: profilePicture,
	}, nil
}

func createAccount(userRepo UserRepository, user *model.User) error {
	if err := userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserExists
		}
		return err
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
