package service

import (
	"context"
	"fmt"
	"io"
	"log"

	"socialgram/internal/config"
	"socialgram/internal/models"
	"socialgram/internal/repository"
	"socialgram/internal/storage"
)

type UserService interface {
	GetUser(ctx context.Context, userID string) (*models.User, error)
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, req repository.UpdateProfileRequest) (*models.Profile, error)
	UploadAvatar(ctx context.Context, userID, fileName string, file io.Reader, size int64, contentType string) (*models.Profile, error)
}

type userService struct {
	userRepo repository.UserRepository
	storage  storage.Storage
	cfg      *config.Config
}

func NewUserService(userRepo repository.UserRepository, storage storage.Storage, cfg *config.Config) UserService {
	return &userService{
		userRepo: userRepo,
		storage:  storage,
		cfg:      cfg,
	}
}

func (s *userService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	return s.userRepo.GetProfileByUserID(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, req repository.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.userRepo.GetProfileByUserID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	if req.Bio != nil {
		profile.Bio = *req.Bio
	}

	err = s.userRepo.UpdateProfile(ctx, profile)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		err = s.userRepo.UpdateDisplayName(ctx, req.UserID, *req.DisplayName)
		if err != nil {
			return nil, err
		}
	}

	return profile, nil
}

// UploadAvatar проверяет файл (потолок 2 МБ отдельный от картинок постов),
// грузит его в хранилище и записывает URL в профиль
func (s *userService) UploadAvatar(ctx context.Context, userID, fileName string, file io.Reader, size int64, contentType string) (*models.Profile, error) {
	if err := validateImage(size, contentType, s.cfg.MaxAvatarSize); err != nil {
		return nil, err
	}

	profile, err := s.userRepo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	objectName, avatarURL, err := s.storage.UploadImage(ctx, "avatars", fileName, file, size, contentType)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки аватара: %w", err)
	}

	oldURL := profile.AvatarURL
	profile.AvatarURL = avatarURL

	err = s.userRepo.UpdateProfile(ctx, profile)
	if err != nil {
		s.storage.DeleteImage(ctx, objectName)
		return nil, err
	}

	// старый аватар чистим без гарантий
	if oldURL != "" {
		if err := s.storage.DeleteImage(ctx, s.storage.ObjectNameFromURL(oldURL)); err != nil {
			log.Printf("не удалось удалить старый аватар: %v", err)
		}
	}

	return profile, nil
}
