package service

import (
	"context"

	"socialgram/internal/models"
	"socialgram/internal/repository"
)

type FollowService interface {
	Follow(ctx context.Context, actorID, targetID string) (*models.Follow, error)
	Unfollow(ctx context.Context, actorID, targetID string) error
	ListFollowers(ctx context.Context, userID string) ([]models.FollowEdge, error)
	ListFollowing(ctx context.Context, userID string) ([]models.FollowEdge, error)
}

type followService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) FollowService {
	return &followService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow создает ребро подписки. Самоподписка отсекается до запроса в БД,
// дубликат - уникальным констрейнтом при вставке.
func (s *followService) Follow(ctx context.Context, actorID, targetID string) (*models.Follow, error) {
	if actorID == targetID {
		return nil, models.NewSelfReferenceError("нельзя подписаться на себя")
	}

	if _, err := s.userRepo.GetUserByID(ctx, targetID); err != nil {
		return nil, err
	}

	follow := &models.Follow{
		FollowerID:  actorID,
		FollowingID: targetID,
	}

	err := s.followRepo.Create(ctx, follow)
	if err != nil {
		return nil, err
	}

	return follow, nil
}

func (s *followService) Unfollow(ctx context.Context, actorID, targetID string) error {
	if actorID == targetID {
		return models.NewSelfReferenceError("нельзя отписаться от себя")
	}

	if _, err := s.userRepo.GetUserByID(ctx, targetID); err != nil {
		return err
	}

	return s.followRepo.Delete(ctx, actorID, targetID)
}

func (s *followService) ListFollowers(ctx context.Context, userID string) ([]models.FollowEdge, error) {
	if _, err := s.userRepo.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}

	return s.followRepo.ListFollowers(ctx, userID)
}

func (s *followService) ListFollowing(ctx context.Context, userID string) ([]models.FollowEdge, error) {
	if _, err := s.userRepo.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}

	return s.followRepo.ListFollowing(ctx, userID)
}
