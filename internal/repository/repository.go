package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"socialgram/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
	GetProfileByUserID(ctx context.Context, userID string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, profile *models.Profile) error
	UpdateDisplayName(ctx context.Context, userID, displayName string) error
}

type FollowRepository interface {
	Create(ctx context.Context, follow *models.Follow) error
	Delete(ctx context.Context, followerID, followingID string) error
	ListFollowers(ctx context.Context, userID string) ([]models.FollowEdge, error)
	ListFollowing(ctx context.Context, userID string) ([]models.FollowEdge, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post, tagNames []string) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	GetByAuthorID(ctx context.Context, authorID string) ([]models.Post, error)
	ListPublished(ctx context.Context, limit, offset int) ([]models.Post, error)
	CountPublished(ctx context.Context) (int, error)
	Update(ctx context.Context, post *models.Post, tagNames []string) error
	Delete(ctx context.Context, postID string) error
}

type LikeRepository interface {
	Create(ctx context.Context, like *models.Like) error
	Delete(ctx context.Context, userID, postID string) error
	ListByPost(ctx context.Context, postID string) ([]models.Like, error)
}

type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	GetByID(ctx context.Context, reportID string) (*models.Report, error)
	UpdateStatus(ctx context.Context, reportID, status string) error
	ListPendingByPost(ctx context.Context, postID string) ([]models.Report, error)
	HasActionTaken(ctx context.Context, postID string) (bool, error)
	ListAll(ctx context.Context) ([]models.Report, error)
}

type Repository struct {
	User   UserRepository
	Follow FollowRepository
	Post   PostRepository
	Like   LikeRepository
	Report ReportRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:   NewUserRepository(db),
		Follow: NewFollowRepository(db),
		Post:   NewPostRepository(db),
		Like:   NewLikeRepository(db),
		Report: NewReportRepository(db),
	}
}
