package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"socialgram/internal/models"
)

type followRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create вставляет ребро подписки. Дубликат и самоподписка ловятся
// констрейнтами БД, а не предварительным чтением - так параллельная
// двойная подписка не создаст два ребра.
func (r *followRepository) Create(ctx context.Context, follow *models.Follow) error {
	follow.FollowID = uuid.New().String()
	follow.CreatedAt = time.Now()

	query := `
		INSERT INTO follows (follow_id, follower_id, following_id, created_at)
		VALUES (:follow_id, :follower_id, :following_id, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, follow)
	if err != nil {
		if isPQError(err, pqUniqueViolation) {
			return models.NewDuplicateError("уже подписан")
		}
		if isPQError(err, pqCheckViolation) && pqConstraint(err) == "no_self_follow" {
			return models.NewSelfReferenceError("нельзя подписаться на себя")
		}
		return fmt.Errorf("ошибка при создании подписки: %w", err)
	}

	return nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, followingID string) error {
	query := `DELETE FROM follows WHERE follower_id = $1 AND following_id = $2`

	result, err := r.db.ExecContext(ctx, query, followerID, followingID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении подписки: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return models.NewNotFoundError("подписка не найдена")
	}

	return nil
}

func (r *followRepository) ListFollowers(ctx context.Context, userID string) ([]models.FollowEdge, error) {
	query := `
		SELECT f.follow_id, u.user_id, u.username, u.display_name, f.created_at
		FROM follows f
		JOIN users u ON u.user_id = f.follower_id
		WHERE f.following_id = $1
		ORDER BY f.created_at DESC
	`

	var edges []models.FollowEdge
	err := r.db.SelectContext(ctx, &edges, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении подписчиков: %w", err)
	}

	return edges, nil
}

func (r *followRepository) ListFollowing(ctx context.Context, userID string) ([]models.FollowEdge, error) {
	query := `
		SELECT f.follow_id, u.user_id, u.username, u.display_name, f.created_at
		FROM follows f
		JOIN users u ON u.user_id = f.following_id
		WHERE f.follower_id = $1
		ORDER BY f.created_at DESC
	`

	var edges []models.FollowEdge
	err := r.db.SelectContext(ctx, &edges, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении подписок: %w", err)
	}

	return edges, nil
}
