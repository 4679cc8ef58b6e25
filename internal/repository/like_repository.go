package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"socialgram/internal/models"
)

type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Create вставляет лайк, дубликат ловится констрейнтом unique_user_post
func (r *likeRepository) Create(ctx context.Context, like *models.Like) error {
	like.LikeID = uuid.New().String()
	like.CreatedAt = time.Now()

	query := `
		INSERT INTO likes (like_id, user_id, post_id, created_at)
		VALUES (:like_id, :user_id, :post_id, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, like)
	if err != nil {
		if isPQError(err, pqUniqueViolation) {
			return models.NewDuplicateError("уже лайкнуто")
		}
		return fmt.Errorf("ошибка при создании лайка: %w", err)
	}

	return nil
}

func (r *likeRepository) Delete(ctx context.Context, userID, postID string) error {
	query := `DELETE FROM likes WHERE user_id = $1 AND post_id = $2`

	result, err := r.db.ExecContext(ctx, query, userID, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении лайка: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return models.NewNotFoundError("лайк не найден")
	}

	return nil
}

func (r *likeRepository) ListByPost(ctx context.Context, postID string) ([]models.Like, error) {
	query := `SELECT * FROM likes WHERE post_id = $1 ORDER BY created_at DESC`

	var likes []models.Like
	err := r.db.SelectContext(ctx, &likes, query, postID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении лайков: %w", err)
	}

	return likes, nil
}
