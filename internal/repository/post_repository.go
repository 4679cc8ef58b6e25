package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"socialgram/internal/models"
)

type PostRepositoryImpl struct {
	db *sqlx.DB
}

type CreatePostRequest struct {
	AuthorID string   `json:"author_id"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
}

type UpdatePostRequest struct {
	PostID    string   `json:"post_id"`
	Content   *string  `json:"content"`
	Published *bool    `json:"published"`
	Tags      []string `json:"tags"`
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

// Create вставляет пост вместе с тегами в одной транзакции.
// Теги создаются лениво через ON CONFLICT DO NOTHING.
// Коллизия slug возвращается как DuplicateError - сервис перегенерирует суффикс.
func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post, tagNames []string) error {
	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}
	defer tx.Rollback()

	query := `
        INSERT INTO posts
        (post_id, author_id, content, image_url, slug, published, created_at, updated_at)
        VALUES
        (:post_id, :author_id, :content, :image_url, :slug, :published, :created_at, :updated_at)
    `

	_, err = tx.NamedExecContext(ctx, query, post)
	if err != nil {
		if isPQError(err, pqUniqueViolation) {
			return models.NewDuplicateError("пост с таким slug уже существует")
		}
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	err = attachTags(ctx, tx, post.PostID, tagNames)
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка при коммите транзакции: %w", err)
	}

	post.Tags = tagNames
	return nil
}

// attachTags связывает пост с тегами, создавая отсутствующие теги
func attachTags(ctx context.Context, tx *sqlx.Tx, postID string, tagNames []string) error {
	for _, name := range tagNames {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO tags (tag_id, name)
			VALUES ($1, $2)
			ON CONFLICT (name) DO NOTHING
		`, uuid.New().String(), name)
		if err != nil {
			return fmt.Errorf("ошибка при создании тега %s: %w", name, err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO post_tags (post_id, tag_id)
			SELECT $1, tag_id FROM tags WHERE name = $2
			ON CONFLICT DO NOTHING
		`, postID, name)
		if err != nil {
			return fmt.Errorf("ошибка при привязке тега %s: %w", name, err)
		}
	}

	return nil
}

const postSelect = `
	SELECT p.post_id, p.author_id, u.username AS author, p.content, p.image_url,
	       p.slug, p.published, p.created_at, p.updated_at,
	       (SELECT COUNT(*) FROM likes l WHERE l.post_id = p.post_id) AS likes_count
	FROM posts p
	JOIN users u ON u.user_id = p.author_id
`

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := postSelect + ` WHERE p.post_id = $1`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.NewNotFoundError(fmt.Sprintf("пост с ID %s не найден", postID))
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	err = r.loadTags(ctx, []*models.Post{&post})
	if err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *PostRepositoryImpl) GetByAuthorID(ctx context.Context, authorID string) ([]models.Post, error) {
	query := postSelect + ` WHERE p.author_id = $1 ORDER BY p.created_at DESC`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов пользователя: %w", err)
	}

	err = r.loadTagsForSlice(ctx, posts)
	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *PostRepositoryImpl) ListPublished(ctx context.Context, limit, offset int) ([]models.Post, error) {
	query := postSelect + ` WHERE p.published ORDER BY p.created_at DESC LIMIT $1 OFFSET $2`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов: %w", err)
	}

	err = r.loadTagsForSlice(ctx, posts)
	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *PostRepositoryImpl) CountPublished(ctx context.Context) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM posts WHERE published`)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте постов: %w", err)
	}

	return count, nil
}

// Update обновляет контент и флаг публикации, slug не меняется.
// Если tagNames не nil - набор тегов заменяется целиком.
func (r *PostRepositoryImpl) Update(ctx context.Context, post *models.Post, tagNames []string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE posts SET
			content = :content,
			image_url = :image_url,
			published = :published,
			updated_at = :updated_at
		WHERE post_id = :post_id
	`

	post.UpdatedAt = time.Now()

	result, err := tx.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return models.NewNotFoundError(fmt.Sprintf("пост с ID %s не найден", post.PostID))
	}

	if tagNames != nil {
		// clear then re-add, not a merge
		_, err = tx.ExecContext(ctx, `DELETE FROM post_tags WHERE post_id = $1`, post.PostID)
		if err != nil {
			return fmt.Errorf("ошибка при очистке тегов поста: %w", err)
		}

		err = attachTags(ctx, tx, post.PostID, tagNames)
		if err != nil {
			return err
		}

		post.Tags = tagNames
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка при коммите транзакции: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, postID string) error {
	query := `DELETE FROM posts WHERE post_id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return models.NewNotFoundError(fmt.Sprintf("пост с ID %s не найден", postID))
	}

	// лайки, жалобы и post_tags удаляются каскадом
	return nil
}

func (r *PostRepositoryImpl) loadTagsForSlice(ctx context.Context, posts []models.Post) error {
	ptrs := make([]*models.Post, len(posts))
	for i := range posts {
		ptrs[i] = &posts[i]
	}
	return r.loadTags(ctx, ptrs)
}

func (r *PostRepositoryImpl) loadTags(ctx context.Context, posts []*models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]string, 0, len(posts))
	byID := make(map[string]*models.Post, len(posts))
	for _, p := range posts {
		ids = append(ids, p.PostID)
		byID[p.PostID] = p
		p.Tags = []string{}
	}

	rows := []struct {
		PostID string `db:"post_id"`
		Name   string `db:"name"`
	}{}

	query := `
		SELECT pt.post_id, t.name
		FROM post_tags pt
		JOIN tags t ON t.tag_id = pt.tag_id
		WHERE pt.post_id = ANY($1)
		ORDER BY t.name
	`

	err := r.db.SelectContext(ctx, &rows, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("ошибка при получении тегов: %w", err)
	}

	for _, row := range rows {
		if p, ok := byID[row.PostID]; ok {
			p.Tags = append(p.Tags, row.Name)
		}
	}

	return nil
}
