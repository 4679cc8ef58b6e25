package service

import (
	"context"
	"fmt"
	"io"
	"log"

	"socialgram/internal/authz"
	"socialgram/internal/config"
	"socialgram/internal/models"
	"socialgram/internal/repository"
	"socialgram/internal/storage"
)

// ImageUpload - сырой файл из multipart-запроса
type ImageUpload struct {
	FileName    string
	File        io.Reader
	Size        int64
	ContentType string
}

type PostService interface {
	CreatePost(ctx context.Context, req repository.CreatePostRequest, image *ImageUpload) (*models.Post, error)
	GetPost(ctx context.Context, postID string) (*models.Post, error)
	ListPosts(ctx context.Context, limit, offset int) ([]models.Post, int, error)
	ListByAuthor(ctx context.Context, authorID string) ([]models.Post, error)
	UpdatePost(ctx context.Context, actor *models.User, req repository.UpdatePostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, actor *models.User, postID string) error
	Like(ctx context.Context, actorID, postID string) (*models.Like, error)
	Unlike(ctx context.Context, actorID, postID string) error
	ListLikes(ctx context.Context, postID string) ([]models.Like, error)
}

type postService struct {
	postRepo repository.PostRepository
	likeRepo repository.LikeRepository
	storage  storage.Storage
	cfg      *config.Config
}

func NewPostService(postRepo repository.PostRepository, likeRepo repository.LikeRepository, storage storage.Storage, cfg *config.Config) PostService {
	return &postService{
		postRepo: postRepo,
		likeRepo: likeRepo,
		storage:  storage,
		cfg:      cfg,
	}
}

// CreatePost генерирует slug, грузит картинку (потолок 5 МБ) и пишет пост
// с тегами одной транзакцией. При теоретической коллизии slug суффикс
// перегенерируется один раз.
func (p *postService) CreatePost(ctx context.Context, req repository.CreatePostRequest, image *ImageUpload) (*models.Post, error) {
	var imageURL, objectName string

	if image != nil {
		if err := validateImage(image.Size, image.ContentType, p.cfg.MaxPostImageSize); err != nil {
			return nil, err
		}

		var err error
		objectName, imageURL, err = p.storage.UploadImage(ctx, "posts", image.FileName, image.File, image.Size, image.ContentType)
		if err != nil {
			return nil, fmt.Errorf("ошибка загрузки изображения: %w", err)
		}
	}

	post := &models.Post{
		AuthorID:  req.AuthorID,
		Content:   req.Content,
		ImageURL:  imageURL,
		Slug:      uniqueSlug(req.Content),
		Published: true,
	}

	err := p.postRepo.Create(ctx, post, req.Tags)
	if models.IsKind(err, models.KindDuplicate) {
		post.Slug = uniqueSlug(req.Content)
		err = p.postRepo.Create(ctx, post, req.Tags)
	}
	if err != nil {
		if objectName != "" {
			p.storage.DeleteImage(ctx, objectName)
		}
		return nil, err
	}

	return post, nil
}

func (p *postService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	return p.postRepo.GetByID(ctx, postID)
}

func (p *postService) ListPosts(ctx context.Context, limit, offset int) ([]models.Post, int, error) {
	posts, err := p.postRepo.ListPublished(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := p.postRepo.CountPublished(ctx)
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (p *postService) ListByAuthor(ctx context.Context, authorID string) ([]models.Post, error) {
	return p.postRepo.GetByAuthorID(ctx, authorID)
}

// UpdatePost применяет частичное обновление. Slug неизменяем,
// теги при наличии в запросе заменяются целиком.
func (p *postService) UpdatePost(ctx context.Context, actor *models.User, req repository.UpdatePostRequest) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	if !authz.IsOwner(actor, post) {
		return nil, models.NewForbiddenError("только автор может изменять пост")
	}

	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Published != nil {
		post.Published = *req.Published
	}

	err = p.postRepo.Update(ctx, post, req.Tags)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) DeletePost(ctx context.Context, actor *models.User, postID string) error {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if !authz.IsOwner(actor, post) {
		return models.NewForbiddenError("только автор может удалить пост")
	}

	err = p.postRepo.Delete(ctx, postID)
	if err != nil {
		return err
	}

	if post.ImageURL != "" {
		if err := p.storage.DeleteImage(ctx, p.storage.ObjectNameFromURL(post.ImageURL)); err != nil {
			log.Printf("не удалось удалить изображение поста %s: %v", postID, err)
		}
	}

	return nil
}

func (p *postService) Like(ctx context.Context, actorID, postID string) (*models.Like, error) {
	if _, err := p.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	like := &models.Like{
		UserID: actorID,
		PostID: postID,
	}

	err := p.likeRepo.Create(ctx, like)
	if err != nil {
		return nil, err
	}

	return like, nil
}

func (p *postService) Unlike(ctx context.Context, actorID, postID string) error {
	if _, err := p.postRepo.GetByID(ctx, postID); err != nil {
		return err
	}

	return p.likeRepo.Delete(ctx, actorID, postID)
}

func (p *postService) ListLikes(ctx context.Context, postID string) ([]models.Like, error) {
	if _, err := p.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	return p.likeRepo.ListByPost(ctx, postID)
}
