package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"socialgram/internal/config"
)

// Storage - blob-хранилище для аватаров и картинок постов.
// Валидация размера и типа живёт в сервисном слое, не здесь.
type Storage interface {
	UploadImage(ctx context.Context, prefix, fileName string, file io.Reader, size int64, contentType string) (string, string, error)
	DeleteImage(ctx context.Context, objectName string) error
	ObjectNameFromURL(imageURL string) string
}

type MinIOClient struct {
	client *minio.Client
	cfg    *config.Config
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании MinIO клиента: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinIO.BucketName)
	if err != nil {
		return nil, fmt.Errorf("ошибка при проверке бакета: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.MinIO.BucketName, minio.MakeBucketOptions{Region: cfg.MinIO.Region})
		if err != nil {
			return nil, fmt.Errorf("ошибка при создании бакета: %w", err)
		}
	}

	return &MinIOClient{client: client, cfg: cfg}, nil
}

// UploadImage кладёт файл под prefix ("avatars" или "posts") и возвращает
// имя объекта и публичный URL
func (m *MinIOClient) UploadImage(ctx context.Context, prefix, fileName string, file io.Reader, size int64, contentType string) (string, string, error) {
	now := time.Now()
	objectName := fmt.Sprintf("%s/%d/%02d/%s-%s",
		prefix,
		now.Year(),
		now.Month(),
		uuid.New().String(),
		fileName)

	_, err := m.client.PutObject(ctx, m.cfg.MinIO.BucketName, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", "", fmt.Errorf("ошибка загрузки в MinIO: %w", err)
	}

	imageURL := fmt.Sprintf("%s/%s/%s", m.cfg.MinIO.PublicURL, m.cfg.MinIO.BucketName, objectName)

	return objectName, imageURL, nil
}

func (m *MinIOClient) DeleteImage(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.cfg.MinIO.BucketName, objectName,
		minio.RemoveObjectOptions{
			GovernanceBypass: true,
		})
	if err != nil {
		return fmt.Errorf("ошибка удаления из MinIO: %w", err)
	}
	return nil
}

// ObjectNameFromURL вырезает имя объекта из публичного URL
func (m *MinIOClient) ObjectNameFromURL(imageURL string) string {
	base := fmt.Sprintf("%s/%s/", m.cfg.MinIO.PublicURL, m.cfg.MinIO.BucketName)
	return strings.TrimPrefix(imageURL, base)
}
