package app

import (
	"log"

	"github.com/redis/go-redis/v9"

	"socialgram/internal/config"
	"socialgram/internal/database"
	"socialgram/internal/repository"
	"socialgram/internal/service"
	"socialgram/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service, *redis.Client) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать MinIO: %v", err)
	}

	// connection Redis, используется только лимитером
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, minioClient)

	return db, repo, services, rdb
}
