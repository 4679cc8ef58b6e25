package service

import (
	"socialgram/internal/config"
	"socialgram/internal/repository"
	"socialgram/internal/storage"
)

type Service struct {
	Auth   AuthService
	User   UserService
	Follow FollowService
	Post   PostService
	Report ReportService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:   NewAuthService(rep.User, cfg),
		User:   NewUserService(rep.User, storage, cfg),
		Follow: NewFollowService(rep.Follow, rep.User),
		Post:   NewPostService(rep.Post, rep.Like, storage, cfg),
		Report: NewReportService(rep.Report, rep.Post),
	}
}
