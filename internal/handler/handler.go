package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"socialgram/internal/config"
	"socialgram/internal/models"
	"socialgram/internal/service"
)

type Handlers struct {
	AuthService   service.AuthService
	UserService   service.UserService
	FollowService service.FollowService
	PostService   service.PostService
	ReportService service.ReportService
	Cfg           *config.Config
	Validate      *validator.Validate
}

func NewHandlers(services *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:   services.Auth,
		UserService:   services.User,
		FollowService: services.Follow,
		PostService:   services.Post,
		ReportService: services.Report,
		Cfg:           config,
		Validate:      validator.New(),
	}
}

// actorFromContext достает пользователя, положенного в контекст AuthMiddleware
func actorFromContext(r *http.Request) *models.User {
	actor, _ := r.Context().Value("actor").(*models.User)
	return actor
}
