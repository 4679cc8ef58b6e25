package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"socialgram/cmd/app"
	"socialgram/internal/config"
	handlers "socialgram/internal/handler"
	"socialgram/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, _, services, rdb := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg)

	followRL := middleware.RateLimit(rdb, "follow", cfg.RateLimit.FollowLimit, cfg.RateLimit.FollowWindow)
	likeRL := middleware.RateLimit(rdb, "like", cfg.RateLimit.LikeLimit, cfg.RateLimit.LikeWindow)

	r := mux.NewRouter()

	r.HandleFunc("/", handlers.HomeHandler).Methods("GET")
	r.HandleFunc("/health", handlers.HealthHandler).Methods("GET")

	r.HandleFunc("/api/auth/register", handler.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", handler.Login).Methods("POST")
	r.HandleFunc("/api/auth/refresh-token", handler.RefreshToken).Methods("POST")

	r.HandleFunc("/api/me", handler.GetCurrentUser).Methods("GET")
	r.HandleFunc("/api/users/{id}", handler.GetUser).Methods("GET")
	r.HandleFunc("/api/profile/me", handler.GetMyProfile).Methods("GET")
	r.HandleFunc("/api/profile/me", handler.UpdateMyProfile).Methods("PATCH")
	r.HandleFunc("/api/profile/me/avatar", handler.UploadAvatar).Methods("POST")

	r.Handle("/api/users/{id}/follow", followRL(http.HandlerFunc(handler.FollowUser))).Methods("POST")
	r.Handle("/api/users/{id}/unfollow", followRL(http.HandlerFunc(handler.UnfollowUser))).Methods("POST")
	r.HandleFunc("/api/users/{id}/posts", handler.GetUserPosts).Methods("GET")
	r.HandleFunc("/api/users/{id}/followers", handler.ListFollowers).Methods("GET")
	r.HandleFunc("/api/users/{id}/following", handler.ListFollowing).Methods("GET")

	r.HandleFunc("/api/posts", handler.GetPosts).Methods("GET")
	r.HandleFunc("/api/posts", handler.CreatePost).Methods("POST")
	r.HandleFunc("/api/posts/{id}", handler.GetPost).Methods("GET")
	r.HandleFunc("/api/posts/{id}", handler.UpdatePost).Methods("PATCH")
	r.HandleFunc("/api/posts/{id}", handler.DeletePost).Methods("DELETE")
	r.HandleFunc("/api/posts/{id}/likes", handler.ListPostLikes).Methods("GET")
	r.Handle("/api/posts/{id}/like", likeRL(http.HandlerFunc(handler.LikePost))).Methods("POST")
	r.Handle("/api/posts/{id}/unlike", likeRL(http.HandlerFunc(handler.UnlikePost))).Methods("POST")

	r.HandleFunc("/api/reports", handler.CreateReport).Methods("POST")
	r.HandleFunc("/api/reports", handler.ListReports).Methods("GET")
	r.HandleFunc("/api/reports/{id}/status", handler.ModerateReport).Methods("PATCH")
	r.HandleFunc("/api/posts/{id}/reports/summary", handler.ReportSummary).Methods("GET")

	handlerChain := middleware.Chain(
		r,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.AuthMiddleware(services.Auth),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
