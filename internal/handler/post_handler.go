package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"socialgram/internal/authz"
	"socialgram/internal/models"
	"socialgram/internal/repository"
	"socialgram/internal/service"
)

type PaginationResponse struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type PostsGetResponse struct {
	Posts      []models.Post      `json:"posts"`
	Pagination PaginationResponse `json:"pagination"`
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	// pagination parameters
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	posts, total, err := h.PostService.ListPosts(r.Context(), limit, (page-1)*limit)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	totalPages := (total + limit - 1) / limit

	WriteSuccess(w, PostsGetResponse{
		Posts: posts,
		Pagination: PaginationResponse{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, http.StatusOK)
}

// CreatePost принимает multipart-форму: content, tags (через запятую), image
func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r)
	if !authz.IsAuthenticated(actor) {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxPostImageSize + 1024*1024); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	content := r.FormValue("content")
	if content == "" {
		WriteError(w, "Отсутствует content", http.StatusBadRequest)
		return
	}

	var tags []string
	if raw := r.FormValue("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			tag = strings.TrimSpace(tag)
			if tag != "" {
				tags = append(tags, tag)
			}
		}
	}

	var image *service.ImageUpload
	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		image = &service.ImageUpload{
			FileName:    header.Filename,
			File:        file,
			Size:        header.Size,
			ContentType: header.Header.Get("Content-Type"),
		}
	}

	post, err := h.PostService.CreatePost(r.Context(), repository.CreatePostRequest{
		AuthorID: actor.UserID,
		Content:  content,
		Tags:     tags,
	}, image)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	post, err := h.PostService.GetPost(r.Context(), postID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) GetUserPosts(w http.ResponseWriter, r *http.Request) {
	authorID := mux.Vars(r)["id"]

	posts, err := h.PostService.ListByAuthor(r.Context(), authorID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}

type UpdatePostBody struct {
	Content   *string  `json:"content"`
	Published *bool    `json:"published"`
	Tags      []string `json:"tags"`
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r)
	if !authz.IsAuthenticated(actor) {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	var req UpdatePostBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.UpdatePost(r.Context(), actor, repository.UpdatePostRequest{
		PostID:    postID,
		Content:   req.Content,
		Published: req.Published,
		Tags:      req.Tags,
	})
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r)
	if !authz.IsAuthenticated(actor) {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	err := h.PostService.DeletePost(r.Context(), actor, postID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) LikePost(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r)
	if !authz.IsAuthenticated(actor) {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	_, err := h.PostService.Like(r.Context(), actor.UserID, postID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, DetailResponse{Detail: "Liked"}, http.StatusCreated)
}

func (h *Handlers) ListPostLikes(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	likes, err := h.PostService.ListLikes(r.Context(), postID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, likes, http.StatusOK)
}

func (h *Handlers) UnlikePost(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r)
	if !authz.IsAuthenticated(actor) {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	err := h.PostService.Unlike(r.Context(), actor.UserID, postID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, DetailResponse{Detail: "Unliked"}, http.StatusOK)
}
