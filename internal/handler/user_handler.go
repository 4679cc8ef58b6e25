package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"socialgram/internal/authz"
	"socialgram/internal/models"
	"socialgram/internal/repository"
)

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		UserID:      user.UserID,
		Username:    user.Username,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		IsVerified:  user.IsVerified,
		IsStaff:     user.IsStaff,
	}
}

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r)
	if !authz.IsAuthenticated(actor) {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	user, err := h.UserService.GetUser(r.Context(), actor.UserID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, toUserResponse(user), http.StatusOK)
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	user, err := h.UserService.GetUser(r.Context(), userID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, toUserResponse(user), http.StatusOK)
}

func (h *Handlers) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r)
	if !authz.IsAuthenticated(actor) {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	profile, err := h.UserService.GetProfile(r.Context(), actor.UserID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, profile, http.StatusOK)
}

type UpdateProfileRequest struct {
	Bio         *string `json:"bio" validate:"omitempty,max=500"`
	DisplayName *string `json:"displayName" validate:"omitempty,max=100"`
}

func (h *Handlers) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r)
	if !authz.IsAuthenticated(actor) {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	profile, err := h.UserService.UpdateProfile(r.Context(), repository.UpdateProfileRequest{
		UserID:      actor.UserID,
		Bio:         req.Bio,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, profile, http.StatusOK)
}

// UploadAvatar принимает multipart-форму с полем avatar.
// Потолок размера у аватара свой, меньше чем у картинок постов.
func (h *Handlers) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r)
	if !authz.IsAuthenticated(actor) {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxAvatarSize + 1024*1024); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		WriteError(w, "Отсутствует файл avatar", http.StatusBadRequest)
		return
	}
	defer file.Close()

	profile, err := h.UserService.UploadAvatar(
		r.Context(),
		actor.UserID,
		header.Filename,
		file,
		header.Size,
		header.Header.Get("Content-Type"),
	)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, profile, http.StatusOK)
}
