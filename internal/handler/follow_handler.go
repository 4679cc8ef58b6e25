package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"socialgram/internal/authz"
)

type DetailResponse struct {
	Detail string `json:"detail"`
}

func (h *Handlers) FollowUser(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r)
	if !authz.IsAuthenticated(actor) {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	targetID := mux.Vars(r)["id"]

	follow, err := h.FollowService.Follow(r.Context(), actor.UserID, targetID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, follow, http.StatusCreated)
}

func (h *Handlers) UnfollowUser(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r)
	if !authz.IsAuthenticated(actor) {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	targetID := mux.Vars(r)["id"]

	err := h.FollowService.Unfollow(r.Context(), actor.UserID, targetID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, DetailResponse{Detail: "Unfollowed"}, http.StatusOK)
}

func (h *Handlers) ListFollowers(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	edges, err := h.FollowService.ListFollowers(r.Context(), userID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, edges, http.StatusOK)
}

func (h *Handlers) ListFollowing(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	edges, err := h.FollowService.ListFollowing(r.Context(), userID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, edges, http.StatusOK)
}
