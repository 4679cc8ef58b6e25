package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"socialgram/internal/authz"
)

type CreateReportRequest struct {
	PostID string `json:"postId" validate:"required"`
	Reason string `json:"reason" validate:"required,max=500"`
}

func (h *Handlers) CreateReport(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r)
	if !authz.IsAuthenticated(actor) {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	var req CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	report, err := h.ReportService.CreateReport(r.Context(), actor, req.PostID, req.Reason)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, report, http.StatusCreated)
}

func (h *Handlers) ListReports(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r)
	if !authz.IsAuthenticated(actor) {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	reports, err := h.ReportService.ListReports(r.Context(), actor)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, reports, http.StatusOK)
}

type ModerateRequest struct {
	Status string `json:"status" validate:"required,oneof=reviewed action_taken"`
}

func (h *Handlers) ModerateReport(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r)
	if !authz.IsAuthenticated(actor) {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	reportID := mux.Vars(r)["id"]

	var req ModerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	report, err := h.ReportService.Moderate(r.Context(), actor, reportID, req.Status)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, report, http.StatusOK)
}

func (h *Handlers) ReportSummary(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r)
	if !authz.IsAuthenticated(actor) {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	summary, err := h.ReportService.Summarize(r.Context(), postID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, summary, http.StatusOK)
}
