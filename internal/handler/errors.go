package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"socialgram/internal/models"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteSuccess - функция для успешных ответов
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteDomainError маппит доменную ошибку в HTTP статус.
// Недоменные ошибки никогда не утекают клиенту как есть.
func WriteDomainError(w http.ResponseWriter, err error) {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		log.Printf("внутренняя ошибка: %v", err)
		WriteError(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusForKind(appErr.Kind))
	json.NewEncoder(w).Encode(ErrorResponse{Error: appErr.Message, Kind: string(appErr.Kind)})
}

func statusForKind(kind models.ErrorKind) int {
	switch kind {
	case models.KindUnauthenticated:
		return http.StatusUnauthorized
	case models.KindForbidden:
		return http.StatusForbidden
	case models.KindNotFound:
		return http.StatusNotFound
	case models.KindValidation, models.KindDuplicate, models.KindSelfReference:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
