package models

import (
	"errors"
	"fmt"
)

// ErrorKind классифицирует доменные ошибки для маппинга в HTTP статусы
type ErrorKind string

const (
	KindUnauthenticated ErrorKind = "unauthenticated"
	KindForbidden       ErrorKind = "forbidden"
	KindValidation      ErrorKind = "validation"
	KindDuplicate       ErrorKind = "duplicate"
	KindNotFound        ErrorKind = "not_found"
	KindSelfReference   ErrorKind = "self_reference"
)

// AppError - доменная ошибка с видом и сообщением для клиента
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewUnauthenticatedError(message string) *AppError {
	return &AppError{Kind: KindUnauthenticated, Message: message}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Kind: KindForbidden, Message: message}
}

func NewValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func NewDuplicateError(message string) *AppError {
	return &AppError{Kind: KindDuplicate, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewSelfReferenceError(message string) *AppError {
	return &AppError{Kind: KindSelfReference, Message: message}
}

// KindOf возвращает вид ошибки, пустая строка если ошибка не доменная
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
