// internal/model/error.go
package model

import (
	"errors"
	"fmt"
)

// Application-wide sentinel errors.
var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInternalServer  = errors.New("internal server error")
	ErrConflict        = errors.New("resource conflict")
	ErrForbidden       = errors.New("forbidden")
	ErrSessionNotFound = errors.New("session not found or invalid")
)

// ErrorDetail is the error payload shown to API clients.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse is the envelope for all JSON error responses.
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError carries a client-facing detail plus the wrapped sentinel used for
// HTTP status mapping.
type AppError struct {
	Detail  ErrorDetail
	wrapped error
}

func NewAppError(code, message, field string, wrapped error) *AppError {
	return &AppError{
		Detail:  ErrorDetail{Code: code, Message: message, Field: field},
		wrapped: wrapped,
	}
}

func (e *AppError) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Detail.Code, e.Detail.Message, e.wrapped)
	}
	return fmt.Sprintf("%s: %s", e.Detail.Code, e.Detail.Message)
}

func (e *AppError) Unwrap() error {
	return e.wrapped
}
