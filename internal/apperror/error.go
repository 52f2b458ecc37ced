package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
)

// Error is an application error carrying the HTTP status it maps to.
type Error struct {
	HTTPStatus int
	Code       string
	Message    string
	Internal   error
}

func (e *Error) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Internal
}

// WithMessage returns a copy of the error with a custom message
func (e *Error) WithMessage(message string) *Error {
	return &Error{HTTPStatus: e.HTTPStatus, Code: e.Code, Message: message, Internal: e.Internal}
}

// WithInternal returns a copy of the error with an internal error attached
func (e *Error) WithInternal(err error) *Error {
	return &Error{HTTPStatus: e.HTTPStatus, Code: e.Code, Message: e.Message, Internal: err}
}

func New(status int, code, message string) *Error {
	return &Error{HTTPStatus: status, Code: code, Message: message}
}

var (
	ErrBadRequest      = New(http.StatusBadRequest, "bad_request", "Invalid request")
	ErrValidation      = New(http.StatusUnprocessableEntity, "validation_error", "Validation failed")
	ErrUnauthorized    = New(http.StatusUnauthorized, "unauthorized", "Authentication required")
	ErrInvalidToken    = New(http.StatusUnauthorized, "invalid_token", "Invalid token")
	ErrNotFound        = New(http.StatusNotFound, "not_found", "Resource not found")
	ErrConflict        = New(http.StatusBadRequest, "conflict", "Resource already exists")
	ErrTooManyRequests = New(http.StatusTooManyRequests, "rate_limited", "Too many requests")
	ErrInternal        = New(http.StatusInternalServerError, "internal_error", "Something went wrong")
)

// Body is the JSON error shape. Detail matches what the waitlist form reads.
type Body struct {
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

// ToHTTPError converts any error into a status and body. Unknown errors
// become a generic internal error so internals never leak to clients.
func ToHTTPError(err error) (int, Body) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus, Body{Detail: appErr.Message, Code: appErr.Code}
	}
	return ErrInternal.HTTPStatus, Body{Detail: ErrInternal.Message, Code: ErrInternal.Code}
}

// WriteJSON writes err as a JSON error response.
func WriteJSON(w http.ResponseWriter, err error) {
	status, body := ToHTTPError(err)
	if status >= http.StatusInternalServerError {
		log.Printf("Request failed: %v", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func NotFound(resource, id string) *Error {
	return ErrNotFound.WithMessage(fmt.Sprintf("%s '%s' not found", resource, id))
}

func Validation(message string) *Error {
	return ErrValidation.WithMessage(message)
}
