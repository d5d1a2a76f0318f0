package apperrors

import (
	"fmt"
	"net/http"
)

// Error is an application error carrying the HTTP status it maps to. Fields
// holds per-field validation messages when the error is a validation failure.
type Error struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	Err     error             `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error.
func New(code int, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Wrap returns a copy of base carrying err as its cause.
func Wrap(base *Error, err error) *Error {
	return &Error{Code: base.Code, Message: base.Message, Err: err}
}

// Validation returns a field-level validation error.
func Validation(fields map[string]string) *Error {
	return &Error{Code: http.StatusBadRequest, Message: "Validation failed", Fields: fields}
}

var (
	ErrBadRequest   = New(http.StatusBadRequest, "Bad request", nil)
	ErrUnauthorized = New(http.StatusUnauthorized, "Unauthorized", nil)
	ErrForbidden    = New(http.StatusForbidden, "Forbidden", nil)
	ErrNotFound     = New(http.StatusNotFound, "Not found", nil)
	ErrInternal     = New(http.StatusInternalServerError, "Internal server error", nil)

	// Cart / checkout
	ErrEmptyCart    = New(http.StatusConflict, "Cart is empty", nil)
	ErrInvalidState = New(http.StatusConflict, "Checkout step not allowed from current state", nil)

	// AI gateway. InvalidDocument means the upload is not a recognized lab
	// report; AnalysisFailure means the gateway call itself failed or returned
	// garbage. The distinction tells the user whether to retry with a
	// different file or just retry.
	ErrInvalidDocument = New(http.StatusUnprocessableEntity, "Not a recognized medical document", nil)
	ErrAnalysisFailure = New(http.StatusBadGateway, "Analysis failed, please try again", nil)

	// Auth
	ErrInvalidCredentials = New(http.StatusUnauthorized, "Invalid credentials", nil)
	ErrEmailTaken         = New(http.StatusConflict, "Email already registered", nil)
)
