package appErrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode is a machine-readable error identifier.
type ErrorCode string

// AppError is the application error carried across layers.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func (e *AppError) WithError(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is wraps the stdlib errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As wraps the stdlib errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predefined errors.
var (
	// Authentication / authorization
	ErrUnauthorized = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrInvalidToken = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
	ErrForbidden    = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrFraudBlocked = New(CodeFraudBlocked, "Account flagged as fraud", http.StatusForbidden)

	// Resources
	ErrUserNotFound    = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrMealNotFound    = New(CodeMealNotFound, "Meal not found", http.StatusNotFound)
	ErrOrderNotFound   = New(CodeOrderNotFound, "Order not found", http.StatusNotFound)
	ErrReviewNotFound  = New(CodeReviewNotFound, "Review not found", http.StatusNotFound)
	ErrRequestNotFound = New(CodeRequestNotFound, "Request not found", http.StatusNotFound)

	// Ownership and conflicts
	ErrNotMealOwner   = New(CodeNotOwner, "You can only modify your own meals", http.StatusForbidden)
	ErrNotReviewOwner = New(CodeNotOwner, "You can only modify your own reviews", http.StatusForbidden)
	ErrNotOrderChef   = New(CodeNotOwner, "You can only update orders for your meals", http.StatusForbidden)
	ErrRequestDecided = New(CodeRequestDecided, "Request already processed", http.StatusConflict)
	ErrFavoriteExists = New(CodeFavoriteExists, "Already in favorites", http.StatusConflict)

	// Validation
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
	ErrInvalidRole      = New(CodeInvalidRole, "Invalid role", http.StatusBadRequest)
	ErrChefIDMissing    = New(CodeChefIDMissing, "Chef ID missing", http.StatusBadRequest)
	ErrCannotFlagAdmin  = New(CodeCannotFlagAdmin, "Cannot mark admin as fraud", http.StatusBadRequest)
)

// Helpers for errors built on the fly.

func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func NotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func NewConflictError(message string) *AppError {
	return New(CodeConflict, message, http.StatusConflict)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}
