// Package errors defines the application error returned by services and
// rendered by the HTTP layer.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeBadRequest        = "BAD_REQUEST"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeUnauthorized      = "UNAUTHORIZED"
	ErrCodeForbidden         = "FORBIDDEN"
	ErrCodeConflict          = "CONFLICT"
	ErrCodeInsufficientStock = "INSUFFICIENT_STOCK"
	ErrCodeInternal          = "INTERNAL_ERROR"
	ErrCodeDatabaseError     = "DATABASE_ERROR"
	ErrCodeDuplicateEntry    = "DUPLICATE_ENTRY"
	ErrCodeThirdPartyError   = "THIRD_PARTY_ERROR"
	ErrCodeTooManyRequests   = "TOO_MANY_REQUESTS"
)

var statusByCode = map[string]int{
	ErrCodeValidation:        http.StatusBadRequest,
	ErrCodeBadRequest:        http.StatusBadRequest,
	ErrCodeNotFound:          http.StatusNotFound,
	ErrCodeUnauthorized:      http.StatusUnauthorized,
	ErrCodeForbidden:         http.StatusForbidden,
	ErrCodeConflict:          http.StatusConflict,
	ErrCodeInsufficientStock: http.StatusConflict,
	ErrCodeInternal:          http.StatusInternalServerError,
	ErrCodeDatabaseError:     http.StatusInternalServerError,
	ErrCodeDuplicateEntry:    http.StatusConflict,
	ErrCodeThirdPartyError:   http.StatusBadGateway,
	ErrCodeTooManyRequests:   http.StatusTooManyRequests,
}

type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	Err        error
}

// Error returns the client-facing message. The wrapped cause stays reachable
// through Unwrap but is never rendered.
func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches another AppError with the same code, so callers can test
// errors.Is(err, NotFoundError("")).
func (e *AppError) Is(target error) bool {
	var other *AppError
	if !errors.As(target, &other) {
		return false
	}

	return other.Code == e.Code
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

// New builds an AppError whose status is derived from code. Unknown codes map
// to 500.
func New(code, message string) *AppError {
	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}

	return &AppError{Code: code, Message: message, StatusCode: status}
}

func ValidationError(message string) *AppError   { return New(ErrCodeValidation, message) }
func BadRequestError(message string) *AppError   { return New(ErrCodeBadRequest, message) }
func NotFoundError(message string) *AppError     { return New(ErrCodeNotFound, message) }
func UnauthorizedError(message string) *AppError { return New(ErrCodeUnauthorized, message) }
func ForbiddenError(message string) *AppError    { return New(ErrCodeForbidden, message) }
func ConflictError(message string) *AppError     { return New(ErrCodeConflict, message) }
func InternalError(message string) *AppError     { return New(ErrCodeInternal, message) }
func DatabaseError(message string) *AppError     { return New(ErrCodeDatabaseError, message) }
func DuplicateEntryError(message string) *AppError {
	return New(ErrCodeDuplicateEntry, message)
}

// InsufficientStockError is returned when a cart or order asks for more units
// than the product has in stock.
func InsufficientStockError(message string) *AppError {
	return New(ErrCodeInsufficientStock, message)
}

// ThirdPartyError covers failures of Stripe, SendGrid and Redis.
func ThirdPartyError(message string) *AppError {
	return New(ErrCodeThirdPartyError, message)
}

func TooManyRequestsError(message string) *AppError {
	return New(ErrCodeTooManyRequests, message)
}

func FieldError(field, reason string) *AppError {
	return ValidationError(fmt.Sprintf("Invalid field '%s': %s", field, reason))
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}
