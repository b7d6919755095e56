// AngelaMos | 2026
// errors.go

package core

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrUnauthenticated  = errors.New("authentication required")
	ErrForbidden        = errors.New("forbidden")
	ErrTokenInvalid     = errors.New("invalid token")
	ErrNotFound         = errors.New("not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrDuplicateKey     = errors.New("duplicate key")
	ErrIntegrity        = errors.New("record integrity violation")
	ErrStorage          = errors.New("storage failure")
)

type AppError struct {
	Err        error
	Message    string
	StatusCode int
	Code       string
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(err error, message string, status int, code string) *AppError {
	return &AppError{
		Err:        err,
		Message:    message,
		StatusCode: status,
		Code:       code,
	}
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func ValidationError(message string) *AppError {
	return NewAppError(ErrValidation, message, http.StatusBadRequest, "VALIDATION_ERROR")
}

func UnauthorizedError(message string) *AppError {
	if message == "" {
		message = "authentication required"
	}
	return NewAppError(ErrUnauthenticated, message, http.StatusUnauthorized, "UNAUTHORIZED")
}

func ForbiddenError(message string) *AppError {
	if message == "" {
		message = "forbidden"
	}
	return NewAppError(ErrForbidden, message, http.StatusForbidden, "FORBIDDEN")
}

// TokenInvalidError covers malformed, mis-signed and expired tokens alike.
func TokenInvalidError() *AppError {
	return NewAppError(ErrTokenInvalid, "invalid token", http.StatusForbidden, "TOKEN_INVALID")
}

func NotFoundError(resource string) *AppError {
	return NewAppError(ErrNotFound, resource+" not found", http.StatusNotFound, "NOT_FOUND")
}

func MethodNotAllowedError() *AppError {
	return NewAppError(ErrMethodNotAllowed, "method not allowed", http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED")
}

func DuplicateError(resource string) *AppError {
	return NewAppError(ErrDuplicateKey, resource+" already exists", http.StatusConflict, "DUPLICATE")
}

func StorageError() *AppError {
	return NewAppError(ErrStorage, "database error", http.StatusInternalServerError, "DATABASE_ERROR")
}

func IntegrityError() *AppError {
	return NewAppError(ErrIntegrity, "internal server error", http.StatusInternalServerError, "INTERNAL_ERROR")
}

// FormatValidationError flattens validator failures into a message that does
// not name the offending field.
func FormatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request"
	}

	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return "missing required fields"
		}
	}

	return "invalid field values"
}
