package author

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

var (
	// Business rule errors
	ErrInputNotProvided = errors.New("input data not provided")
	ErrIDNotProvided    = errors.New("author id not provided")
	ErrAuthorNotFound   = errors.New("author not found")
	ErrEmailTaken       = errors.New("email address used by already registered author")
)

// NotFoundByID wraps ErrAuthorNotFound with the identifier that was
// searched for, so callers can see what was missing.
func NotFoundByID(id uuid.UUID) error {
	return fmt.Errorf("%w using ID %s", ErrAuthorNotFound, id)
}

// ToErrorCode converts an error to an API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrEmailTaken):
		return "EMAIL_TAKEN"
	case errors.Is(err, ErrInputNotProvided), errors.Is(err, ErrIDNotProvided):
		return "BAD_REQUEST"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, ErrInputNotProvided), errors.Is(err, ErrIDNotProvided):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
