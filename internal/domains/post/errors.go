package post

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/scorpaust/conex-blog/internal/domains/author"
)

var (
	ErrInputNotProvided = errors.New("input data not provided")
	ErrPostNotFound     = errors.New("post not found")
	ErrSlugTaken        = errors.New("slug used by already registered post")
)

// NotFoundByID wraps ErrPostNotFound with the identifier searched for.
func NotFoundByID(id uuid.UUID) error {
	return fmt.Errorf("%w using ID %s", ErrPostNotFound, id)
}

// NotFoundBySlug wraps ErrPostNotFound with the slug searched for.
func NotFoundBySlug(slug string) error {
	return fmt.Errorf("%w using slug %s", ErrPostNotFound, slug)
}

// ToErrorCode converts an error to an API error code. Author errors pass
// through because post operations resolve authors as a collaborator.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrPostNotFound):
		return "POST_NOT_FOUND"
	case errors.Is(err, author.ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrSlugTaken):
		return "SLUG_TAKEN"
	case errors.Is(err, ErrInputNotProvided):
		return "BAD_REQUEST"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrPostNotFound), errors.Is(err, author.ErrAuthorNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrSlugTaken):
		return http.StatusConflict
	case errors.Is(err, ErrInputNotProvided):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
