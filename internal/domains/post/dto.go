package post

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"github.com/scorpaust/conex-blog/internal/domains/author"
	"github.com/scorpaust/conex-blog/internal/shared/pagination"
)

// CreatePostRequest - POST /v1/posts
type CreatePostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	AuthorID string `json:"authorId"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
		),
		validation.Field(&r.AuthorID,
			validation.Required.Error("authorId is required"),
			is.UUIDv4.Error("authorId must be a valid UUID"),
		),
	)
}

// PostResponse is the public projection of a Post.
type PostResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Slug      string    `json:"slug"`
	Published bool      `json:"published"`
	AuthorID  uuid.UUID `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostDetailResponse adds the lazily resolved author.
type PostDetailResponse struct {
	PostResponse
	Author *author.AuthorResponse `json:"author,omitempty"`
}

// PostListResponse - paginated post search output.
type PostListResponse = pagination.Result[PostResponse]

// ToResponse narrows the entity to its public shape.
func (p Post) ToResponse() PostResponse {
	return PostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Slug:      p.Slug,
		Published: p.Published,
		AuthorID:  p.AuthorID,
		CreatedAt: p.CreatedAt,
	}
}
