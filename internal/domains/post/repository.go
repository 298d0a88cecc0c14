package post

import (
	"context"

	"github.com/google/uuid"

	"github.com/scorpaust/conex-blog/internal/shared/pagination"
)

// Repository is the persistence contract for posts. The slug is the
// unique-key lookup, analogous to the author's email.
type Repository interface {
	// Create inserts a post, assigning ID and CreatedAt when unset.
	// Errors: ErrSlugTaken on a uniqueness violation.
	Create(ctx context.Context, p *Post) (*Post, error)

	// FindByID returns ErrPostNotFound (with the id) when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*Post, error)

	// FindBySlug returns (nil, nil) when no post owns the slug.
	FindBySlug(ctx context.Context, slug string) (*Post, error)

	// Update persists the full record. Errors: ErrPostNotFound when the
	// id is absent from the store.
	Update(ctx context.Context, p *Post) (*Post, error)

	// Delete removes the post and returns its prior state.
	Delete(ctx context.Context, id uuid.UUID) (*Post, error)

	// Search returns one page of the filtered, sorted post set; the
	// designated filter field is the title.
	Search(ctx context.Context, params pagination.SearchParams) (pagination.Result[Post], error)
}
