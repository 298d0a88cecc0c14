package post

import (
	"context"

	"github.com/google/uuid"

	"github.com/scorpaust/conex-blog/internal/shared/pagination"
)

// Service sequences repository calls for each post operation. The author
// repository is an injected collaborator used for the foreign-key
// existence check on create and the on-demand author resolution.
type Service interface {
	// Get returns ErrPostNotFound (with the id) when absent.
	Get(ctx context.Context, id uuid.UUID) (*PostResponse, error)

	// GetBySlug resolves the unique-key lookup.
	GetBySlug(ctx context.Context, slug string) (*PostResponse, error)

	// GetWithAuthor shapes the public output: the author is fetched by a
	// separate lookup keyed on AuthorID. When the author was deleted
	// after post creation the lookup's not-found error propagates.
	GetWithAuthor(ctx context.Context, id uuid.UUID) (*PostDetailResponse, error)

	// List delegates to repository search and projects the results.
	List(ctx context.Context, params pagination.SearchParams) (pagination.Result[PostResponse], error)

	// Create validates the referenced author exists, derives the slug
	// from the title and stores the post unpublished.
	Create(ctx context.Context, req *CreatePostRequest) (*PostResponse, error)

	// Publish sets published unconditionally; republishing a published
	// post is a no-op success. Unpublish is symmetric.
	Publish(ctx context.Context, id uuid.UUID) (*PostResponse, error)
	Unpublish(ctx context.Context, id uuid.UUID) (*PostResponse, error)
}
