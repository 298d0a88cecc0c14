package author

import (
	"context"

	"github.com/google/uuid"

	"github.com/scorpaust/conex-blog/internal/shared/pagination"
)

// Repository is the persistence contract for authors. Implementations:
// postgres (pgx, unique index on email as the true uniqueness backstop)
// and memory (tests, local runs).
type Repository interface {
	// Create inserts an author, assigning ID and CreatedAt when unset.
	// Errors: ErrEmailTaken on a uniqueness violation.
	Create(ctx context.Context, a *Author) (*Author, error)

	// FindByID returns ErrAuthorNotFound (with the id) when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// FindByEmail returns (nil, nil) when no author owns the email.
	FindByEmail(ctx context.Context, email string) (*Author, error)

	// Update persists the full record. Errors: ErrAuthorNotFound when the
	// id is absent from the store, ErrEmailTaken on uniqueness violation.
	Update(ctx context.Context, a *Author) (*Author, error)

	// Delete removes the author and returns its prior state.
	// Errors: ErrAuthorNotFound when absent.
	Delete(ctx context.Context, id uuid.UUID) (*Author, error)

	// Search returns one page of the filtered, sorted author set.
	Search(ctx context.Context, params pagination.SearchParams) (pagination.Result[Author], error)
}
