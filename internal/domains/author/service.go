package author

import (
	"context"

	"github.com/google/uuid"

	"github.com/scorpaust/conex-blog/internal/shared/pagination"
)

// Service sequences repository calls for each author operation and
// enforces the business invariants (required input, unique email).
type Service interface {
	// List delegates to repository search and projects the results.
	List(ctx context.Context, params pagination.SearchParams) (pagination.Result[AuthorResponse], error)

	// Get returns ErrAuthorNotFound (with the id) when absent.
	Get(ctx context.Context, id uuid.UUID) (*AuthorResponse, error)

	// Create fails with ErrInputNotProvided when name or email is empty
	// and with ErrEmailTaken when the email is already registered. The
	// existence check is a fast path; the storage unique constraint is
	// the real backstop under concurrent creates.
	Create(ctx context.Context, req *CreateAuthorRequest) (*AuthorResponse, error)

	// Update applies only the provided fields over the current record.
	// Fails with ErrIDNotProvided before touching the repository when the
	// id is missing, and with ErrEmailTaken when a different author
	// already owns the new email.
	Update(ctx context.Context, id uuid.UUID, req *UpdateAuthorRequest) (*AuthorResponse, error)

	// Delete removes the author and returns its prior state.
	Delete(ctx context.Context, id uuid.UUID) (*AuthorResponse, error)
}
