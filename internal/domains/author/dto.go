package author

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"github.com/scorpaust/conex-blog/internal/shared/pagination"
)

// CreateAuthorRequest - POST /v1/authors
type CreateAuthorRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.EmailFormat.Error("invalid email format"),
		),
	)
}

// UpdateAuthorRequest - PUT /v1/authors/:id
// Nil fields are left untouched (partial update by omission); an explicit
// JSON null is also treated as "not provided".
type UpdateAuthorRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty.Error("name cannot be empty"),
		),
		validation.Field(&r.Email,
			validation.NilOrNotEmpty.Error("email cannot be empty"),
			is.EmailFormat.Error("invalid email format"),
		),
	)
}

// AuthorResponse is the public projection of an Author.
type AuthorResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthorListResponse - paginated author search output.
type AuthorListResponse = pagination.Result[AuthorResponse]

// ToResponse narrows the entity to its public shape.
func (a Author) ToResponse() AuthorResponse {
	return AuthorResponse{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
	}
}
