package author

import (
	"time"

	"github.com/google/uuid"
)

// Author is the domain entity. ID and CreatedAt are assigned by the
// repository at creation time and never change afterwards.
type Author struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"` // globally unique
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
