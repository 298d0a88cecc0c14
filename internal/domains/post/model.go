package post

import (
	"time"

	"github.com/google/uuid"
)

// Post is the domain entity. Slug is derived from the title at creation
// and serves as the unique lookup key; Published starts false and only
// changes through the publish/unpublish operations.
type Post struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Slug      string    `json:"slug" db:"slug"`
	Published bool      `json:"published" db:"published"`
	AuthorID  uuid.UUID `json:"author_id" db:"author_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
