package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/scorpaust/conex-blog/internal/domains/author"
	"github.com/scorpaust/conex-blog/internal/shared/pagination"
)

// memoryRepository implements author.Repository over a mutex-guarded map.
// Insertion order is tracked so the shared search engine sees a
// deterministic natural order.
type memoryRepository struct {
	mu      sync.RWMutex
	authors map[uuid.UUID]author.Author
	order   []uuid.UUID
}

func NewMemoryRepository() author.Repository {
	return &memoryRepository{
		authors: make(map[uuid.UUID]author.Author),
	}
}

// searchAccessors mirrors the postgres query: filter on name, sort on
// name, default order newest first. The name comparison folds case so
// "test" and "TEST" are equal keys, left in insertion order by the
// stable sort.
var searchAccessors = pagination.Accessors[author.Author]{
	FilterValue: func(a author.Author) string { return a.Name },
	SortLess: map[string]func(a, b author.Author) bool{
		"name": func(a, b author.Author) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		},
	},
	CreatedAt: func(a author.Author) time.Time { return a.CreatedAt },
}

func (r *memoryRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Uniqueness backstop, same rule the SQL index enforces.
	for _, existing := range r.authors {
		if existing.Email == a.Email {
			return nil, author.ErrEmailTaken
		}
	}

	created := *a
	if created.ID == uuid.Nil {
		created.ID = uuid.New()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	r.authors[created.ID] = created
	r.order = append(r.order, created.ID)

	return &created, nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.authors[id]
	if !ok {
		return nil, author.NotFoundByID(id)
	}

	return &a, nil
}

func (r *memoryRepository) FindByEmail(ctx context.Context, email string) (*author.Author, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if a := r.authors[id]; a.Email == email {
			return &a, nil
		}
	}

	return nil, nil
}

func (r *memoryRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.authors[a.ID]
	if !ok {
		return nil, author.NotFoundByID(a.ID)
	}

	for _, existing := range r.authors {
		if existing.ID != a.ID && existing.Email == a.Email {
			return nil, author.ErrEmailTaken
		}
	}

	updated := *a
	updated.CreatedAt = current.CreatedAt
	r.authors[a.ID] = updated

	return &updated, nil
}

func (r *memoryRepository) Delete(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted, ok := r.authors[id]
	if !ok {
		return nil, author.NotFoundByID(id)
	}

	delete(r.authors, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return &deleted, nil
}

func (r *memoryRepository) Search(ctx context.Context, params pagination.SearchParams) (pagination.Result[author.Author], error) {
	r.mu.RLock()
	records := make([]author.Author, 0, len(r.order))
	for _, id := range r.order {
		records = append(records, r.authors[id])
	}
	r.mu.RUnlock()

	return pagination.Search(records, params, searchAccessors), nil
}
