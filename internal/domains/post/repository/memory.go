package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/scorpaust/conex-blog/internal/domains/post"
	"github.com/scorpaust/conex-blog/internal/shared/pagination"
)

// memoryRepository implements post.Repository over a mutex-guarded map
// with insertion order preserved for deterministic searches.
type memoryRepository struct {
	mu    sync.RWMutex
	posts map[uuid.UUID]post.Post
	order []uuid.UUID
}

func NewMemoryRepository() post.Repository {
	return &memoryRepository{
		posts: make(map[uuid.UUID]post.Post),
	}
}

// Title sorting folds case; equal keys keep insertion order.
var searchAccessors = pagination.Accessors[post.Post]{
	FilterValue: func(p post.Post) string { return p.Title },
	SortLess: map[string]func(a, b post.Post) bool{
		"title": func(a, b post.Post) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		},
	},
	CreatedAt: func(p post.Post) time.Time { return p.CreatedAt },
}

func (r *memoryRepository) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.posts {
		if existing.Slug == p.Slug {
			return nil, post.ErrSlugTaken
		}
	}

	created := *p
	if created.ID == uuid.Nil {
		created.ID = uuid.New()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	r.posts[created.ID] = created
	r.order = append(r.order, created.ID)

	return &created, nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.posts[id]
	if !ok {
		return nil, post.NotFoundByID(id)
	}

	return &p, nil
}

func (r *memoryRepository) FindBySlug(ctx context.Context, slug string) (*post.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if p := r.posts[id]; p.Slug == slug {
			return &p, nil
		}
	}

	return nil, nil
}

func (r *memoryRepository) Update(ctx context.Context, p *post.Post) (*post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.posts[p.ID]
	if !ok {
		return nil, post.NotFoundByID(p.ID)
	}

	for _, existing := range r.posts {
		if existing.ID != p.ID && existing.Slug == p.Slug {
			return nil, post.ErrSlugTaken
		}
	}

	updated := *p
	updated.AuthorID = current.AuthorID
	updated.CreatedAt = current.CreatedAt
	r.posts[p.ID] = updated

	return &updated, nil
}

func (r *memoryRepository) Delete(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted, ok := r.posts[id]
	if !ok {
		return nil, post.NotFoundByID(id)
	}

	delete(r.posts, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return &deleted, nil
}

func (r *memoryRepository) Search(ctx context.Context, params pagination.SearchParams) (pagination.Result[post.Post], error) {
	r.mu.RLock()
	records := make([]post.Post, 0, len(r.order))
	for _, id := range r.order {
		records = append(records, r.posts[id])
	}
	r.mu.RUnlock()

	return pagination.Search(records, params, searchAccessors), nil
}
