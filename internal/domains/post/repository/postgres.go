package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scorpaust/conex-blog/internal/domains/post"
	"github.com/scorpaust/conex-blog/internal/shared/pagination"
	"github.com/scorpaust/conex-blog/pkg/cache"
)

const (
	postCacheKeyPrefix = "post:"
	postSlugKeyPrefix  = "post:slug:"
	cacheTTL           = 15 * time.Minute

	uniqueViolation = "23505"
)

// postgresRepository implements post.Repository on pgxpool with a
// read-through cache on id and slug lookups.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) post.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

func (r *postgresRepository) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	query := `
        INSERT INTO posts (id, title, content, slug, published, author_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, title, content, slug, published, author_id, created_at
    `

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	var created post.Post
	err := r.pool.QueryRow(ctx, query,
		id, p.Title, p.Content, p.Slug, p.Published, p.AuthorID, createdAt,
	).Scan(
		&created.ID,
		&created.Title,
		&created.Content,
		&created.Slug,
		&created.Published,
		&created.AuthorID,
		&created.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, post.ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	cacheKey := postCacheKeyPrefix + id.String()

	var p post.Post
	if hit, err := r.cache.Get(ctx, cacheKey, &p); err == nil && hit {
		return &p, nil
	}

	query := `
        SELECT id, title, content, slug, published, author_id, created_at
        FROM posts
        WHERE id = $1
    `

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Content, &p.Slug, &p.Published, &p.AuthorID, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.NotFoundByID(id)
		}
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	r.cache.Set(ctx, cacheKey, p, cacheTTL)

	return &p, nil
}

func (r *postgresRepository) FindBySlug(ctx context.Context, slug string) (*post.Post, error) {
	cacheKey := postSlugKeyPrefix + slug

	var p post.Post
	if hit, err := r.cache.Get(ctx, cacheKey, &p); err == nil && hit {
		return &p, nil
	}

	query := `
        SELECT id, title, content, slug, published, author_id, created_at
        FROM posts
        WHERE slug = $1
    `

	err := r.pool.QueryRow(ctx, query, slug).Scan(
		&p.ID, &p.Title, &p.Content, &p.Slug, &p.Published, &p.AuthorID, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Absence is not an error for unique-key lookups.
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get post by slug: %w", err)
	}

	r.cache.Set(ctx, cacheKey, p, cacheTTL)
	r.cache.Set(ctx, postCacheKeyPrefix+p.ID.String(), p, cacheTTL)

	return &p, nil
}

func (r *postgresRepository) Update(ctx context.Context, p *post.Post) (*post.Post, error) {
	query := `
        UPDATE posts
        SET title = $1, content = $2, slug = $3, published = $4
        WHERE id = $5
        RETURNING id, title, content, slug, published, author_id, created_at
    `

	var updated post.Post
	err := r.pool.QueryRow(ctx, query, p.Title, p.Content, p.Slug, p.Published, p.ID).Scan(
		&updated.ID,
		&updated.Title,
		&updated.Content,
		&updated.Slug,
		&updated.Published,
		&updated.AuthorID,
		&updated.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.NotFoundByID(p.ID)
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, post.ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	r.cache.Delete(ctx, postCacheKeyPrefix+p.ID.String(), postSlugKeyPrefix+updated.Slug)

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	query := `
        DELETE FROM posts
        WHERE id = $1
        RETURNING id, title, content, slug, published, author_id, created_at
    `

	var deleted post.Post
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&deleted.ID,
		&deleted.Title,
		&deleted.Content,
		&deleted.Slug,
		&deleted.Published,
		&deleted.AuthorID,
		&deleted.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.NotFoundByID(id)
		}
		return nil, fmt.Errorf("failed to delete post: %w", err)
	}

	r.cache.Delete(ctx, postCacheKeyPrefix+id.String(), postSlugKeyPrefix+deleted.Slug)

	return &deleted, nil
}

// Search pushes filtering, ordering and the page window down to SQL,
// matching the in-memory engine's contract.
func (r *postgresRepository) Search(ctx context.Context, params pagination.SearchParams) (pagination.Result[post.Post], error) {
	params = params.Normalized()

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
        SELECT id, title, content, slug, published, author_id, created_at
        FROM posts
        WHERE 1=1
    `)

	args := []interface{}{}
	argPos := 1

	if params.Filter != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND title ILIKE $%d", argPos))
		args = append(args, "%"+escapeWildcards(params.Filter)+"%")
		argPos++
	}

	// lower() matches the case-folded comparator of the in-memory
	// engine; created_at ASC, id keeps equal keys in insertion order.
	if params.Sort == "title" {
		dir := "ASC"
		if params.Descending() {
			dir = "DESC"
		}
		queryBuilder.WriteString(fmt.Sprintf(" ORDER BY lower(title) %s, created_at ASC, id", dir))
	} else {
		queryBuilder.WriteString(" ORDER BY created_at DESC, id")
	}

	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1))
	args = append(args, params.PerPage, params.Offset())

	rows, err := r.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return pagination.Result[post.Post]{}, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	var posts []post.Post
	for rows.Next() {
		var p post.Post
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Content, &p.Slug, &p.Published, &p.AuthorID, &p.CreatedAt,
		); err != nil {
			return pagination.Result[post.Post]{}, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return pagination.Result[post.Post]{}, fmt.Errorf("error iterating posts: %w", err)
	}

	countQuery := `SELECT COUNT(*) FROM posts WHERE 1=1`
	countArgs := []interface{}{}
	if params.Filter != "" {
		countQuery += " AND title ILIKE $1"
		countArgs = append(countArgs, "%"+escapeWildcards(params.Filter)+"%")
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return pagination.Result[post.Post]{}, fmt.Errorf("failed to count posts: %w", err)
	}

	return pagination.NewResult(posts, total, params.Page, params.PerPage), nil
}

func escapeWildcards(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
