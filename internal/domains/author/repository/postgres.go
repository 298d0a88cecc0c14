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

	"github.com/scorpaust/conex-blog/internal/domains/author"
	"github.com/scorpaust/conex-blog/internal/shared/pagination"
	"github.com/scorpaust/conex-blog/pkg/cache"
)

const (
	authorCacheKeyPrefix = "author:"
	cacheTTL             = 15 * time.Minute

	uniqueViolation = "23505"
)

// postgresRepository implements author.Repository on pgxpool with a
// read-through cache on id lookups.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) author.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO authors (id, name, email, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id, name, email, created_at
    `

	id := a.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	var created author.Author
	err := r.pool.QueryRow(ctx, query, id, a.Name, a.Email, createdAt).Scan(
		&created.ID,
		&created.Name,
		&created.Email,
		&created.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, author.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	cacheKey := authorCacheKeyPrefix + id.String()

	var a author.Author
	if hit, err := r.cache.Get(ctx, cacheKey, &a); err == nil && hit {
		return &a, nil
	}

	query := `
        SELECT id, name, email, created_at
        FROM authors
        WHERE id = $1
    `

	err := r.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.Name, &a.Email, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.NotFoundByID(id)
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	r.cache.Set(ctx, cacheKey, a, cacheTTL)

	return &a, nil
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*author.Author, error) {
	query := `
        SELECT id, name, email, created_at
        FROM authors
        WHERE email = $1
    `

	var a author.Author
	err := r.pool.QueryRow(ctx, query, email).Scan(&a.ID, &a.Name, &a.Email, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Absence is not an error for unique-key lookups.
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get author by email: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        UPDATE authors
        SET name = $1, email = $2
        WHERE id = $3
        RETURNING id, name, email, created_at
    `

	var updated author.Author
	err := r.pool.QueryRow(ctx, query, a.Name, a.Email, a.ID).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Email,
		&updated.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.NotFoundByID(a.ID)
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, author.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	r.cache.Delete(ctx, authorCacheKeyPrefix+a.ID.String())

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	query := `
        DELETE FROM authors
        WHERE id = $1
        RETURNING id, name, email, created_at
    `

	var deleted author.Author
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&deleted.ID,
		&deleted.Name,
		&deleted.Email,
		&deleted.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.NotFoundByID(id)
		}
		return nil, fmt.Errorf("failed to delete author: %w", err)
	}

	r.cache.Delete(ctx, authorCacheKeyPrefix+id.String())

	return &deleted, nil
}

// Search pushes filtering, ordering and the page window down to SQL.
// The output contract matches pagination.Search over the same records.
func (r *postgresRepository) Search(ctx context.Context, params pagination.SearchParams) (pagination.Result[author.Author], error) {
	params = params.Normalized()

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
        SELECT id, name, email, created_at
        FROM authors
        WHERE 1=1
    `)

	args := []interface{}{}
	argPos := 1

	if params.Filter != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND name ILIKE $%d", argPos))
		args = append(args, "%"+escapeWildcards(params.Filter)+"%")
		argPos++
	}

	// Whitelisted sort column; anything else keeps the default
	// newest-first order. lower() matches the case-folded comparator of
	// the in-memory engine, and created_at ASC, id keeps equal keys in
	// insertion order like its stable sort.
	if params.Sort == "name" {
		dir := "ASC"
		if params.Descending() {
			dir = "DESC"
		}
		queryBuilder.WriteString(fmt.Sprintf(" ORDER BY lower(name) %s, created_at ASC, id", dir))
	} else {
		queryBuilder.WriteString(" ORDER BY created_at DESC, id")
	}

	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1))
	args = append(args, params.PerPage, params.Offset())

	rows, err := r.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return pagination.Result[author.Author]{}, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	var authors []author.Author
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.CreatedAt); err != nil {
			return pagination.Result[author.Author]{}, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return pagination.Result[author.Author]{}, fmt.Errorf("error iterating authors: %w", err)
	}

	countQuery := `SELECT COUNT(*) FROM authors WHERE 1=1`
	countArgs := []interface{}{}
	if params.Filter != "" {
		countQuery += " AND name ILIKE $1"
		countArgs = append(countArgs, "%"+escapeWildcards(params.Filter)+"%")
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return pagination.Result[author.Author]{}, fmt.Errorf("failed to count authors: %w", err)
	}

	return pagination.NewResult(authors, total, params.Page, params.PerPage), nil
}

// escapeWildcards keeps user input from injecting ILIKE wildcards.
func escapeWildcards(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
