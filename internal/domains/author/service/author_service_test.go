package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scorpaust/conex-blog/internal/domains/author"
	"github.com/scorpaust/conex-blog/internal/domains/author/repository"
	"github.com/scorpaust/conex-blog/internal/shared/pagination"
)

func ptr(s string) *string { return &s }

func newService() author.Service {
	return NewAuthorService(repository.NewMemoryRepository())
}

func createAuthor(t *testing.T, svc author.Service, name, email string) *author.AuthorResponse {
	t.Helper()
	created, err := svc.Create(context.Background(), &author.CreateAuthorRequest{Name: name, Email: email})
	require.NoError(t, err)
	return created
}

func TestAuthorServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		svc := newService()
		created := createAuthor(t, svc, "Grace Hopper", "grace@navy.mil")

		found, err := svc.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "Grace Hopper", found.Name)
		assert.Equal(t, "grace@navy.mil", found.Email)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		svc := newService()
		_, err := svc.Create(ctx, &author.CreateAuthorRequest{Name: "   ", Email: "x@y.dev"})
		assert.ErrorIs(t, err, author.ErrInputNotProvided)
	})

	t.Run("empty email rejected", func(t *testing.T) {
		svc := newService()
		_, err := svc.Create(ctx, &author.CreateAuthorRequest{Name: "Someone", Email: ""})
		assert.ErrorIs(t, err, author.ErrInputNotProvided)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		svc := newService()
		createAuthor(t, svc, "First", "taken@example.com")
		_, err := svc.Create(ctx, &author.CreateAuthorRequest{Name: "Second", Email: "taken@example.com"})
		assert.ErrorIs(t, err, author.ErrEmailTaken)
	})
}

func TestAuthorServiceGet(t *testing.T) {
	svc := newService()
	missing := uuid.New()

	_, err := svc.Get(context.Background(), missing)
	require.ErrorIs(t, err, author.ErrAuthorNotFound)
	assert.Contains(t, err.Error(), missing.String())
}

func TestAuthorServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("missing id fails before any repository call", func(t *testing.T) {
		repo := &recordingRepository{inner: repository.NewMemoryRepository()}
		svc := NewAuthorService(repo)

		_, err := svc.Update(ctx, uuid.Nil, &author.UpdateAuthorRequest{Name: ptr("New Name")})
		assert.ErrorIs(t, err, author.ErrIDNotProvided)
		assert.Zero(t, repo.calls)
	})

	t.Run("partial update by omission", func(t *testing.T) {
		svc := newService()
		created := createAuthor(t, svc, "Original Name", "original@example.com")

		updated, err := svc.Update(ctx, created.ID, &author.UpdateAuthorRequest{Name: ptr("Renamed")})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Name)
		assert.Equal(t, "original@example.com", updated.Email)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	})

	t.Run("empty request changes nothing", func(t *testing.T) {
		svc := newService()
		created := createAuthor(t, svc, "Stable", "stable@example.com")

		updated, err := svc.Update(ctx, created.ID, &author.UpdateAuthorRequest{})
		require.NoError(t, err)
		assert.Equal(t, created.Name, updated.Name)
		assert.Equal(t, created.Email, updated.Email)
	})

	t.Run("values are trimmed like create", func(t *testing.T) {
		svc := newService()
		created := createAuthor(t, svc, "Padded", "padded@example.com")

		updated, err := svc.Update(ctx, created.ID, &author.UpdateAuthorRequest{
			Name:  ptr("  Trimmed Name  "),
			Email: ptr("  trimmed@example.com "),
		})
		require.NoError(t, err)
		assert.Equal(t, "Trimmed Name", updated.Name)
		assert.Equal(t, "trimmed@example.com", updated.Email)
	})

	t.Run("email owned by another author is a conflict", func(t *testing.T) {
		svc := newService()
		createAuthor(t, svc, "Owner", "owned@example.com")
		other := createAuthor(t, svc, "Other", "other@example.com")

		_, err := svc.Update(ctx, other.ID, &author.UpdateAuthorRequest{Email: ptr("owned@example.com")})
		assert.ErrorIs(t, err, author.ErrEmailTaken)
	})

	t.Run("keeping own email is not a conflict", func(t *testing.T) {
		svc := newService()
		created := createAuthor(t, svc, "Self", "self@example.com")

		updated, err := svc.Update(ctx, created.ID, &author.UpdateAuthorRequest{
			Name:  ptr("Self Renamed"),
			Email: ptr("self@example.com"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Self Renamed", updated.Name)
	})

	t.Run("absent id is not found", func(t *testing.T) {
		svc := newService()
		_, err := svc.Update(ctx, uuid.New(), &author.UpdateAuthorRequest{Name: ptr("Ghost")})
		assert.ErrorIs(t, err, author.ErrAuthorNotFound)
	})
}

func TestAuthorServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("returns prior state", func(t *testing.T) {
		svc := newService()
		created := createAuthor(t, svc, "Short Lived", "short@example.com")

		deleted, err := svc.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, deleted.ID)
		assert.Equal(t, "Short Lived", deleted.Name)

		_, err = svc.Get(ctx, created.ID)
		assert.ErrorIs(t, err, author.ErrAuthorNotFound)
	})

	t.Run("absent id reports the id", func(t *testing.T) {
		svc := newService()
		missing := uuid.New()
		_, err := svc.Delete(ctx, missing)
		require.ErrorIs(t, err, author.ErrAuthorNotFound)
		assert.Contains(t, err.Error(), missing.String())
	})
}

func TestAuthorServiceList(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	names := []string{"test", "a", "TEST", "b", "Test"}
	for i, n := range names {
		createAuthor(t, svc, n, names[i]+"@example.com")
	}

	t.Run("filter is case-insensitive", func(t *testing.T) {
		result, err := svc.List(ctx, pagination.SearchParams{Filter: "TEST"})
		require.NoError(t, err)
		assert.Equal(t, 3, result.Total)
		for _, item := range result.Items {
			assert.Contains(t, []string{"test", "TEST", "Test"}, item.Name)
		}
	})

	t.Run("window metadata survives projection", func(t *testing.T) {
		result, err := svc.List(ctx, pagination.SearchParams{Page: 1, PerPage: 2, Sort: "name"})
		require.NoError(t, err)
		assert.Len(t, result.Items, 2)
		assert.Equal(t, 5, result.Total)
		assert.Equal(t, 3, result.LastPage)
		assert.Equal(t, 2, result.PerPage)
	})
}

// recordingRepository counts calls so tests can assert an operation
// failed before reaching the store.
type recordingRepository struct {
	inner author.Repository
	calls int
}

func (r *recordingRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	r.calls++
	return r.inner.Create(ctx, a)
}

func (r *recordingRepository) FindByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	r.calls++
	return r.inner.FindByID(ctx, id)
}

func (r *recordingRepository) FindByEmail(ctx context.Context, email string) (*author.Author, error) {
	r.calls++
	return r.inner.FindByEmail(ctx, email)
}

func (r *recordingRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	r.calls++
	return r.inner.Update(ctx, a)
}

func (r *recordingRepository) Delete(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	r.calls++
	return r.inner.Delete(ctx, id)
}

func (r *recordingRepository) Search(ctx context.Context, params pagination.SearchParams) (pagination.Result[author.Author], error) {
	r.calls++
	return r.inner.Search(ctx, params)
}
