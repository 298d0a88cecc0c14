package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scorpaust/conex-blog/internal/domains/author"
	"github.com/scorpaust/conex-blog/internal/shared/pagination"
)

func seedAuthor(t *testing.T, repo author.Repository, name, email string) *author.Author {
	t.Helper()
	created, err := repo.Create(context.Background(), &author.Author{Name: name, Email: email})
	require.NoError(t, err)
	return created
}

func TestMemoryRepositoryCreate(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	t.Run("assigns id and created_at", func(t *testing.T) {
		created := seedAuthor(t, repo, "Grace Hopper", "grace@navy.mil")
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.False(t, created.CreatedAt.IsZero())
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		_, err := repo.Create(ctx, &author.Author{Name: "Impostor", Email: "grace@navy.mil"})
		assert.ErrorIs(t, err, author.ErrEmailTaken)
	})
}

func TestMemoryRepositoryFind(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	created := seedAuthor(t, repo, "Ada Lovelace", "ada@analytical.engine")

	t.Run("by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Email, found.Email)
	})

	t.Run("by id absent", func(t *testing.T) {
		missing := uuid.New()
		_, err := repo.FindByID(ctx, missing)
		require.ErrorIs(t, err, author.ErrAuthorNotFound)
		assert.Contains(t, err.Error(), missing.String())
	})

	t.Run("by email", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "ada@analytical.engine")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, created.ID, found.ID)
	})

	t.Run("by email absent is nil nil", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "nobody@nowhere.dev")
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestMemoryRepositoryUpdate(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	a := seedAuthor(t, repo, "Alan Turing", "alan@bletchley.park")
	b := seedAuthor(t, repo, "Joan Clarke", "joan@bletchley.park")

	t.Run("persists changes and keeps created_at", func(t *testing.T) {
		modified := *a
		modified.Name = "Alan M. Turing"
		modified.CreatedAt = time.Time{}

		updated, err := repo.Update(ctx, &modified)
		require.NoError(t, err)
		assert.Equal(t, "Alan M. Turing", updated.Name)
		assert.Equal(t, a.CreatedAt, updated.CreatedAt)
	})

	t.Run("rejects email owned by another author", func(t *testing.T) {
		modified := *b
		modified.Email = "alan@bletchley.park"
		_, err := repo.Update(ctx, &modified)
		assert.ErrorIs(t, err, author.ErrEmailTaken)
	})

	t.Run("absent id is not found", func(t *testing.T) {
		_, err := repo.Update(ctx, &author.Author{ID: uuid.New(), Name: "Ghost", Email: "ghost@void.dev"})
		assert.ErrorIs(t, err, author.ErrAuthorNotFound)
	})
}

func TestMemoryRepositoryDelete(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	created := seedAuthor(t, repo, "Temp Author", "temp@example.com")

	t.Run("returns prior state", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Name, deleted.Name)

		_, err = repo.FindByID(ctx, created.ID)
		assert.ErrorIs(t, err, author.ErrAuthorNotFound)
	})

	t.Run("second delete is not found", func(t *testing.T) {
		_, err := repo.Delete(ctx, created.ID)
		assert.ErrorIs(t, err, author.ErrAuthorNotFound)
	})
}

func TestMemoryRepositorySearch(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	for i := 0; i < 16; i++ {
		seedAuthor(t, repo, fmt.Sprintf("Author %02d", i), fmt.Sprintf("author%02d@example.com", i))
	}

	t.Run("defaults to fifteen per page", func(t *testing.T) {
		result, err := repo.Search(ctx, pagination.SearchParams{})
		require.NoError(t, err)
		assert.Len(t, result.Items, 15)
		assert.Equal(t, 16, result.Total)
		assert.Equal(t, 2, result.LastPage)
	})

	t.Run("filters on name", func(t *testing.T) {
		result, err := repo.Search(ctx, pagination.SearchParams{Filter: "author 0"})
		require.NoError(t, err)
		assert.Equal(t, 10, result.Total)
	})

	t.Run("sorts by name ascending", func(t *testing.T) {
		result, err := repo.Search(ctx, pagination.SearchParams{Sort: "name", PerPage: 3})
		require.NoError(t, err)
		require.Len(t, result.Items, 3)
		assert.Equal(t, "Author 00", result.Items[0].Name)
		assert.Equal(t, "Author 02", result.Items[2].Name)
	})

	t.Run("name sort folds case with stable ties", func(t *testing.T) {
		repo := NewMemoryRepository()
		for i, name := range []string{"test", "a", "TEST", "b", "Test"} {
			seedAuthor(t, repo, name, fmt.Sprintf("cased%d@example.com", i))
		}

		page1, err := repo.Search(ctx, pagination.SearchParams{
			Filter: "TEST", Sort: "name", SortDir: pagination.SortAsc, PerPage: 2,
		})
		require.NoError(t, err)
		require.Len(t, page1.Items, 2)
		assert.Equal(t, "test", page1.Items[0].Name)
		assert.Equal(t, "TEST", page1.Items[1].Name)
		assert.Equal(t, 3, page1.Total)
		assert.Equal(t, 2, page1.LastPage)

		page2, err := repo.Search(ctx, pagination.SearchParams{
			Filter: "TEST", Sort: "name", SortDir: pagination.SortAsc, PerPage: 2, Page: 2,
		})
		require.NoError(t, err)
		require.Len(t, page2.Items, 1)
		assert.Equal(t, "Test", page2.Items[0].Name)
	})

	t.Run("page past last is empty", func(t *testing.T) {
		result, err := repo.Search(ctx, pagination.SearchParams{Page: 99})
		require.NoError(t, err)
		assert.Empty(t, result.Items)
		assert.Equal(t, 16, result.Total)
	})
}
