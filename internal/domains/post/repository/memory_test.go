package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scorpaust/conex-blog/internal/domains/post"
	"github.com/scorpaust/conex-blog/internal/shared/pagination"
)

func seedPost(t *testing.T, repo post.Repository, title, slug string) *post.Post {
	t.Helper()
	created, err := repo.Create(context.Background(), &post.Post{
		Title:    title,
		Content:  "content",
		Slug:     slug,
		AuthorID: uuid.New(),
	})
	require.NoError(t, err)
	return created
}

func TestMemoryRepositoryCreate(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created := seedPost(t, repo, "First Post", "first-post")
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.Published)

	_, err := repo.Create(ctx, &post.Post{Title: "Other", Slug: "first-post", AuthorID: uuid.New()})
	assert.ErrorIs(t, err, post.ErrSlugTaken)
}

func TestMemoryRepositoryFindBySlug(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	created := seedPost(t, repo, "Findable", "findable")

	found, err := repo.FindBySlug(ctx, "findable")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	absent, err := repo.FindBySlug(ctx, "no-such-slug")
	assert.NoError(t, err)
	assert.Nil(t, absent)
}

func TestMemoryRepositoryUpdate(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	created := seedPost(t, repo, "Draft", "draft")

	modified := *created
	modified.Published = true

	updated, err := repo.Update(ctx, &modified)
	require.NoError(t, err)
	assert.True(t, updated.Published)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, created.AuthorID, updated.AuthorID)

	_, err = repo.Update(ctx, &post.Post{ID: uuid.New(), Title: "Ghost", Slug: "ghost"})
	assert.ErrorIs(t, err, post.ErrPostNotFound)
}

func TestMemoryRepositoryDelete(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	created := seedPost(t, repo, "Doomed", "doomed")

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Doomed", deleted.Title)

	_, err = repo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, post.ErrPostNotFound)

	missing := uuid.New()
	_, err = repo.Delete(ctx, missing)
	require.ErrorIs(t, err, post.ErrPostNotFound)
	assert.Contains(t, err.Error(), missing.String())
}

func TestMemoryRepositorySearch(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		seedPost(t, repo, fmt.Sprintf("Post %d", i), fmt.Sprintf("post-%d", i))
	}

	result, err := repo.Search(ctx, pagination.SearchParams{Sort: "title", PerPage: 3})
	require.NoError(t, err)
	require.Len(t, result.Items, 3)
	assert.Equal(t, "Post 0", result.Items[0].Title)
	assert.Equal(t, 4, result.Total)
	assert.Equal(t, 2, result.LastPage)
}
