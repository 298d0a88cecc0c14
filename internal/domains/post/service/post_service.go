package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/scorpaust/conex-blog/internal/domains/author"
	"github.com/scorpaust/conex-blog/internal/domains/post"
	"github.com/scorpaust/conex-blog/internal/shared/pagination"
	"github.com/scorpaust/conex-blog/internal/shared/utils"
)

// postService implements post.Service. The author repository is the
// collaborator for the foreign-key check and author resolution.
type postService struct {
	repo    post.Repository
	authors author.Repository
}

func NewPostService(repo post.Repository, authors author.Repository) post.Service {
	return &postService{
		repo:    repo,
		authors: authors,
	}
}

func (s *postService) Get(ctx context.Context, id uuid.UUID) (*post.PostResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := p.ToResponse()
	return &resp, nil
}

func (s *postService) GetBySlug(ctx context.Context, slug string) (*post.PostResponse, error) {
	p, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, post.NotFoundBySlug(slug)
	}

	resp := p.ToResponse()
	return &resp, nil
}

func (s *postService) GetWithAuthor(ctx context.Context, id uuid.UUID) (*post.PostDetailResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// On-demand lookup, not a join. An author deleted after post
	// creation surfaces as not found; the system does not self-heal
	// the inconsistency.
	a, err := s.authors.FindByID(ctx, p.AuthorID)
	if err != nil {
		return nil, err
	}

	authorResp := a.ToResponse()
	return &post.PostDetailResponse{
		PostResponse: p.ToResponse(),
		Author:       &authorResp,
	}, nil
}

func (s *postService) List(ctx context.Context, params pagination.SearchParams) (pagination.Result[post.PostResponse], error) {
	result, err := s.repo.Search(ctx, params)
	if err != nil {
		return pagination.Result[post.PostResponse]{}, err
	}

	return pagination.Map(result, post.Post.ToResponse), nil
}

func (s *postService) Create(ctx context.Context, req *post.CreatePostRequest) (*post.PostResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, post.ErrInputNotProvided
	}

	authorID, err := uuid.Parse(req.AuthorID)
	if err != nil || authorID == uuid.Nil {
		return nil, post.ErrInputNotProvided
	}

	// Foreign-key integrity check; a missing author propagates its
	// identifier-bearing not-found error.
	if _, err := s.authors.FindByID(ctx, authorID); err != nil {
		return nil, err
	}

	slug := utils.GenerateSlug(title)
	existing, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, post.ErrSlugTaken
	}

	created, err := s.repo.Create(ctx, &post.Post{
		Title:     title,
		Content:   req.Content,
		Slug:      slug,
		Published: false,
		AuthorID:  authorID,
	})
	if err != nil {
		return nil, err
	}

	resp := created.ToResponse()
	return &resp, nil
}

func (s *postService) Publish(ctx context.Context, id uuid.UUID) (*post.PostResponse, error) {
	return s.setPublished(ctx, id, true)
}

func (s *postService) Unpublish(ctx context.Context, id uuid.UUID) (*post.PostResponse, error) {
	return s.setPublished(ctx, id, false)
}

// setPublished writes the flag unconditionally, which makes both
// transitions idempotent.
func (s *postService) setPublished(ctx context.Context, id uuid.UUID, published bool) (*post.PostResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Published = published

	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}

	resp := updated.ToResponse()
	return &resp, nil
}
