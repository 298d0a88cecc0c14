package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/scorpaust/conex-blog/internal/domains/author"
	"github.com/scorpaust/conex-blog/internal/shared/pagination"
)

// authorService implements author.Service. All state lives in the
// injected repository; the service only sequences calls and checks
// business invariants.
type authorService struct {
	repo author.Repository
}

func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) List(ctx context.Context, params pagination.SearchParams) (pagination.Result[author.AuthorResponse], error) {
	result, err := s.repo.Search(ctx, params)
	if err != nil {
		return pagination.Result[author.AuthorResponse]{}, err
	}

	return pagination.Map(result, author.Author.ToResponse), nil
}

func (s *authorService) Get(ctx context.Context, id uuid.UUID) (*author.AuthorResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := a.ToResponse()
	return &resp, nil
}

func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.AuthorResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)

	if name == "" || email == "" {
		return nil, author.ErrInputNotProvided
	}

	// Fast-path uniqueness check for a distinguishable business error.
	// Concurrent creates can still race past it; the storage unique
	// constraint remains the backstop.
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, author.ErrEmailTaken
	}

	created, err := s.repo.Create(ctx, &author.Author{Name: name, Email: email})
	if err != nil {
		return nil, err
	}

	resp := created.ToResponse()
	return &resp, nil
}

func (s *authorService) Update(ctx context.Context, id uuid.UUID, req *author.UpdateAuthorRequest) (*author.AuthorResponse, error) {
	if id == uuid.Nil {
		return nil, author.ErrIDNotProvided
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Partial update by omission: nil fields are no-ops. Values are
	// trimmed the same way Create trims them.
	updated := *current

	if req.Email != nil {
		if email := strings.TrimSpace(*req.Email); email != "" {
			owner, err := s.repo.FindByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if owner != nil && owner.ID != id {
				return nil, author.ErrEmailTaken
			}
			updated.Email = email
		}
	}

	if req.Name != nil {
		if name := strings.TrimSpace(*req.Name); name != "" {
			updated.Name = name
		}
	}

	result, err := s.repo.Update(ctx, &updated)
	if err != nil {
		return nil, err
	}

	resp := result.ToResponse()
	return &resp, nil
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) (*author.AuthorResponse, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := deleted.ToResponse()
	return &resp, nil
}
