package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/lilfrek386-a11y/library/internal/config"
	"github.com/lilfrek386-a11y/library/internal/domains/author"
	"github.com/lilfrek386-a11y/library/pkg/cache"
)

// authorService implements author.Service.
// Orchestration per operation: resolve -> repository -> invalidate -> map.
// Not-found translation happens only here; the repository reports absence
// as a plain nil.
type authorService struct {
	repo        author.Repository
	invalidator *cache.Invalidator
	namespaces  config.NamespaceConfig
}

func NewAuthorService(repo author.Repository, invalidator *cache.Invalidator, namespaces config.NamespaceConfig) author.Service {
	return &authorService{
		repo:        repo,
		invalidator: invalidator,
		namespaces:  namespaces,
	}
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, author.ErrAuthorNotFound
	}
	return a, nil
}

func (s *authorService) GetAll(ctx context.Context) ([]author.Author, error) {
	return s.repo.GetAll(ctx)
}

func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	log.Info().Str("first_name", req.FirstName).Msg("Creating author")

	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return nil, err
	}

	// No single-entity entry can exist for an id that did not exist yet,
	// so only the list namespace needs clearing.
	s.invalidator.ClearNamespace(ctx, s.namespaces.AuthorsList)

	return created, nil
}

func (s *authorService) Update(ctx context.Context, id int64, req *author.UpdateAuthorRequest) (*author.Author, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyToEntity(current)

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return nil, err
	}

	s.invalidateEntity(ctx, id)
	return updated, nil
}

func (s *authorService) UpdatePartial(ctx context.Context, id int64, req *author.UpdateAuthorPartialRequest) (*author.Author, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyToEntity(current)

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return nil, err
	}

	s.invalidateEntity(ctx, id)
	return updated, nil
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	log.Info().Int64("author_id", id).Msg("Deleting author")

	current, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, current); err != nil {
		return err
	}

	s.invalidateEntity(ctx, id)

	// The cascade removed this author's books as well; their ids are not
	// known here, so the whole book namespace goes.
	s.invalidator.ClearNamespaces(ctx, s.namespaces.BooksList, s.namespaces.Book)
	return nil
}

func (s *authorService) DeleteAll(ctx context.Context) error {
	log.Info().Msg("Deleting all authors")

	if err := s.repo.DeleteAll(ctx); err != nil {
		return err
	}

	// The wildcard clears every per-id entry too, so no single-entity read
	// can serve a truncated row for the rest of its TTL. The truncate
	// cascades into books, so their namespaces go as well.
	s.invalidator.ClearNamespaces(ctx,
		s.namespaces.AuthorsList,
		s.namespaces.Author,
		s.namespaces.BooksList,
		s.namespaces.Book,
	)
	return nil
}

// invalidateEntity clears the list namespace and the entry namespace scoped
// to one id, after a committed mutation.
func (s *authorService) invalidateEntity(ctx context.Context, id int64) {
	s.invalidator.ClearNamespaces(ctx,
		s.namespaces.AuthorsList,
		fmt.Sprintf("%s:%d", s.namespaces.Author, id),
	)
}
