package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/lilfrek386-a11y/library/internal/config"
	"github.com/lilfrek386-a11y/library/internal/domains/book"
	"github.com/lilfrek386-a11y/library/pkg/cache"
)

// bookService implements book.Service.
// Book writes run the cross-entity validator first: author_id must resolve
// to a live author on create (always) and on update (only when the payload
// carries it).
type bookService struct {
	repo        book.Repository
	validator   *book.AuthorValidator
	invalidator *cache.Invalidator
	namespaces  config.NamespaceConfig
}

func NewBookService(repo book.Repository, validator *book.AuthorValidator, invalidator *cache.Invalidator, namespaces config.NamespaceConfig) book.Service {
	return &bookService{
		repo:        repo,
		validator:   validator,
		invalidator: invalidator,
		namespaces:  namespaces,
	}
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*book.Book, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, book.ErrBookNotFound
	}
	return b, nil
}

func (s *bookService) GetAll(ctx context.Context) ([]book.Book, error) {
	return s.repo.GetAll(ctx)
}

func (s *bookService) Create(ctx context.Context, req *book.CreateBookRequest) (*book.Book, error) {
	log.Info().Str("title", req.Title).Int64("author_id", req.AuthorID).Msg("Creating book")

	if err := s.checkAuthor(ctx, req.AuthorID); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return nil, err
	}

	s.invalidator.ClearNamespace(ctx, s.namespaces.BooksList)

	return created, nil
}

func (s *bookService) Update(ctx context.Context, id int64, req *book.UpdateBookRequest) (*book.Book, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkAuthor(ctx, req.AuthorID); err != nil {
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

func (s *bookService) UpdatePartial(ctx context.Context, id int64, req *book.UpdateBookPartialRequest) (*book.Book, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Partial updates that omit author_id skip the cross-entity check.
	if req.AuthorID != nil {
		if err := s.checkAuthor(ctx, *req.AuthorID); err != nil {
			return nil, err
		}
	}

	req.ApplyToEntity(current)

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return nil, err
	}

	s.invalidateEntity(ctx, id)
	return updated, nil
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	log.Info().Int64("book_id", id).Msg("Deleting book")

	current, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, current); err != nil {
		return err
	}

	s.invalidateEntity(ctx, id)
	return nil
}

func (s *bookService) DeleteAll(ctx context.Context) error {
	log.Info().Msg("Deleting all books")

	if err := s.repo.DeleteAll(ctx); err != nil {
		return err
	}

	s.invalidator.ClearNamespaces(ctx, s.namespaces.BooksList, s.namespaces.Book)
	return nil
}

func (s *bookService) checkAuthor(ctx context.Context, authorID int64) error {
	exists, err := s.validator.AuthorExists(ctx, authorID)
	if err != nil {
		return fmt.Errorf("failed to check author existence: %w", err)
	}
	if !exists {
		return book.ErrAuthorRefNotFound
	}
	return nil
}

func (s *bookService) invalidateEntity(ctx context.Context, id int64) {
	s.invalidator.ClearNamespaces(ctx,
		s.namespaces.BooksList,
		fmt.Sprintf("%s:%d", s.namespaces.Book, id),
	)
}
