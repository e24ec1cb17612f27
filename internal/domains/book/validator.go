package book

import "context"

// AuthorChecker is the slice of the author repository the book domain needs.
// Implemented by author.Repository.
type AuthorChecker interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// AuthorValidator enforces that a book's author_id resolves to a live
// author before the book is written. A missing author is reported as
// (false, nil); the caller decides the externally visible error.
type AuthorValidator struct {
	authors AuthorChecker
}

func NewAuthorValidator(authors AuthorChecker) *AuthorValidator {
	return &AuthorValidator{authors: authors}
}

func (v *AuthorValidator) AuthorExists(ctx context.Context, authorID int64) (bool, error) {
	return v.authors.ExistsByID(ctx, authorID)
}
