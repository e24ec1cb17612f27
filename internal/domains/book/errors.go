package book

import (
	"errors"
	"net/http"
)

var (
	// ErrBookNotFound - requested book id does not exist
	ErrBookNotFound = errors.New("book not found")

	// ErrAuthorRefNotFound - the referenced author_id does not resolve to
	// a live author. Surfaced as 404 on both create and update.
	ErrAuthorRefNotFound = errors.New("referenced author not found")

	// ErrConflict - underlying store constraint violation
	ErrConflict = errors.New("conflict: constraint violation")
)

// ToErrorCode converts a domain error to an API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return "BOOK_NOT_FOUND"
	case errors.Is(err, ErrAuthorRefNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrConflict):
		return "CONFLICT"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts a domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound), errors.Is(err, ErrAuthorRefNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
