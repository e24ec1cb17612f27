package book

import "context"

// Repository defines data access for books.
// Same contract as the author repository: absence from a point lookup is a
// normal (nil, nil) return, translated by the service layer only.
type Repository interface {
	// GetByID returns the book or (nil, nil) if absent.
	GetByID(ctx context.Context, id int64) (*Book, error)

	// GetAll returns every book ordered by id ascending.
	GetAll(ctx context.Context) ([]Book, error)

	// Create inserts a new row and returns the persisted entity with its
	// assigned id.
	Create(ctx context.Context, b *Book) (*Book, error)

	// Update persists the (already merged) entity and returns the
	// refreshed row.
	Update(ctx context.Context, b *Book) (*Book, error)

	// Delete removes the row.
	Delete(ctx context.Context, b *Book) error

	// DeleteAll truncates the table and resets identity sequencing.
	DeleteAll(ctx context.Context) error
}
