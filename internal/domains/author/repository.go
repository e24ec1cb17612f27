package author

import "context"

// Repository defines data access for authors.
// Point lookups never fail for absence: GetByID returns (nil, nil) when no
// row matches, and the service layer is the only place that translates
// absence into ErrAuthorNotFound.
type Repository interface {
	// GetByID returns the author or (nil, nil) if absent.
	GetByID(ctx context.Context, id int64) (*Author, error)

	// GetAll returns every author ordered by id ascending.
	GetAll(ctx context.Context) ([]Author, error)

	// Create inserts a new row and returns the persisted entity with its
	// assigned id.
	Create(ctx context.Context, a *Author) (*Author, error)

	// Update persists the (already merged) entity and returns the
	// refreshed row.
	Update(ctx context.Context, a *Author) (*Author, error)

	// Delete removes the row. Cascade deletion of owned books is delegated
	// to the store's foreign-key policy.
	Delete(ctx context.Context, a *Author) error

	// DeleteAll truncates the table and resets identity sequencing.
	DeleteAll(ctx context.Context) error

	// ExistsByID checks existence without fetching the row. Used by the
	// book domain's cross-entity validator.
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
