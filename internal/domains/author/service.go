package author

import "context"

// Service defines business operations for the author collection.
// Every mutating operation clears the cache namespaces that could hold
// stale data, after the store mutation committed.
type Service interface {
	GetByID(ctx context.Context, id int64) (*Author, error)
	GetAll(ctx context.Context) ([]Author, error)
	Create(ctx context.Context, req *CreateAuthorRequest) (*Author, error)
	Update(ctx context.Context, id int64, req *UpdateAuthorRequest) (*Author, error)
	UpdatePartial(ctx context.Context, id int64, req *UpdateAuthorPartialRequest) (*Author, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
}
