package book

import "context"

// Service defines business operations for the book collection.
type Service interface {
	GetByID(ctx context.Context, id int64) (*Book, error)
	GetAll(ctx context.Context) ([]Book, error)
	Create(ctx context.Context, req *CreateBookRequest) (*Book, error)
	Update(ctx context.Context, id int64, req *UpdateBookRequest) (*Book, error)
	UpdatePartial(ctx context.Context, id int64, req *UpdateBookPartialRequest) (*Book, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
}
