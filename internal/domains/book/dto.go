package book

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Field constraints
const (
	MaxTitleLength = 100
	MaxYear        = 2025
)

// CreateBookRequest - POST /books/
type CreateBookRequest struct {
	Title    string `json:"title"`
	Year     int    `json:"year"`
	AuthorID int64  `json:"author_id"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(&r.Year,
			validation.Min(0),
			validation.Max(MaxYear),
		),
		validation.Field(&r.AuthorID,
			validation.Required.Error("author_id is required"),
			validation.Min(1),
		),
	)
}

func (r *CreateBookRequest) ToEntity() *Book {
	return &Book{
		Title:    r.Title,
		Year:     r.Year,
		AuthorID: r.AuthorID,
	}
}

// UpdateBookRequest - PUT /books/:id (full replace)
type UpdateBookRequest struct {
	Title    string `json:"title"`
	Year     int    `json:"year"`
	AuthorID int64  `json:"author_id"`
}

func (r UpdateBookRequest) Validate() error {
	return CreateBookRequest(r).Validate()
}

func (r *UpdateBookRequest) ApplyToEntity(b *Book) {
	b.Title = r.Title
	b.Year = r.Year
	b.AuthorID = r.AuthorID
}

// UpdateBookPartialRequest - PATCH /books/:id
// Only non-nil fields are applied. When AuthorID is omitted the
// cross-entity check is skipped.
type UpdateBookPartialRequest struct {
	Title    *string `json:"title,omitempty"`
	Year     *int    `json:"year,omitempty"`
	AuthorID *int64  `json:"author_id,omitempty"`
}

func (r UpdateBookPartialRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, MaxTitleLength)),
		validation.Field(&r.Year, validation.Min(0), validation.Max(MaxYear)),
		validation.Field(&r.AuthorID, validation.Min(1)),
	)
}

func (r *UpdateBookPartialRequest) ApplyToEntity(b *Book) {
	if r.Title != nil {
		b.Title = *r.Title
	}
	if r.Year != nil {
		b.Year = *r.Year
	}
	if r.AuthorID != nil {
		b.AuthorID = *r.AuthorID
	}
}
