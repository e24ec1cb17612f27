package author

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Field constraints
const (
	MaxNameLength = 32
	MaxBioLength  = 1000
	MaxAge        = 135
)

// CreateAuthorRequest - POST /authors/
type CreateAuthorRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Age       int     `json:"age"`
	Bio       *string `json:"bio,omitempty"`
	Email     string  `json:"email"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName,
			validation.Required.Error("first name is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.LastName,
			validation.Required.Error("last name is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.Age,
			validation.Min(0),
			validation.Max(MaxAge),
		),
		validation.Field(&r.Bio,
			validation.Length(0, MaxBioLength),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
	)
}

// ToEntity converts the request to an Author entity.
func (r *CreateAuthorRequest) ToEntity() *Author {
	return &Author{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Age:       r.Age,
		Bio:       r.Bio,
		Email:     r.Email,
	}
}

// UpdateAuthorRequest - PUT /authors/:id (full replace, every field supplied)
type UpdateAuthorRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Age       int     `json:"age"`
	Bio       *string `json:"bio,omitempty"`
	Email     string  `json:"email"`
}

func (r UpdateAuthorRequest) Validate() error {
	return CreateAuthorRequest(r).Validate()
}

// ApplyToEntity replaces every field of the entity.
func (r *UpdateAuthorRequest) ApplyToEntity(a *Author) {
	a.FirstName = r.FirstName
	a.LastName = r.LastName
	a.Age = r.Age
	a.Bio = r.Bio
	a.Email = r.Email
}

// UpdateAuthorPartialRequest - PATCH /authors/:id
// Only non-nil fields are applied; omitted fields keep their prior value.
type UpdateAuthorPartialRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Age       *int    `json:"age,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	Email     *string `json:"email,omitempty"`
}

func (r UpdateAuthorPartialRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.NilOrNotEmpty, validation.Length(1, MaxNameLength)),
		validation.Field(&r.LastName, validation.NilOrNotEmpty, validation.Length(1, MaxNameLength)),
		validation.Field(&r.Age, validation.Min(0), validation.Max(MaxAge)),
		validation.Field(&r.Bio, validation.Length(0, MaxBioLength)),
		validation.Field(&r.Email, validation.NilOrNotEmpty, is.Email.Error("invalid email format")),
	)
}

// ApplyToEntity applies only the supplied fields.
func (r *UpdateAuthorPartialRequest) ApplyToEntity(a *Author) {
	if r.FirstName != nil {
		a.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		a.LastName = *r.LastName
	}
	if r.Age != nil {
		a.Age = *r.Age
	}
	if r.Bio != nil {
		a.Bio = r.Bio
	}
	if r.Email != nil {
		a.Email = *r.Email
	}
}
