package author

// Author is the core Author entity.
// Identity is assigned by the store and immutable afterwards.
type Author struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Age       int     `json:"age"`
	Bio       *string `json:"bio"`
	Email     string  `json:"email"`
}
