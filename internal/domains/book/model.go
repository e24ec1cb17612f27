package book

// Book is the core Book entity. AuthorID must reference a live author at
// write time; the store's foreign key (cascade delete) is the backstop.
type Book struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Year     int    `json:"year"`
	AuthorID int64  `json:"author_id"`
}
