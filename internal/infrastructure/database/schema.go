package database

import (
	"context"
	"fmt"
)

// Schema DDL. Books carry a foreign key to authors with cascade delete,
// so removing an author removes their books at the store level.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS authors (
    id         BIGSERIAL PRIMARY KEY,
    first_name VARCHAR(32)  NOT NULL,
    last_name  VARCHAR(32)  NOT NULL,
    age        INTEGER      NOT NULL CHECK (age >= 0 AND age <= 135),
    bio        TEXT,
    email      VARCHAR(255) NOT NULL
);

CREATE TABLE IF NOT EXISTS books (
    id        BIGSERIAL PRIMARY KEY,
    title     VARCHAR(100) NOT NULL,
    year      INTEGER      NOT NULL CHECK (year >= 0),
    author_id BIGINT       NOT NULL REFERENCES authors(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_books_author_id ON books(author_id);
`

// EnsureSchema creates the catalog tables if they do not exist yet.
func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	if _, err := db.Pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
