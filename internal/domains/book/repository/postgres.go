package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lilfrek386-a11y/library/internal/domains/book"
)

// postgresRepository implements book.Repository on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*book.Book, error) {
	query := `
        SELECT id, title, year, author_id
        FROM books
        WHERE id = $1
    `

	var b book.Book
	err := r.pool.QueryRow(ctx, query, id).Scan(&b.ID, &b.Title, &b.Year, &b.AuthorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	return &b, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]book.Book, error) {
	query := `
        SELECT id, title, year, author_id
        FROM books
        ORDER BY id ASC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	books := []book.Book{}
	for rows.Next() {
		var b book.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Year, &b.AuthorID); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
        INSERT INTO books (title, year, author_id)
        VALUES ($1, $2, $3)
        RETURNING id, title, year, author_id
    `

	var created book.Book
	err := r.pool.QueryRow(ctx, query, b.Title, b.Year, b.AuthorID).Scan(
		&created.ID,
		&created.Title,
		&created.Year,
		&created.AuthorID,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return nil, book.ErrConflict
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
        UPDATE books
        SET title = $1, year = $2, author_id = $3
        WHERE id = $4
        RETURNING id, title, year, author_id
    `

	var updated book.Book
	err := r.pool.QueryRow(ctx, query, b.Title, b.Year, b.AuthorID, b.ID).Scan(
		&updated.ID,
		&updated.Title,
		&updated.Year,
		&updated.AuthorID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrConflict
		}
		if isConstraintViolation(err) {
			return nil, book.ErrConflict
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, b *book.Book) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, b.ID)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return book.ErrConflict
	}
	return nil
}

func (r *postgresRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `TRUNCATE TABLE books RESTART IDENTITY`); err != nil {
		return fmt.Errorf("failed to delete all books: %w", err)
	}
	return nil
}

func isConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" || pgErr.Code == "23503"
	}
	return false
}
