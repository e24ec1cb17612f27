package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lilfrek386-a11y/library/internal/domains/author"
)

// postgresRepository implements author.Repository on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	query := `
        SELECT id, first_name, last_name, age, bio, email
        FROM authors
        WHERE id = $1
    `

	var a author.Author
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.FirstName,
		&a.LastName,
		&a.Age,
		&a.Bio,
		&a.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Absence is a normal value; the service decides what it means.
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]author.Author, error) {
	query := `
        SELECT id, first_name, last_name, age, bio, email
        FROM authors
        ORDER BY id ASC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	authors := []author.Author{}
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Age, &a.Bio, &a.Email); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO authors (first_name, last_name, age, bio, email)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, first_name, last_name, age, bio, email
    `

	var created author.Author
	err := r.pool.QueryRow(ctx, query, a.FirstName, a.LastName, a.Age, a.Bio, a.Email).Scan(
		&created.ID,
		&created.FirstName,
		&created.LastName,
		&created.Age,
		&created.Bio,
		&created.Email,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return nil, author.ErrConflict
		}
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        UPDATE authors
        SET first_name = $1, last_name = $2, age = $3, bio = $4, email = $5
        WHERE id = $6
        RETURNING id, first_name, last_name, age, bio, email
    `

	var updated author.Author
	err := r.pool.QueryRow(ctx, query, a.FirstName, a.LastName, a.Age, a.Bio, a.Email, a.ID).Scan(
		&updated.ID,
		&updated.FirstName,
		&updated.LastName,
		&updated.Age,
		&updated.Bio,
		&updated.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Row vanished between the service's fetch and this update.
			return nil, author.ErrConflict
		}
		if isConstraintViolation(err) {
			return nil, author.ErrConflict
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, a *author.Author) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, a.ID)
	if err != nil {
		if isConstraintViolation(err) {
			return author.ErrConflict
		}
		return fmt.Errorf("failed to delete author: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return author.ErrConflict
	}
	return nil
}

func (r *postgresRepository) DeleteAll(ctx context.Context) error {
	// CASCADE removes owned books; RESTART IDENTITY resets id sequencing.
	if _, err := r.pool.Exec(ctx, `TRUNCATE TABLE authors RESTART IDENTITY CASCADE`); err != nil {
		return fmt.Errorf("failed to delete all authors: %w", err)
	}
	return nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}
	return exists, nil
}

// isConstraintViolation reports unique (23505) and foreign key (23503)
// violations, both surfaced as conflicts.
func isConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" || pgErr.Code == "23503"
	}
	return false
}
