package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ander1code/cleanblog/internal/domains/author"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the author repository on the shared pool.
func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

const authorColumns = `id, user_id, name, email, occupation, description, picture_url`

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) error {
	query := `
        INSERT INTO author (id, user_id, name, email, occupation, description, picture_url)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `

	_, err := r.pool.Exec(ctx, query,
		a.ID,
		a.UserID,
		a.Name,
		a.Email,
		a.Occupation,
		a.Description,
		a.PictureURL,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			if strings.Contains(pgErr.ConstraintName, "email") {
				return author.ErrDuplicateEmail
			}
			return author.ErrDuplicateUser
		}
		return fmt.Errorf("failed to create author: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	query := `SELECT ` + authorColumns + ` FROM author WHERE id = $1`

	a, err := r.scanOne(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}
	return a, nil
}

func (r *postgresRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*author.Author, error) {
	query := `SELECT ` + authorColumns + ` FROM author WHERE user_id = $1`

	a, err := r.scanOne(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by user id: %w", err)
	}
	return a, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Owned posts go with the author via ON DELETE CASCADE.
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM author WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}

func (r *postgresRepository) scanOne(row pgx.Row) (*author.Author, error) {
	var a author.Author
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Name,
		&a.Email,
		&a.Occupation,
		&a.Description,
		&a.PictureURL,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
