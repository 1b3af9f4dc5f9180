package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ander1code/cleanblog/internal/domains/category"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the category repository on the shared pool.
func NewPostgresRepository(pool *pgxpool.Pool) category.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, c *category.Category) error {
	query := `INSERT INTO category (id, title) VALUES ($1, $2)`

	_, err := r.pool.Exec(ctx, query, c.ID, c.Title)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return category.ErrDuplicateTitle
		}
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]category.Category, error) {
	query := `SELECT id, title FROM category ORDER BY title ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]category.Category, 0)
	for rows.Next() {
		var c category.Category
		if err := rows.Scan(&c.ID, &c.Title); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	query := `SELECT id, title FROM category WHERE id = $1`

	var c category.Category
	err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Title)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}

	return &c, nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM category WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check category existence: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Posts in the category go with it via ON DELETE CASCADE.
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM category WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}
	return nil
}
