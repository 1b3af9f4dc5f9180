package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ander1code/cleanblog/internal/domains/post"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// escapeLikeTerm neutralizes LIKE metacharacters so the search is a literal
// substring match. "100%" must match "100%" in a title, not "100".
func escapeLikeTerm(s string) string {
	return strings.NewReplacer(
		`\`, `\\`,
		`%`, `\%`,
		`_`, `\_`,
	).Replace(s)
}

// NewPostgresRepository creates the post repository on the shared pool.
func NewPostgresRepository(pool *pgxpool.Pool) post.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context, search string, limit, offset int) ([]post.Post, int64, error) {
	search = escapeLikeTerm(search)

	countQuery := `
        SELECT COUNT(*)
        FROM post
        WHERE $1 = '' OR title ILIKE '%' || $1 || '%' ESCAPE '\'
    `

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, search).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	query := `
        SELECT id, author_id, category_id, title, briefing, text, picture_url, created_at, updated_at
        FROM post
        WHERE $1 = '' OR title ILIKE '%' || $1 || '%' ESCAPE '\'
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `

	rows, err := r.pool.Query(ctx, query, search, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]post.Post, 0, limit)
	for rows.Next() {
		var p post.Post
		err := rows.Scan(
			&p.ID,
			&p.AuthorID,
			&p.CategoryID,
			&p.Title,
			&p.Briefing,
			&p.Text,
			&p.PictureURL,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*post.PostDetail, error) {
	query := `
        SELECT p.id, p.author_id, p.category_id, p.title, p.briefing, p.text,
               p.picture_url, p.created_at, p.updated_at,
               a.name, a.picture_url, c.title
        FROM post p
        JOIN author a ON a.id = p.author_id
        JOIN category c ON c.id = p.category_id
        WHERE p.id = $1
    `

	var d post.PostDetail
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&d.ID,
		&d.AuthorID,
		&d.CategoryID,
		&d.Title,
		&d.Briefing,
		&d.Text,
		&d.PictureURL,
		&d.CreatedAt,
		&d.UpdatedAt,
		&d.AuthorName,
		&d.AuthorPicture,
		&d.CategoryTitle,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return &d, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *post.Post) error {
	query := `
        INSERT INTO post (id, author_id, category_id, title, briefing, text, picture_url)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at
    `

	err := r.pool.QueryRow(ctx, query,
		p.ID,
		p.AuthorID,
		p.CategoryID,
		p.Title,
		p.Briefing,
		p.Text,
		p.PictureURL,
	).Scan(&p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

func (r *postgresRepository) Update(ctx context.Context, p *post.Post) error {
	query := `
        UPDATE post
        SET category_id = $2, title = $3, briefing = $4, text = $5,
            picture_url = $6, updated_at = NOW()
        WHERE id = $1
        RETURNING updated_at
    `

	err := r.pool.QueryRow(ctx, query,
		p.ID,
		p.CategoryID,
		p.Title,
		p.Briefing,
		p.Text,
		p.PictureURL,
	).Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return post.ErrPostNotFound
		}
		return fmt.Errorf("failed to update post: %w", err)
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM post WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}
	return nil
}
