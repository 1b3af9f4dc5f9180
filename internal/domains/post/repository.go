package post

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for posts.
type Repository interface {
	// List returns one page ordered by created_at descending, plus the total
	// match count. A non-empty search filters on title, case-insensitive
	// substring match.
	List(ctx context.Context, search string, limit, offset int) ([]Post, int64, error)

	GetByID(ctx context.Context, id uuid.UUID) (*PostDetail, error)
	Create(ctx context.Context, p *Post) error

	// Update rewrites the editable fields and stamps updated_at server-side.
	Update(ctx context.Context, p *Post) error

	Delete(ctx context.Context, id uuid.UUID) error
}
