package category

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for categories.
type Repository interface {
	Create(ctx context.Context, c *Category) error
	GetAll(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
