package category

import (
	"context"

	"github.com/google/uuid"
)

// Service exposes category management operations.
type Service interface {
	Create(ctx context.Context, req *CreateCategoryRequest) (*Category, error)
	List(ctx context.Context) ([]Category, error)
	Get(ctx context.Context, id uuid.UUID) (*Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
