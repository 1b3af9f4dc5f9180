package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for author profiles.
type Repository interface {
	Create(ctx context.Context, a *Author) error
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// GetByUserID resolves a login identity to its author profile.
	// Every post mutation goes through this lookup.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Author, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
