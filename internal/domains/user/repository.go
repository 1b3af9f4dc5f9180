package user

import "context"

// Repository is the data access contract for login identities.
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByUsername(ctx context.Context, username string) (*User, error)
}
