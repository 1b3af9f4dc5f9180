package user

import (
	"context"
	"time"
)

// Service handles authentication.
type Service interface {
	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)

	// Logout revokes a login session until its token would have expired.
	Logout(ctx context.Context, sessionID string, expiresAt time.Time) error
}
