package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ander1code/cleanblog/internal/domains/user"
	"github.com/ander1code/cleanblog/internal/shared/middleware"
	"github.com/ander1code/cleanblog/pkg/cache"
	"github.com/ander1code/cleanblog/pkg/jwt"
)

type userService struct {
	repo     user.Repository
	tokens   *jwt.Manager
	denylist cache.Cache
}

// NewUserService builds the auth service.
func NewUserService(repo user.Repository, tokens *jwt.Manager, denylist cache.Cache) user.Service {
	return &userService{
		repo:     repo,
		tokens:   tokens,
		denylist: denylist,
	}
}

// Login verifies credential shape and password, then issues a token carrying
// a fresh session id.
func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Do not reveal whether the username exists.
			return nil, user.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	sessionID := uuid.New().String()
	token, expiresAt, err := s.tokens.GenerateToken(u.ID.String(), u.Username, sessionID)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &user.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      u.ToDTO(),
	}, nil
}

// Logout denylists the session id so the token stops working immediately.
// The entry expires when the token would have, keeping the denylist small.
func (s *userService) Logout(ctx context.Context, sessionID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil // token already expired, nothing to revoke
	}

	if err := s.denylist.Set(ctx, middleware.DenylistKey(sessionID), true, ttl); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}
