package user

import "errors"

// Repository-level errors
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameAlreadyExists = errors.New("username already exists")
)

// Service-level errors
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
)
