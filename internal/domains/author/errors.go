package author

import "errors"

var (
	ErrAuthorNotFound = errors.New("author not found")
	ErrDuplicateEmail = errors.New("this email is already registered")
	ErrDuplicateUser  = errors.New("user already has an author profile")
)
