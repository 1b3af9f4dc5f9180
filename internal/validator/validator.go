// Package validator holds the stateless field validators shared by the
// login and post forms. Each function returns the accepted value unchanged,
// or a FieldError naming the offending field.
package validator

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// FieldError is a user-correctable validation failure on a single field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Username rejects blank values and values containing whitespace.
func Username(s string) (string, *FieldError) {
	if strings.TrimSpace(s) == "" {
		return "", &FieldError{Field: "username", Message: "Username is empty."}
	}
	if strings.ContainsAny(s, " \t\n\r") {
		return "", &FieldError{Field: "username", Message: "Username cannot contain space."}
	}
	return s, nil
}

// Password rejects blank values.
func Password(s string) (string, *FieldError) {
	if strings.TrimSpace(s) == "" {
		return "", &FieldError{Field: "password", Message: "Password is empty."}
	}
	return s, nil
}

// String checks a labelled text field. The blank check runs on the trimmed
// value; the length bounds apply to the raw value as submitted.
func String(s, label string, minLength, maxLength int) (string, *FieldError) {
	if strings.TrimSpace(s) == "" {
		return "", &FieldError{Field: label, Message: capitalize(label) + " is empty."}
	}
	if len(s) < minLength {
		return "", &FieldError{
			Field:   label,
			Message: fmt.Sprintf("%s must be at least %d characters long.", capitalize(label), minLength),
		}
	}
	if len(s) > maxLength {
		return "", &FieldError{
			Field:   label,
			Message: fmt.Sprintf("%s must not exceed %d characters.", capitalize(label), maxLength),
		}
	}
	return s, nil
}

// Picture rejects a missing picture reference.
func Picture(name string) (string, *FieldError) {
	if name == "" {
		return "", &FieldError{Field: "picture", Message: "Picture is empty."}
	}
	return name, nil
}

// CategoryExister is the storage lookup the category check depends on.
type CategoryExister interface {
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

// Category checks that the referenced category is present and exists.
// The error return is for storage failures, not validation outcomes.
func Category(ctx context.Context, store CategoryExister, id uuid.UUID) (*FieldError, error) {
	if id == uuid.Nil {
		return &FieldError{Field: "category", Message: "Category is empty"}, nil
	}

	exists, err := store.ExistsByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check category exists: %w", err)
	}
	if !exists {
		return &FieldError{Field: "category", Message: "Category does not exist."}, nil
	}
	return nil, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
