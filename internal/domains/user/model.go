package user

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/ander1code/cleanblog/internal/validator"
)

// User is a login identity. Authors link to exactly one of these.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type UserDTO struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

func (u *User) ToDTO() UserDTO {
	return UserDTO{
		ID:       u.ID,
		Username: u.Username,
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks the credential shape only; authentication happens in the
// service. Failures come back as validation.Errors keyed by field.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("Username is empty."),
			validation.By(usernameRule),
		),
		validation.Field(&r.Password,
			validation.Required.Error("Password is empty."),
			validation.By(passwordRule),
		),
	)
}

func usernameRule(value interface{}) error {
	s, _ := value.(string)
	if _, ferr := validator.Username(s); ferr != nil {
		return errors.New(ferr.Message)
	}
	return nil
}

func passwordRule(value interface{}) error {
	s, _ := value.(string)
	if _, ferr := validator.Password(s); ferr != nil {
		return errors.New(ferr.Message)
	}
	return nil
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      UserDTO   `json:"user"`
}
