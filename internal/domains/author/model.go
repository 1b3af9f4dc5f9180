package author

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// Author is a content-creator profile linked 1:1 to a login identity.
// Deleting an author cascades to their posts at the storage level.
type Author struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	Email       string    `json:"email" db:"email"`
	Occupation  string    `json:"occupation" db:"occupation"`
	Description string    `json:"description" db:"description"`
	PictureURL  string    `json:"picture_url" db:"picture_url"`
}

// Validate enforces the profile field rules before persisting.
func (a Author) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.UserID, validation.Required.Error("A user is required to create an author.")),
		validation.Field(&a.Name,
			validation.Required.Error("Please enter the author's name."),
			validation.Length(4, 45).Error("Name must be between 4 and 45 characters long."),
		),
		validation.Field(&a.Email,
			validation.Required.Error("Please enter the author's email."),
			is.Email.Error("Please enter a valid email."),
			validation.Length(0, 45).Error("Email cannot exceed 45 characters."),
		),
		validation.Field(&a.Occupation,
			validation.Required.Error("Please provide the author's occupation."),
			validation.Length(4, 45).Error("Occupation must be between 4 and 45 characters long."),
		),
		validation.Field(&a.Description,
			validation.Required.Error("Please provide a description for the author."),
			validation.Length(10, 300).Error("Description must be between 10 and 300 characters long."),
		),
		validation.Field(&a.PictureURL,
			validation.Required.Error("Please upload a picture for the author."),
		),
	)
}

type AuthorResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Occupation  string    `json:"occupation"`
	Description string    `json:"description"`
	PictureURL  string    `json:"picture_url"`
}

func (a *Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		Occupation:  a.Occupation,
		Description: a.Description,
		PictureURL:  a.PictureURL,
	}
}
