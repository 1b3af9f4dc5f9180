package post

import (
	"time"

	"github.com/google/uuid"
)

// Post is a published blog entry. UpdatedAt stays nil until the first edit
// and is always at or after CreatedAt once set.
type Post struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	AuthorID   uuid.UUID  `json:"author_id" db:"author_id"`
	CategoryID uuid.UUID  `json:"category_id" db:"category_id"`
	Title      string     `json:"title" db:"title"`
	Briefing   string     `json:"briefing" db:"briefing"`
	Text       string     `json:"text" db:"text"`
	PictureURL string     `json:"picture_url" db:"picture_url"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// PostDetail is a post joined with the display fields of its author and
// category.
type PostDetail struct {
	Post
	AuthorName    string `json:"author_name"`
	AuthorPicture string `json:"author_picture"`
	CategoryTitle string `json:"category_title"`
}

// PostPage is one page of the listing, newest first.
type PostPage struct {
	Items    []Post `json:"items"`
	Total    int64  `json:"total"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Search   string `json:"search,omitempty"`
}

// PictureUpload is the raw uploaded picture as received from the form.
type PictureUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// PostForm carries the submitted fields of the create and edit forms.
// Picture is nil when the form was submitted without a file.
type PostForm struct {
	Title      string
	CategoryID uuid.UUID
	Briefing   string
	Text       string
	Picture    *PictureUpload
}
