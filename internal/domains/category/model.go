package category

import "github.com/google/uuid"

// Category labels a post. Titles are unique across the blog.
type Category struct {
	ID    uuid.UUID `json:"id" db:"id"`
	Title string    `json:"title" db:"title"`
}

type CreateCategoryRequest struct {
	Title string `json:"title"`
}
