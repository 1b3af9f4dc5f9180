package category

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrDuplicateTitle   = errors.New("a category with this title already exists")
)
