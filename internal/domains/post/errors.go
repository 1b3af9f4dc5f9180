package post

import "errors"

var (
	ErrPostNotFound = errors.New("post not found")

	// ErrNotOwner means the requesting author does not own the post.
	ErrNotOwner = errors.New("post belongs to another author")
)
