package post

import (
	"context"

	"github.com/google/uuid"
)

// PictureStorage uploads post pictures and returns their public URL.
type PictureStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// MutationResult reports the outcome of a create, edit or delete. A
// notification for the session has already been queued by the time the
// caller sees it; FieldErrors is non-nil only when validation rejected the
// form, in which case nothing was persisted and no notification was queued.
// On a rejected edit, AuthorName and PictureURL carry the stored post's
// display fields so the form can be redrawn.
type MutationResult struct {
	Post        *Post             `json:"post,omitempty"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
	AuthorName  string            `json:"author_name,omitempty"`
	PictureURL  string            `json:"picture_url,omitempty"`
	Saved       bool              `json:"saved"`
}

// Service exposes the post operations. Mutations take the caller's session
// id for notifications and user id for the ownership check.
type Service interface {
	List(ctx context.Context, search string, page int) (*PostPage, error)
	Get(ctx context.Context, id uuid.UUID) (*PostDetail, error)

	// EditForm loads a post for editing, applying the same ownership gate
	// as the mutations.
	EditForm(ctx context.Context, sessionID string, userID, postID uuid.UUID) (*PostDetail, error)

	Create(ctx context.Context, sessionID string, userID uuid.UUID, form *PostForm) (*MutationResult, error)
	Update(ctx context.Context, sessionID string, userID, postID uuid.UUID, form *PostForm) (*MutationResult, error)
	Delete(ctx context.Context, sessionID string, userID, postID uuid.UUID) (*MutationResult, error)
}
