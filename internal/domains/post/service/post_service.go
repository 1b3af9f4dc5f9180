package service

import (
	"context"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/ander1code/cleanblog/internal/domains/author"
	"github.com/ander1code/cleanblog/internal/domains/flash"
	"github.com/ander1code/cleanblog/internal/domains/post"
	"github.com/ander1code/cleanblog/internal/validator"
	"github.com/ander1code/cleanblog/pkg/logger"
)

// PageSize is the fixed number of posts per listing page.
const PageSize = 5

const (
	msgCreated   = "Successfully created."
	msgCreateErr = "Error creating."
	msgEdited    = "Successfully edited."
	msgEditErr   = "Error editing."
	msgDeleted   = "Successfully deleted."
	msgDeleteErr = "Error deleting."
	msgNotOwner  = "You cannot edit or delete posts from this author."
)

type postService struct {
	posts      post.Repository
	authors    author.Repository
	categories validator.CategoryExister
	storage    post.PictureStorage
	flash      flash.Store
}

// NewPostService creates the post service with all its collaborators
// passed explicitly.
func NewPostService(
	posts post.Repository,
	authors author.Repository,
	categories validator.CategoryExister,
	storage post.PictureStorage,
	flashStore flash.Store,
) post.Service {
	return &postService{
		posts:      posts,
		authors:    authors,
		categories: categories,
		storage:    storage,
		flash:      flashStore,
	}
}

func (s *postService) List(ctx context.Context, search string, page int) (*post.PostPage, error) {
	search = strings.TrimSpace(search)
	if page < 1 {
		page = 1
	}

	items, total, err := s.posts.List(ctx, search, PageSize, (page-1)*PageSize)
	if err != nil {
		return nil, err
	}

	return &post.PostPage{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: PageSize,
		Search:   search,
	}, nil
}

func (s *postService) Get(ctx context.Context, id uuid.UUID) (*post.PostDetail, error) {
	return s.posts.GetByID(ctx, id)
}

func (s *postService) EditForm(ctx context.Context, sessionID string, userID, postID uuid.UUID) (*post.PostDetail, error) {
	return s.authorize(ctx, sessionID, userID, postID)
}

func (s *postService) Create(ctx context.Context, sessionID string, userID uuid.UUID, form *post.PostForm) (*post.MutationResult, error) {
	// Field validation runs before the author lookup: a rejected form is
	// always answered with field errors, whoever submitted it.
	fields, err := s.validateForm(ctx, form, true)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		return &post.MutationResult{FieldErrors: fields}, nil
	}

	a, err := s.authors.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	pictureURL, err := s.uploadPicture(ctx, form.Picture)
	if err != nil {
		logger.Error("post picture upload failed", err)
		s.notify(ctx, sessionID, msgCreateErr)
		return &post.MutationResult{}, nil
	}

	p := &post.Post{
		ID:         uuid.New(),
		AuthorID:   a.ID,
		CategoryID: form.CategoryID,
		Title:      form.Title,
		Briefing:   form.Briefing,
		Text:       form.Text,
		PictureURL: pictureURL,
	}

	if err := s.posts.Create(ctx, p); err != nil {
		logger.Error("post create failed", err)
		s.notify(ctx, sessionID, msgCreateErr)
		return &post.MutationResult{}, nil
	}

	s.notify(ctx, sessionID, msgCreated)
	return &post.MutationResult{Post: p, Saved: true}, nil
}

func (s *postService) Update(ctx context.Context, sessionID string, userID, postID uuid.UUID, form *post.PostForm) (*post.MutationResult, error) {
	existing, err := s.authorize(ctx, sessionID, userID, postID)
	if err != nil {
		return nil, err
	}

	fields, err := s.validateForm(ctx, form, false)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		return &post.MutationResult{
			FieldErrors: fields,
			AuthorName:  existing.AuthorName,
			PictureURL:  existing.PictureURL,
		}, nil
	}

	pictureURL := existing.PictureURL
	if form.Picture != nil {
		pictureURL, err = s.uploadPicture(ctx, form.Picture)
		if err != nil {
			logger.Error("post picture upload failed", err)
			s.notify(ctx, sessionID, msgEditErr)
			return &post.MutationResult{}, nil
		}
	}

	p := &post.Post{
		ID:         existing.ID,
		AuthorID:   existing.AuthorID,
		CategoryID: form.CategoryID,
		Title:      form.Title,
		Briefing:   form.Briefing,
		Text:       form.Text,
		PictureURL: pictureURL,
		CreatedAt:  existing.CreatedAt,
	}

	if err := s.posts.Update(ctx, p); err != nil {
		logger.Error("post update failed", err)
		s.notify(ctx, sessionID, msgEditErr)
		return &post.MutationResult{}, nil
	}

	s.notify(ctx, sessionID, msgEdited)
	return &post.MutationResult{Post: p, Saved: true}, nil
}

func (s *postService) Delete(ctx context.Context, sessionID string, userID, postID uuid.UUID) (*post.MutationResult, error) {
	if _, err := s.authorize(ctx, sessionID, userID, postID); err != nil {
		return nil, err
	}

	if err := s.posts.Delete(ctx, postID); err != nil {
		logger.Error("post delete failed", err)
		s.notify(ctx, sessionID, msgDeleteErr)
		return &post.MutationResult{}, nil
	}

	s.notify(ctx, sessionID, msgDeleted)
	return &post.MutationResult{Saved: true}, nil
}

// authorize loads the post and confirms the caller's author owns it. It is
// the single ownership gate for every mutation of an existing post.
func (s *postService) authorize(ctx context.Context, sessionID string, userID, postID uuid.UUID) (*post.PostDetail, error) {
	existing, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	a, err := s.authors.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if existing.AuthorID != a.ID {
		s.notify(ctx, sessionID, msgNotOwner)
		return nil, post.ErrNotOwner
	}

	return existing, nil
}

// validateForm collects all field errors instead of stopping at the first.
// The picture is required on create; an edit keeps the stored one when no
// new file is submitted.
func (s *postService) validateForm(ctx context.Context, form *post.PostForm, requirePicture bool) (map[string]string, error) {
	fields := make(map[string]string)

	if _, ferr := validator.String(form.Title, "title", 5, 45); ferr != nil {
		fields[ferr.Field] = ferr.Message
	}

	ferr, err := validator.Category(ctx, s.categories, form.CategoryID)
	if err != nil {
		return nil, err
	}
	if ferr != nil {
		fields[ferr.Field] = ferr.Message
	}

	if _, ferr := validator.String(form.Briefing, "briefing", 10, 100); ferr != nil {
		fields[ferr.Field] = ferr.Message
	}

	if _, ferr := validator.String(form.Text, "text", 100, 3000); ferr != nil {
		fields[ferr.Field] = ferr.Message
	}

	if requirePicture || form.Picture != nil {
		name := ""
		if form.Picture != nil {
			name = form.Picture.Filename
		}
		if _, ferr := validator.Picture(name); ferr != nil {
			fields[ferr.Field] = ferr.Message
		}
	}

	return fields, nil
}

func (s *postService) uploadPicture(ctx context.Context, pic *post.PictureUpload) (string, error) {
	key := "posts/" + uuid.New().String() + strings.ToLower(path.Ext(pic.Filename))
	return s.storage.Upload(ctx, key, pic.Data, pic.ContentType)
}

func (s *postService) notify(ctx context.Context, sessionID, message string) {
	if err := s.flash.Set(ctx, sessionID, message); err != nil {
		logger.Error("failed to queue notification", err)
	}
}
