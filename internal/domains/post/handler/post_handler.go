package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ander1code/cleanblog/internal/domains/author"
	"github.com/ander1code/cleanblog/internal/domains/category"
	"github.com/ander1code/cleanblog/internal/domains/post"
	"github.com/ander1code/cleanblog/internal/shared/middleware"
	"github.com/ander1code/cleanblog/internal/shared/response"
	"github.com/ander1code/cleanblog/pkg/logger"
)

const postListPath = "/api/v1/posts"

type PostHandler struct {
	service    post.Service
	categories category.Service
}

func NewPostHandler(service post.Service, categories category.Service) *PostHandler {
	return &PostHandler{service: service, categories: categories}
}

// List - GET /api/v1/posts?search=&page=
func (h *PostHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result, err := h.service.List(c.Request.Context(), c.Query("search"), page)
	if err != nil {
		logger.Error("list posts failed", err)
		response.InternalServerError(c, "Failed to list posts")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, result, &response.Meta{
		Page:  result.Page,
		Limit: result.PageSize,
		Total: result.Total,
	})
}

// Get - GET /api/v1/posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	detail, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			response.NotFound(c, "Post not found")
			return
		}
		logger.Error("get post failed", err)
		response.InternalServerError(c, "Failed to get post")
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// NewForm - GET /api/v1/posts/new
//
// Returns the data the create form needs, currently the category choices.
func (h *PostHandler) NewForm(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		logger.Error("list categories failed", err)
		response.InternalServerError(c, "Failed to load form")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"categories": categories})
}

// EditForm - GET /api/v1/posts/:id/edit
func (h *PostHandler) EditForm(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}
	sessionID, userID, ok := callerIdentity(c)
	if !ok {
		return
	}

	detail, err := h.service.EditForm(c.Request.Context(), sessionID, userID, postID)
	if err != nil {
		h.mutationError(c, err, "load post for editing")
		return
	}

	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		logger.Error("list categories failed", err)
		response.InternalServerError(c, "Failed to load form")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"post":       detail,
		"categories": categories,
	})
}

// Create - POST /api/v1/posts (multipart form)
func (h *PostHandler) Create(c *gin.Context) {
	sessionID, userID, ok := callerIdentity(c)
	if !ok {
		return
	}

	form, ferr := bindPostForm(c)
	if ferr != nil {
		response.ValidationFailed(c, ferr, nil)
		return
	}

	result, err := h.service.Create(c.Request.Context(), sessionID, userID, form)
	if err != nil {
		h.mutationError(c, err, "create post")
		return
	}

	h.mutationResponse(c, form, result, http.StatusCreated)
}

// Edit - POST /api/v1/posts/:id/edit (multipart form)
//
// The edit form doubles as the delete form: the presence of a "delete"
// field removes the post instead of updating it.
func (h *PostHandler) Edit(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}
	sessionID, userID, ok := callerIdentity(c)
	if !ok {
		return
	}

	// Presence of the field triggers deletion, the value does not matter.
	if _, isDelete := c.GetPostForm("delete"); isDelete {
		result, err := h.service.Delete(c.Request.Context(), sessionID, userID, postID)
		if err != nil {
			h.mutationError(c, err, "delete post")
			return
		}
		h.mutationResponse(c, nil, result, http.StatusOK)
		return
	}

	form, ferr := bindPostForm(c)
	if ferr != nil {
		response.ValidationFailed(c, ferr, nil)
		return
	}

	result, err := h.service.Update(c.Request.Context(), sessionID, userID, postID, form)
	if err != nil {
		h.mutationError(c, err, "update post")
		return
	}

	h.mutationResponse(c, form, result, http.StatusOK)
}

// Delete - DELETE /api/v1/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}
	sessionID, userID, ok := callerIdentity(c)
	if !ok {
		return
	}

	result, err := h.service.Delete(c.Request.Context(), sessionID, userID, postID)
	if err != nil {
		h.mutationError(c, err, "delete post")
		return
	}

	h.mutationResponse(c, nil, result, http.StatusOK)
}

func (h *PostHandler) mutationResponse(c *gin.Context, form *post.PostForm, result *post.MutationResult, savedStatus int) {
	if result.FieldErrors != nil {
		input := echoForm(form)
		if result.AuthorName != "" {
			input["author_name"] = result.AuthorName
		}
		if result.PictureURL != "" {
			input["picture_url"] = result.PictureURL
		}
		response.ValidationFailed(c, result.FieldErrors, input)
		return
	}

	status := http.StatusOK
	if result.Saved {
		status = savedStatus
	}
	response.Success(c, status, gin.H{
		"redirect": postListPath,
		"saved":    result.Saved,
		"post":     result.Post,
	})
}

func (h *PostHandler) mutationError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, post.ErrPostNotFound):
		response.NotFound(c, "Post not found")
	case errors.Is(err, author.ErrAuthorNotFound):
		response.NotFound(c, "Author not found")
	case errors.Is(err, post.ErrNotOwner):
		// The denial message is already queued for the session.
		response.Success(c, http.StatusOK, gin.H{"redirect": postListPath, "saved": false})
	default:
		logger.Error("failed to "+action, err)
		response.InternalServerError(c, "Failed to "+action)
	}
}

func callerIdentity(c *gin.Context) (sessionID string, userID uuid.UUID, ok bool) {
	sessionID = c.GetString(middleware.ContextKeySessionID)

	raw, exists := c.Get(middleware.ContextKeyUserID)
	if !exists {
		response.Unauthorized(c, "authentication required")
		return "", uuid.Nil, false
	}
	userID, castOK := raw.(uuid.UUID)
	if !castOK {
		response.Unauthorized(c, "authentication required")
		return "", uuid.Nil, false
	}

	return sessionID, userID, true
}

// bindPostForm reads the multipart fields. A malformed category id is
// reported as a field error rather than a transport error so the client
// redisplays the form.
func bindPostForm(c *gin.Context) (*post.PostForm, map[string]string) {
	form := &post.PostForm{
		Title:    c.PostForm("title"),
		Briefing: c.PostForm("briefing"),
		Text:     c.PostForm("text"),
	}

	if raw := c.PostForm("category"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, map[string]string{"category": "Category does not exist."}
		}
		form.CategoryID = id
	}

	fileHeader, err := c.FormFile("picture")
	if err == nil && fileHeader != nil {
		f, openErr := fileHeader.Open()
		if openErr != nil {
			return nil, map[string]string{"picture": "Picture is empty."}
		}
		defer f.Close()

		data, readErr := io.ReadAll(f)
		if readErr != nil {
			return nil, map[string]string{"picture": "Picture is empty."}
		}

		form.Picture = &post.PictureUpload{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Data:        data,
		}
	}

	return form, nil
}

func echoForm(form *post.PostForm) gin.H {
	if form == nil {
		return gin.H{}
	}
	return gin.H{
		"title":    form.Title,
		"category": form.CategoryID,
		"briefing": form.Briefing,
		"text":     form.Text,
	}
}
