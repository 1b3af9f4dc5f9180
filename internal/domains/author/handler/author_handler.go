package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ander1code/cleanblog/internal/domains/author"
	"github.com/ander1code/cleanblog/internal/shared/response"
	"github.com/ander1code/cleanblog/pkg/logger"
)

type AuthorHandler struct {
	repo author.Repository
}

func NewAuthorHandler(repo author.Repository) *AuthorHandler {
	return &AuthorHandler{repo: repo}
}

// GetByID - GET /api/v1/authors/:id
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid author id")
		return
	}

	a, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			response.NotFound(c, "Author not found")
			return
		}
		logger.Error("get author failed", err)
		response.InternalServerError(c, "Failed to get author")
		return
	}

	response.Success(c, http.StatusOK, a.ToResponse())
}
