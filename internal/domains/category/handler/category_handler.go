package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ander1code/cleanblog/internal/domains/category"
	"github.com/ander1code/cleanblog/internal/shared/response"
	"github.com/ander1code/cleanblog/internal/validator"
	"github.com/ander1code/cleanblog/pkg/logger"
)

type CategoryHandler struct {
	service category.Service
}

func NewCategoryHandler(service category.Service) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// Create - POST /api/v1/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req category.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		var ferr *validator.FieldError
		if errors.As(err, &ferr) {
			response.ValidationFailed(c, map[string]string{ferr.Field: ferr.Message}, req)
			return
		}
		if errors.Is(err, category.ErrDuplicateTitle) {
			response.Conflict(c, err.Error())
			return
		}
		logger.Error("create category failed", err)
		response.InternalServerError(c, "Failed to create category")
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// List - GET /api/v1/categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.service.List(c.Request.Context())
	if err != nil {
		logger.Error("list categories failed", err)
		response.InternalServerError(c, "Failed to list categories")
		return
	}

	response.Success(c, http.StatusOK, categories)
}

// GetByID - GET /api/v1/categories/:id
func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			response.NotFound(c, "Category not found")
			return
		}
		logger.Error("get category failed", err)
		response.InternalServerError(c, "Failed to get category")
		return
	}

	response.Success(c, http.StatusOK, found)
}

// Delete - DELETE /api/v1/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			response.NotFound(c, "Category not found")
			return
		}
		logger.Error("delete category failed", err)
		response.InternalServerError(c, "Failed to delete category")
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}
