package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/ander1code/cleanblog/internal/domains/category"
	"github.com/ander1code/cleanblog/internal/validator"
)

type categoryService struct {
	repo category.Repository
}

// NewCategoryService creates the category service.
func NewCategoryService(repo category.Repository) category.Service {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, req *category.CreateCategoryRequest) (*category.Category, error) {
	if _, ferr := validator.String(req.Title, "title", 5, 45); ferr != nil {
		return nil, ferr
	}

	c := &category.Category{
		ID:    uuid.New(),
		Title: req.Title,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *categoryService) List(ctx context.Context) ([]category.Category, error) {
	return s.repo.GetAll(ctx)
}

func (s *categoryService) Get(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
