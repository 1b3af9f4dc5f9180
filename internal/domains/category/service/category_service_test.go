package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ander1code/cleanblog/internal/domains/category"
	"github.com/ander1code/cleanblog/internal/validator"
)

type fakeCategoryRepo struct {
	categories []category.Category
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *category.Category) error {
	for _, existing := range r.categories {
		if existing.Title == c.Title {
			return category.ErrDuplicateTitle
		}
	}
	r.categories = append(r.categories, *c)
	return nil
}

func (r *fakeCategoryRepo) GetAll(_ context.Context) ([]category.Category, error) {
	return r.categories, nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id uuid.UUID) (*category.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, category.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, err := r.GetByID(context.Background(), id)
	return err == nil, nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.categories {
		if r.categories[i].ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return category.ErrCategoryNotFound
}

func TestCategoryCreate(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := NewCategoryService(repo)

	created, err := svc.Create(context.Background(), &category.CreateCategoryRequest{Title: "Travelling"})
	require.NoError(t, err)
	assert.Equal(t, "Travelling", created.Title)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Len(t, repo.categories, 1)
}

func TestCategoryCreateValidatesTitle(t *testing.T) {
	svc := NewCategoryService(&fakeCategoryRepo{})

	cases := []struct {
		input string
		want  string
	}{
		{"", "Title is empty."},
		{"    ", "Title is empty."},
		{"abcd", "Title must be at least 5 characters long."},
		{strings.Repeat("a", 46), "Title must not exceed 45 characters."},
	}

	for _, tc := range cases {
		_, err := svc.Create(context.Background(), &category.CreateCategoryRequest{Title: tc.input})
		require.Error(t, err, "input %q", tc.input)

		var ferr *validator.FieldError
		require.ErrorAs(t, err, &ferr)
		assert.Equal(t, tc.want, ferr.Message)
		assert.Equal(t, "title", ferr.Field)
	}
}

func TestCategoryCreateRejectsDuplicateTitle(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := NewCategoryService(repo)

	_, err := svc.Create(context.Background(), &category.CreateCategoryRequest{Title: "Science"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &category.CreateCategoryRequest{Title: "Science"})
	assert.ErrorIs(t, err, category.ErrDuplicateTitle)
}

func TestCategoryGet(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := NewCategoryService(repo)

	created, err := svc.Create(context.Background(), &category.CreateCategoryRequest{Title: "Photography"})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Photography", got.Title)

	_, err = svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}

func TestCategoryDelete(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := NewCategoryService(repo)

	created, err := svc.Create(context.Background(), &category.CreateCategoryRequest{Title: "Business"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Empty(t, repo.categories)

	err = svc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}
