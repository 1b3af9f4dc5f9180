package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ander1code/cleanblog/internal/domains/user"
	"github.com/ander1code/cleanblog/internal/shared/middleware"
)

type stubUserService struct {
	logoutCalled bool
}

func (s *stubUserService) Login(_ context.Context, _ user.LoginRequest) (*user.LoginResponse, error) {
	return &user.LoginResponse{Token: "token"}, nil
}

func (s *stubUserService) Logout(_ context.Context, _ string, _ time.Time) error {
	s.logoutCalled = true
	return nil
}

// failingFlash rejects every write, simulating an unreachable message store.
type failingFlash struct {
	setAttempts int
}

func (f *failingFlash) Set(_ context.Context, _, _ string) error {
	f.setAttempts++
	return assert.AnError
}

func (f *failingFlash) Peek(_ context.Context, _ string) (bool, string, error) {
	return false, "", nil
}

func (f *failingFlash) Clear(_ context.Context, _ string) error {
	return nil
}

func TestLoginSurvivesFlashStoreFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	flashes := &failingFlash{}
	h := NewAuthHandler(&stubUserService{}, flashes)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.ContextKeySessionID, "sid")
		c.Set(middleware.ContextKeyUserID, uuid.New())
		c.Next()
	})
	router.POST("/auth/login", h.Login)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/v1/posts")
	assert.Equal(t, 1, flashes.setAttempts)
}

func TestLogoutSurvivesFlashStoreFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	flashes := &failingFlash{}
	svc := &stubUserService{}
	h := NewAuthHandler(svc, flashes)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.ContextKeySessionID, "sid")
		c.Next()
	})
	router.POST("/auth/logout", h.Logout)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	router.ServeHTTP(w, req)

	// No claims in the context, so this is the "already logged off" branch.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/v1/posts")
	assert.False(t, svc.logoutCalled)
	assert.Equal(t, 1, flashes.setAttempts)
}
