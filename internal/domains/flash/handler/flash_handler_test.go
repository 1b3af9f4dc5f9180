package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ander1code/cleanblog/internal/domains/flash"
	"github.com/ander1code/cleanblog/internal/shared/middleware"
)

func setupRouter(store flash.Store, sessionID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.ContextKeySessionID, sessionID)
		c.Next()
	})

	h := NewFlashHandler(store)
	router.GET("/notifications", h.Notifications)
	router.POST("/notifications/clear", h.ClearData)
	return router
}

type envelope struct {
	Success bool `json:"success"`
	Data    struct {
		Open    bool   `json:"open"`
		Message string `json:"message"`
	} `json:"data"`
}

func getNotification(t *testing.T, router *gin.Engine) envelope {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestNotificationsEmpty(t *testing.T) {
	router := setupRouter(flash.NewMemoryStore(), "sid-1")

	body := getNotification(t, router)
	assert.True(t, body.Success)
	assert.False(t, body.Data.Open)
	assert.Empty(t, body.Data.Message)
}

func TestNotificationsReturnsPendingMessage(t *testing.T) {
	store := flash.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "sid-1", "Successfully logged off."))
	router := setupRouter(store, "sid-1")

	body := getNotification(t, router)
	assert.True(t, body.Data.Open)
	assert.Equal(t, "Successfully logged off.", body.Data.Message)

	// Reading does not consume the message.
	body = getNotification(t, router)
	assert.True(t, body.Data.Open)
}

func TestClearDataIsIdempotent(t *testing.T) {
	store := flash.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "sid-1", "Successfully created."))
	router := setupRouter(store, "sid-1")

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/notifications/clear", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	body := getNotification(t, router)
	assert.False(t, body.Data.Open)
}

func TestNotificationsAreSessionScoped(t *testing.T) {
	store := flash.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "sid-1", "Successfully edited."))

	otherRouter := setupRouter(store, "sid-2")
	body := getNotification(t, otherRouter)
	assert.False(t, body.Data.Open)
}
