package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ander1code/cleanblog/internal/domains/flash"
	"github.com/ander1code/cleanblog/internal/shared/middleware"
	"github.com/ander1code/cleanblog/internal/shared/response"
	"github.com/ander1code/cleanblog/pkg/logger"
)

type FlashHandler struct {
	store flash.Store
}

func NewFlashHandler(store flash.Store) *FlashHandler {
	return &FlashHandler{store: store}
}

// Notifications - GET /api/v1/notifications
// The rendering layer reads the pending message before clearing it.
func (h *FlashHandler) Notifications(c *gin.Context) {
	sessionID := c.GetString(middleware.ContextKeySessionID)

	open, message, err := h.store.Peek(c.Request.Context(), sessionID)
	if err != nil {
		logger.Error("read notification failed", err)
		response.InternalServerError(c, "Failed to read notification")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"open":    open,
		"message": message,
	})
}

// ClearData - POST /api/v1/clear-data
// Removes the session's pending message. Safe to call twice; the second
// call is a no-op. Responds with an empty payload.
func (h *FlashHandler) ClearData(c *gin.Context) {
	sessionID := c.GetString(middleware.ContextKeySessionID)

	if err := h.store.Clear(c.Request.Context(), sessionID); err != nil {
		logger.Error("clear notification failed", err)
		response.InternalServerError(c, "Failed to clear notification")
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}
