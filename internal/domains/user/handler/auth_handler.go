package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ander1code/cleanblog/internal/domains/flash"
	"github.com/ander1code/cleanblog/internal/domains/user"
	"github.com/ander1code/cleanblog/internal/shared/middleware"
	"github.com/ander1code/cleanblog/internal/shared/response"
	"github.com/ander1code/cleanblog/pkg/jwt"
	"github.com/ander1code/cleanblog/pkg/logger"
)

const postListPath = "/api/v1/posts"

type AuthHandler struct {
	service user.Service
	flash   flash.Store
}

func NewAuthHandler(svc user.Service, flashStore flash.Store) *AuthHandler {
	return &AuthHandler{
		service: svc,
		flash:   flashStore,
	}
}

// Login - POST /api/v1/auth/login
// Runs behind OptionalAuth: an already authenticated caller just gets the
// flash message and is pointed back at the list, no credential check.
func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := c.GetString(middleware.ContextKeySessionID)

	if _, authenticated := c.Get(middleware.ContextKeyUserID); authenticated {
		h.notify(ctx, sessionID, "User is already logged in.")
		response.Success(c, http.StatusOK, gin.H{"redirect": postListPath})
		return
	}

	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Login(ctx, req)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for field, ferr := range verrs {
				fields[field] = ferr.Error()
			}
			// Redisplay the form: echo the username, never the password.
			response.ValidationFailed(c, fields, gin.H{"username": req.Username})
			return
		}

		if errors.Is(err, user.ErrInvalidCredentials) {
			h.notify(ctx, sessionID, "Invalid username and password.")
			response.Unauthorized(c, "Invalid username and password.")
			return
		}

		logger.Error("login failed", err)
		response.InternalServerError(c, "Login failed")
		return
	}

	h.notify(ctx, sessionID, "Successfully logged in.")
	response.Success(c, http.StatusOK, resp)
}

// Logout - POST /api/v1/auth/logout (auth required)
// The route enforces auth, but the handler still tolerates a missing
// identity and reports "already logged off".
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := c.GetString(middleware.ContextKeySessionID)

	claimsVal, ok := c.Get(middleware.ContextKeyClaims)
	if !ok {
		h.notify(ctx, sessionID, "User is already logged off.")
		response.Success(c, http.StatusOK, gin.H{"redirect": postListPath})
		return
	}

	claims := claimsVal.(*jwt.Claims)
	if err := h.service.Logout(ctx, claims.SessionID, claims.ExpiresAt.Time); err != nil {
		logger.Error("logout failed", err)
		response.InternalServerError(c, "Logout failed")
		return
	}

	h.notify(ctx, sessionID, "Successfully logged off.")
	response.Success(c, http.StatusOK, gin.H{"redirect": postListPath})
}

// notify queues the session's flash message. A failed store never fails the
// request, but it is always logged.
func (h *AuthHandler) notify(ctx context.Context, sessionID, message string) {
	if err := h.flash.Set(ctx, sessionID, message); err != nil {
		logger.Error("failed to queue notification", err)
	}
}
