package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ander1code/cleanblog/internal/shared/middleware"
	"github.com/ander1code/cleanblog/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	sessionConfig := middleware.DefaultSessionConfig()
	if os.Getenv("APP_ENV") == "development" {
		sessionConfig.CookieSecure = false
	}

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Session(sessionConfig),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupNotificationRoutes(v1, c)
		setupPostRoutes(v1, c)
		setupCategoryRoutes(v1, c)
		setupAuthorRoutes(v1, c)
	}

	return router
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		// Login detects an already authenticated caller, so the token is
		// read when present but never required.
		auth.POST("/login", middleware.OptionalAuth(c.JWTManager, c.Cache), c.AuthHandler.Login)
		auth.POST("/logout", middleware.OptionalAuth(c.JWTManager, c.Cache), c.AuthHandler.Logout)
	}
}

func setupNotificationRoutes(v1 *gin.RouterGroup, c *container.Container) {
	notifications := v1.Group("/notifications")
	{
		notifications.GET("", c.FlashHandler.Notifications)
		notifications.POST("/clear", c.FlashHandler.ClearData)
	}
}

func setupPostRoutes(v1 *gin.RouterGroup, c *container.Container) {
	posts := v1.Group("/posts")
	{
		posts.GET("", c.PostHandler.List)
		posts.GET("/:id", c.PostHandler.Get)
	}

	authed := v1.Group("/posts")
	authed.Use(middleware.Auth(c.JWTManager, c.Cache))
	{
		authed.GET("/new", c.PostHandler.NewForm)
		authed.POST("", c.PostHandler.Create)
		authed.GET("/:id/edit", c.PostHandler.EditForm)
		authed.POST("/:id/edit", c.PostHandler.Edit)
		authed.DELETE("/:id", c.PostHandler.Delete)
	}
}

func setupCategoryRoutes(v1 *gin.RouterGroup, c *container.Container) {
	categories := v1.Group("/categories")
	{
		categories.GET("", c.CategoryHandler.List)
		categories.GET("/:id", c.CategoryHandler.GetByID)
	}

	authed := v1.Group("/categories")
	authed.Use(middleware.Auth(c.JWTManager, c.Cache))
	{
		authed.POST("", c.CategoryHandler.Create)
		authed.DELETE("/:id", c.CategoryHandler.Delete)
	}
}

func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authors := v1.Group("/authors")
	{
		authors.GET("/:id", c.AuthorHandler.GetByID)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
