// Package container wires the application's dependency graph. Everything is
// constructed once at startup and injected explicitly; no package-level
// singletons.
package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ander1code/cleanblog/internal/config"
	infraCache "github.com/ander1code/cleanblog/internal/infrastructure/cache"
	"github.com/ander1code/cleanblog/internal/infrastructure/database"
	"github.com/ander1code/cleanblog/internal/infrastructure/storage"
	"github.com/ander1code/cleanblog/pkg/cache"
	"github.com/ander1code/cleanblog/pkg/jwt"

	"github.com/ander1code/cleanblog/internal/domains/author"
	authorHandler "github.com/ander1code/cleanblog/internal/domains/author/handler"
	authorRepo "github.com/ander1code/cleanblog/internal/domains/author/repository"
	"github.com/ander1code/cleanblog/internal/domains/category"
	categoryHandler "github.com/ander1code/cleanblog/internal/domains/category/handler"
	categoryRepo "github.com/ander1code/cleanblog/internal/domains/category/repository"
	categoryService "github.com/ander1code/cleanblog/internal/domains/category/service"
	"github.com/ander1code/cleanblog/internal/domains/flash"
	flashHandler "github.com/ander1code/cleanblog/internal/domains/flash/handler"
	"github.com/ander1code/cleanblog/internal/domains/post"
	postHandler "github.com/ander1code/cleanblog/internal/domains/post/handler"
	postRepo "github.com/ander1code/cleanblog/internal/domains/post/repository"
	postService "github.com/ander1code/cleanblog/internal/domains/post/service"
	"github.com/ander1code/cleanblog/internal/domains/user"
	userHandler "github.com/ander1code/cleanblog/internal/domains/user/handler"
	userRepo "github.com/ander1code/cleanblog/internal/domains/user/repository"
	userService "github.com/ander1code/cleanblog/internal/domains/user/service"
)

// Container is the root of the dependency graph.
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *database.PostgresDB
	Redis      *infraCache.RedisClient
	Cache      cache.Cache
	Storage    *storage.MinIOStorage
	JWTManager *jwt.Manager
	FlashStore flash.Store

	// Repositories
	UserRepo     user.Repository
	AuthorRepo   author.Repository
	CategoryRepo category.Repository
	PostRepo     post.Repository

	// Services
	UserService     user.Service
	CategoryService category.Service
	PostService     post.Service

	// Handlers
	AuthHandler     *userHandler.AuthHandler
	FlashHandler    *flashHandler.FlashHandler
	AuthorHandler   *authorHandler.AuthorHandler
	CategoryHandler *categoryHandler.CategoryHandler
	PostHandler     *postHandler.PostHandler
}

// NewContainer builds the whole graph in dependency order: config,
// infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("[CONTAINER] Config loaded (environment: %s)", cfg.App.Environment)

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Println("[CONTAINER] Initialized")
	return c, nil
}

func (c *Container) initInfrastructure() error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	c.Redis = infraCache.NewRedisClient(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)
	if err := c.Redis.Connect(ctx); err != nil {
		// Notifications and logout revocation degrade without Redis, the
		// rest of the app still works.
		log.Printf("[CONTAINER] Redis connection failed (non-critical): %v", err)
	}
	c.Cache = infraCache.NewRedisCache(c.Redis)
	c.FlashStore = flash.NewRedisStore(c.Cache)

	minioStorage, err := storage.NewMinIOStorage(c.Config.MinIO)
	if err != nil {
		return fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = minioStorage

	c.JWTManager = jwt.NewManager(c.Config.JWT.Secret, c.Config.JWT.SessionExpiry)

	return nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresRepository(pool)
	c.AuthorRepo = authorRepo.NewPostgresRepository(pool)
	c.CategoryRepo = categoryRepo.NewPostgresRepository(pool)
	c.PostRepo = postRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager, c.Cache)
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo)
	c.PostService = postService.NewPostService(
		c.PostRepo,
		c.AuthorRepo,
		c.CategoryRepo,
		c.Storage,
		c.FlashStore,
	)
}

func (c *Container) initHandlers() {
	c.AuthHandler = userHandler.NewAuthHandler(c.UserService, c.FlashStore)
	c.FlashHandler = flashHandler.NewFlashHandler(c.FlashStore)
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorRepo)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService, c.CategoryService)
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
		log.Println("[CONTAINER] Database connections closed")
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Printf("[CONTAINER] Failed to close Redis: %v", err)
		} else {
			log.Println("[CONTAINER] Redis connections closed")
		}
	}
}
