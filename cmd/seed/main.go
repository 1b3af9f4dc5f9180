// Command seed loads the initial categories and, when the SEED_USERNAME and
// SEED_PASSWORD variables are set, a first login with its author profile.
// It is idempotent: existing rows are left alone.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/ander1code/cleanblog/internal/config"
	"github.com/ander1code/cleanblog/internal/domains/author"
	authorRepo "github.com/ander1code/cleanblog/internal/domains/author/repository"
	"github.com/ander1code/cleanblog/internal/domains/category"
	categoryRepo "github.com/ander1code/cleanblog/internal/domains/category/repository"
	"github.com/ander1code/cleanblog/internal/domains/user"
	userRepo "github.com/ander1code/cleanblog/internal/domains/user/repository"
	"github.com/ander1code/cleanblog/internal/infrastructure/database"
)

var defaultCategories = []string{
	"Technology",
	"Travelling",
	"Lifestyle",
	"Science",
	"Business",
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		log.Fatalf("Failed to load database config: %v", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	seedCategories(ctx, categoryRepo.NewPostgresRepository(db.Pool))
	seedAuthor(ctx, userRepo.NewPostgresRepository(db.Pool), authorRepo.NewPostgresRepository(db.Pool))

	log.Println("Seed completed")
}

func seedCategories(ctx context.Context, repo category.Repository) {
	for _, title := range defaultCategories {
		c := &category.Category{ID: uuid.New(), Title: title}
		err := repo.Create(ctx, c)
		switch {
		case err == nil:
			log.Printf("Created category %q", title)
		case errors.Is(err, category.ErrDuplicateTitle):
			log.Printf("Category %q already exists, skipping", title)
		default:
			log.Fatalf("Failed to create category %q: %v", title, err)
		}
	}
}

func seedAuthor(ctx context.Context, users user.Repository, authors author.Repository) {
	username := os.Getenv("SEED_USERNAME")
	password := os.Getenv("SEED_PASSWORD")
	if username == "" || password == "" {
		log.Println("SEED_USERNAME/SEED_PASSWORD not set, skipping author seed")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	u := &user.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
	}
	err = users.Create(ctx, u)
	switch {
	case err == nil:
		log.Printf("Created user %q", username)
	case errors.Is(err, user.ErrUsernameAlreadyExists):
		log.Printf("User %q already exists, skipping author seed", username)
		return
	default:
		log.Fatalf("Failed to create user: %v", err)
	}

	a := author.Author{
		ID:          uuid.New(),
		UserID:      u.ID,
		Name:        getEnv("SEED_AUTHOR_NAME", username),
		Email:       getEnv("SEED_AUTHOR_EMAIL", username+"@example.com"),
		Occupation:  getEnv("SEED_AUTHOR_OCCUPATION", "Writer"),
		Description: getEnv("SEED_AUTHOR_DESCRIPTION", "Writes about whatever comes to mind."),
		PictureURL:  getEnv("SEED_AUTHOR_PICTURE_URL", "/img/default-author.png"),
	}
	if err := a.Validate(); err != nil {
		log.Fatalf("Invalid author profile: %v", err)
	}
	if err := authors.Create(ctx, &a); err != nil {
		log.Fatalf("Failed to create author: %v", err)
	}
	log.Printf("Created author %q", a.Name)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
