package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/quillhub/quill/pkg/internal/database"
	"github.com/quillhub/quill/pkg/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func useTestDatabase(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("unable to open test database: %v", err)
	}

	// A :memory: sqlite database exists per connection; pin the pool to one
	// so every query sees the same database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unable to get test database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.RunMigration(db); err != nil {
		t.Fatalf("unable to migrate test database: %v", err)
	}

	database.C = db
}

func makeTestAccount(t *testing.T, name string) models.Account {
	t.Helper()

	account := models.Account{
		Name:         name,
		Nick:         name,
		Email:        fmt.Sprintf("%s@example.com", name),
		PasswordHash: "not-a-real-hash",
	}
	if err := database.C.Create(&account).Error; err != nil {
		t.Fatalf("unable to create account %s: %v", name, err)
	}
	return account
}

func makeTestPost(t *testing.T, author models.Account, text string, group *models.Group, publishedAt time.Time) models.Post {
	t.Helper()

	post := models.Post{
		Text:     text,
		AuthorID: author.ID,
	}
	post.CreatedAt = publishedAt
	if group != nil {
		post.GroupID = &group.ID
	}
	if err := database.C.Create(&post).Error; err != nil {
		t.Fatalf("unable to create post: %v", err)
	}
	return post
}
