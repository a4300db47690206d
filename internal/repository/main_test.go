package repository

import (
	"fmt"
	"testing"

	"showcase/internal/database"
	"showcase/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an isolated in-memory database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(database.Models()...); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	user := &models.User{
		Name:     name,
		Email:    fmt.Sprintf("%s@example.com", name),
		Password: "hashed",
		Avatar:   "https://example.com/" + name + ".png",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", name, err)
	}
	return user
}

func createTestProfile(t *testing.T, db *gorm.DB, user *models.User) *models.Profile {
	t.Helper()
	profile := &models.Profile{
		UserID: user.ID,
		Bio:    "builds things",
		Skills: []string{"go"},
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("create profile for %s: %v", user.Name, err)
	}
	return profile
}

func createTestPost(t *testing.T, db *gorm.DB, author *models.User) *models.Post {
	t.Helper()
	post := &models.Post{
		Title:      "Test Project",
		TechTags:   []string{"go", "redis"},
		WebsiteURL: "https://example.com/project",
		UserID:     author.ID,
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}
