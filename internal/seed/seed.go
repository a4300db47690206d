// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"

	"showcase/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

var skillPool = []string{
	"Go", "TypeScript", "React", "Node.js", "PostgreSQL", "Redis", "Docker",
	"Kubernetes", "GraphQL", "Rust", "Python", "Terraform", "AWS", "Svelte",
	"Vue", "gRPC", "Kafka", "Elixir", "Swift", "Kotlin",
}

var tagPool = []string{
	"go", "react", "node", "typescript", "postgres", "redis", "docker",
	"graphql", "rust", "python", "cli", "api", "webapp", "game", "ml",
	"devtools", "mobile", "desktop",
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := ClearAll(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	f := NewFactory(db)

	users, err := f.CreateUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("created %d users with profiles", len(users))

	if err := f.CreateFollowMesh(users); err != nil {
		return fmt.Errorf("failed to create follow graph: %w", err)
	}

	posts, err := f.CreatePosts(users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("created %d posts", len(posts))

	if err := f.CreateEngagement(users, posts); err != nil {
		return fmt.Errorf("failed to create comments and likes: %w", err)
	}

	log.Println("Seeding complete")
	return nil
}

// ClearAll removes all seeded data. Child tables go first so foreign keys
// never dangle mid-way.
func ClearAll(db *gorm.DB) error {
	tables := []string{
		"likes", "comments", "posts",
		"follower_edges", "following_edges",
		"profiles", "users",
	}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

// CreateEngagement adds comments and likes to roughly half the posts.
func (f *Factory) CreateEngagement(users []*models.User, posts []*models.Post) error {
	for _, post := range posts {
		if rand.Intn(2) == 0 {
			continue
		}
		n := rand.Intn(4)
		for i := 0; i < n; i++ {
			commenter := users[rand.Intn(len(users))]
			if err := f.CreateComment(post, commenter); err != nil {
				return err
			}
		}
		for _, user := range users {
			if user.ID == post.UserID || rand.Intn(4) != 0 {
				continue
			}
			if err := f.CreateLike(post, user); err != nil {
				return err
			}
		}
	}
	return nil
}
