// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a published project in the Showcase application.
type Post struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Title       string   `gorm:"not null" json:"title"`
	Description string   `gorm:"type:text" json:"description,omitempty"`
	Images      []string `gorm:"serializer:json;not null" json:"images"`
	TechTags    []string `gorm:"serializer:json;not null" json:"tech_tags"`
	WebsiteURL  string   `gorm:"not null" json:"website_url"`
	RepoURL     string   `json:"repo_url,omitempty"`
	UserID      uint     `gorm:"not null;index" json:"user_id"`
	User        User     `gorm:"foreignKey:UserID" json:"user"`
	Comments    []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	// Likes holds the like edges; liker summaries are projected from it.
	Likes []Like `gorm:"foreignKey:PostID" json:"-"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"-" json:"likes_count"`
	// Likers is the name/avatar projection of Likes (computed)
	Likers    []UserSummary  `gorm:"-" json:"likers,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
