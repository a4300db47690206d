// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment represents a comment on a post.
//
// AuthorName and AuthorAvatar are snapshots of the author's display name and
// avatar taken when the comment is written, not a live join to the users
// table. A later rename does not retroactively alter past comments. Do not
// "fix" this into a join.
type Comment struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	PostID       uint           `gorm:"not null;index" json:"post_id"`
	UserID       uint           `gorm:"not null" json:"user_id"`
	AuthorName   string         `gorm:"not null" json:"name"`
	AuthorAvatar string         `json:"avatar"`
	Text         string         `gorm:"type:text;not null" json:"text"`
	CreatedAt    time.Time      `json:"created_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
