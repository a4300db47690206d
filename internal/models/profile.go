// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Profile is the one-to-one extension of a User: bio, skills, links and the
// endpoints of the follow graph. The unique index on UserID enforces the 1:1.
type Profile struct {
	ID             uint              `gorm:"primaryKey" json:"id"`
	UserID         uint              `gorm:"not null;uniqueIndex" json:"user_id"`
	User           User              `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Bio            string            `gorm:"type:text;not null" json:"bio"`
	Website        string            `json:"website,omitempty"`
	Location       string            `json:"location,omitempty"`
	Skills         []string          `gorm:"serializer:json;not null" json:"skills"`
	GithubUsername string            `json:"github_username,omitempty"`
	Social         map[string]string `gorm:"serializer:json" json:"social,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`

	// Followers and Following are resolved from the follow-edge tables at
	// query time, never persisted on the profile row itself. Listings carry
	// only the counts; single-profile reads carry the summaries too.
	Followers      []ProfileSummary `gorm:"-" json:"followers,omitempty"`
	Following      []ProfileSummary `gorm:"-" json:"following,omitempty"`
	FollowersCount int64            `gorm:"-" json:"followers_count"`
	FollowingCount int64            `gorm:"-" json:"following_count"`
}

// ProfileSummary is the projection returned by follower/following listings:
// the related profile joined with its owning user's display name and avatar.
type ProfileSummary struct {
	ProfileID uint   `json:"profile_id"`
	UserID    uint   `json:"user_id"`
	Name      string `json:"name"`
	Avatar    string `json:"avatar"`
}
