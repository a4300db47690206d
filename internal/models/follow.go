// Package models contains data structures for the application's domain models.
package models

// One logical follow edge is stored as two physical rows, one per direction,
// so that "who do I follow" and "who follows me" are both single-table
// lookups. The rows are only ever written or removed together inside one
// transaction; FollowRepository is the sole writer.

// FollowingEdge records that the profile ProfileID follows FollowingID.
type FollowingEdge struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	ProfileID   uint `gorm:"not null;uniqueIndex:idx_following_pair" json:"profile_id"`
	FollowingID uint `gorm:"not null;uniqueIndex:idx_following_pair" json:"following_id"`
}

// TableName specifies the table name for GORM
func (FollowingEdge) TableName() string {
	return "following_edges"
}

// FollowerEdge is the inverse record: profile ProfileID is followed by FollowerID.
type FollowerEdge struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	ProfileID  uint `gorm:"not null;uniqueIndex:idx_follower_pair" json:"profile_id"`
	FollowerID uint `gorm:"not null;uniqueIndex:idx_follower_pair" json:"follower_id"`
}

// TableName specifies the table name for GORM
func (FollowerEdge) TableName() string {
	return "follower_edges"
}
