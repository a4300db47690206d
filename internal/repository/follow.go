// Package repository implements the data access layer for the application.
package repository

import (
	"context"

	"showcase/internal/models"

	"gorm.io/gorm"
)

// FollowRepository is the sole writer of the follow-edge tables. One logical
// edge is two physical rows (forward "following" and inverse "follower");
// Follow and Unfollow write or remove them inside one transaction so no
// partial edge is ever observable, and the composite unique indexes make the
// insert reject duplicates even under concurrent calls.
type FollowRepository interface {
	Follow(ctx context.Context, followerProfileID, followeeProfileID uint) error
	Unfollow(ctx context.Context, followerProfileID, followeeProfileID uint) error
	Exists(ctx context.Context, followerProfileID, followeeProfileID uint) (bool, error)
	ListFollowing(ctx context.Context, profileID uint) ([]models.ProfileSummary, error)
	ListFollowers(ctx context.Context, profileID uint) ([]models.ProfileSummary, error)
	// FollowingUserIDs resolves the user identifiers behind every profile the
	// given profile follows; this is the feed aggregator's entry point.
	FollowingUserIDs(ctx context.Context, profileID uint) ([]uint, error)
	CountFollowing(ctx context.Context, profileID uint) (int64, error)
	CountFollowers(ctx context.Context, profileID uint) (int64, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository returns a new FollowRepository implementation.
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Follow(ctx context.Context, followerProfileID, followeeProfileID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		forward := &models.FollowingEdge{
			ProfileID:   followerProfileID,
			FollowingID: followeeProfileID,
		}
		if err := tx.Create(forward).Error; err != nil {
			if isUniqueConstraintError(err) {
				return models.NewConflictError("You are already following this user")
			}
			return models.NewInternalError(err)
		}

		inverse := &models.FollowerEdge{
			ProfileID:  followeeProfileID,
			FollowerID: followerProfileID,
		}
		if err := tx.Create(inverse).Error; err != nil {
			if isUniqueConstraintError(err) {
				return models.NewConflictError("You are already following this user")
			}
			return models.NewInternalError(err)
		}
		return nil
	})
}

func (r *followRepository) Unfollow(ctx context.Context, followerProfileID, followeeProfileID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("profile_id = ? AND following_id = ?", followerProfileID, followeeProfileID).
			Delete(&models.FollowingEdge{})
		if res.Error != nil {
			return models.NewInternalError(res.Error)
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Follow edge", followeeProfileID)
		}

		if err := tx.Where("profile_id = ? AND follower_id = ?", followeeProfileID, followerProfileID).
			Delete(&models.FollowerEdge{}).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
}

func (r *followRepository) Exists(ctx context.Context, followerProfileID, followeeProfileID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.FollowingEdge{}).
		Where("profile_id = ? AND following_id = ?", followerProfileID, followeeProfileID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *followRepository) ListFollowing(ctx context.Context, profileID uint) ([]models.ProfileSummary, error) {
	var related []models.ProfileSummary
	if err := r.db.WithContext(ctx).
		Table("following_edges").
		Select("profiles.id AS profile_id, users.id AS user_id, users.name AS name, users.avatar AS avatar").
		Joins("JOIN profiles ON profiles.id = following_edges.following_id").
		Joins("JOIN users ON users.id = profiles.user_id").
		Where("following_edges.profile_id = ?", profileID).
		Scan(&related).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return related, nil
}

func (r *followRepository) ListFollowers(ctx context.Context, profileID uint) ([]models.ProfileSummary, error) {
	var related []models.ProfileSummary
	if err := r.db.WithContext(ctx).
		Table("follower_edges").
		Select("profiles.id AS profile_id, users.id AS user_id, users.name AS name, users.avatar AS avatar").
		Joins("JOIN profiles ON profiles.id = follower_edges.follower_id").
		Joins("JOIN users ON users.id = profiles.user_id").
		Where("follower_edges.profile_id = ?", profileID).
		Scan(&related).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return related, nil
}

func (r *followRepository) FollowingUserIDs(ctx context.Context, profileID uint) ([]uint, error) {
	var userIDs []uint
	if err := r.db.WithContext(ctx).
		Table("following_edges").
		Joins("JOIN profiles ON profiles.id = following_edges.following_id").
		Where("following_edges.profile_id = ?", profileID).
		Pluck("profiles.user_id", &userIDs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return userIDs, nil
}

func (r *followRepository) CountFollowing(ctx context.Context, profileID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.FollowingEdge{}).
		Where("profile_id = ?", profileID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *followRepository) CountFollowers(ctx context.Context, profileID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.FollowerEdge{}).
		Where("profile_id = ?", profileID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
