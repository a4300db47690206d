package service

import (
	"context"

	"showcase/internal/models"
	"showcase/internal/repository"
)

// FollowService provides follow graph business logic.
type FollowService struct {
	profileRepo repository.ProfileRepository
	followRepo  repository.FollowRepository
}

// NewFollowService returns a new FollowService.
func NewFollowService(profileRepo repository.ProfileRepository, followRepo repository.FollowRepository) *FollowService {
	return &FollowService{
		profileRepo: profileRepo,
		followRepo:  followRepo,
	}
}

// Follow makes the caller's profile follow the target profile and returns the
// caller's updated following list.
func (s *FollowService) Follow(ctx context.Context, userID, targetProfileID uint) ([]models.ProfileSummary, error) {
	target, err := s.profileRepo.GetByID(ctx, targetProfileID)
	if err != nil {
		return nil, err
	}

	own, err := s.ownProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if own.ID == target.ID {
		return nil, models.NewInvalidOperationError("You cannot follow yourself")
	}

	// Early duplicate check; the unique indexes still reject the edge if a
	// concurrent follow slips past it.
	exists, err := s.followRepo.Exists(ctx, own.ID, target.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewConflictError("You are already following this user")
	}

	if err := s.followRepo.Follow(ctx, own.ID, target.ID); err != nil {
		return nil, err
	}
	return s.followRepo.ListFollowing(ctx, own.ID)
}

// Unfollow removes the follow edge and returns the caller's updated
// following list. An absent edge surfaces as NotFound.
func (s *FollowService) Unfollow(ctx context.Context, userID, targetProfileID uint) ([]models.ProfileSummary, error) {
	target, err := s.profileRepo.GetByID(ctx, targetProfileID)
	if err != nil {
		return nil, err
	}

	own, err := s.ownProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.followRepo.Unfollow(ctx, own.ID, target.ID); err != nil {
		return nil, err
	}
	return s.followRepo.ListFollowing(ctx, own.ID)
}

// ListFollowing returns the profiles a profile follows.
func (s *FollowService) ListFollowing(ctx context.Context, profileID uint) ([]models.ProfileSummary, error) {
	if _, err := s.profileRepo.GetByID(ctx, profileID); err != nil {
		return nil, err
	}
	return s.followRepo.ListFollowing(ctx, profileID)
}

// ListFollowers returns the profiles following a profile.
func (s *FollowService) ListFollowers(ctx context.Context, profileID uint) ([]models.ProfileSummary, error) {
	if _, err := s.profileRepo.GetByID(ctx, profileID); err != nil {
		return nil, err
	}
	return s.followRepo.ListFollowers(ctx, profileID)
}

func (s *FollowService) ownProfile(ctx context.Context, userID uint) (*models.Profile, error) {
	own, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if own == nil {
		return nil, models.NewInvalidOperationError("Create a profile before following other users")
	}
	return own, nil
}
