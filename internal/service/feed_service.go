package service

import (
	"context"

	"showcase/internal/middleware"
	"showcase/internal/models"
	"showcase/internal/repository"
)

// FeedService assembles the personalized feed from the follow graph.
type FeedService struct {
	profileRepo repository.ProfileRepository
	followRepo  repository.FollowRepository
	postRepo    repository.PostRepository
}

// NewFeedService returns a new FeedService.
func NewFeedService(profileRepo repository.ProfileRepository, followRepo repository.FollowRepository, postRepo repository.PostRepository) *FeedService {
	return &FeedService{
		profileRepo: profileRepo,
		followRepo:  followRepo,
		postRepo:    postRepo,
	}
}

// GetFeed returns the posts authored by the accounts the caller follows,
// newest first. Callers without a profile or without any followed accounts
// get an empty feed rather than an error.
func (s *FeedService) GetFeed(ctx context.Context, userID uint) ([]*models.Post, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return []*models.Post{}, nil
	}

	authorIDs, err := s.followRepo.FollowingUserIDs(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	middleware.FeedFanout.Observe(float64(len(authorIDs)))
	if len(authorIDs) == 0 {
		return []*models.Post{}, nil
	}

	posts, err := s.postRepo.ListByAuthors(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	// Author lists can overlap after concurrent graph edits; keep each post once.
	seen := make(map[uint]struct{}, len(posts))
	feed := make([]*models.Post, 0, len(posts))
	for _, p := range posts {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		feed = append(feed, p)
	}
	return feed, nil
}
