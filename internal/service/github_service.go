package service

import (
	"context"

	"showcase/internal/cache"
	"showcase/internal/github"
	"showcase/internal/middleware"
	"showcase/internal/models"
	"showcase/internal/repository"
)

// RepoLister fetches a user's recent repositories. Satisfied by
// *github.Client; tests substitute their own.
type RepoLister interface {
	ListRecentRepos(ctx context.Context, username string) ([]github.RepoSummary, error)
}

// GithubService serves cached GitHub repository listings for profiles.
type GithubService struct {
	profileRepo repository.ProfileRepository
	client      RepoLister
}

// NewGithubService returns a new GithubService.
func NewGithubService(profileRepo repository.ProfileRepository, client RepoLister) *GithubService {
	return &GithubService{
		profileRepo: profileRepo,
		client:      client,
	}
}

// GetRepos returns the five most recent public repositories for the GitHub
// account linked to the given profile. Results are cached briefly; the first
// writer wins so concurrent fetches for the same username do not stampede
// each other's fresher data.
func (s *GithubService) GetRepos(ctx context.Context, profileID uint) ([]github.RepoSummary, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile.GithubUsername == "" {
		return nil, models.NewInvalidOperationError("Profile has no linked GitHub username")
	}
	return s.reposForUsername(ctx, profile.GithubUsername)
}

func (s *GithubService) reposForUsername(ctx context.Context, username string) ([]github.RepoSummary, error) {
	key := cache.GithubReposKey(username)

	var cached []github.RepoSummary
	found, err := cache.GetJSON(ctx, key, &cached)
	if err != nil {
		middleware.RedisErrors.WithLabelValues("get").Inc()
	}
	if found {
		return cached, nil
	}

	repos, err := s.client.ListRecentRepos(ctx, username)
	if err != nil {
		return nil, err
	}

	if _, err := cache.SetJSONNX(ctx, key, repos, cache.GithubReposTTL); err != nil {
		middleware.RedisErrors.WithLabelValues("set").Inc()
	}
	return repos, nil
}
