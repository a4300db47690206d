package service

import (
	"context"
	"strings"

	"showcase/internal/models"
	"showcase/internal/repository"
	"showcase/internal/validation"
)

// ProfileService provides developer profile business logic.
type ProfileService struct {
	profileRepo repository.ProfileRepository
	followRepo  repository.FollowRepository
}

// NewProfileService returns a new ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository, followRepo repository.FollowRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		followRepo:  followRepo,
	}
}

// UpsertProfileInput carries the profile fields submitted by the client.
// Skills arrives as a single comma separated string; Social holds only the
// networks the client filled in.
type UpsertProfileInput struct {
	Bio            string            `json:"bio"`
	Website        string            `json:"website"`
	Location       string            `json:"location"`
	Skills         string            `json:"skills"`
	GithubUsername string            `json:"github_username"`
	Social         map[string]string `json:"social"`
}

// socialNetworks are the keys accepted in the social map; anything else is
// dropped silently.
var socialNetworks = []string{"twitter", "instagram", "linkedin", "youtube", "codepen", "github"}

// Upsert creates the caller's profile or replaces it if one already exists.
func (s *ProfileService) Upsert(ctx context.Context, userID uint, input UpsertProfileInput) (*models.Profile, error) {
	var violations []string
	if strings.TrimSpace(input.Bio) == "" {
		violations = append(violations, "bio is required")
	}
	skills := SplitList(input.Skills)
	if len(skills) == 0 {
		violations = append(violations, "at least one skill is required")
	}
	if input.Website != "" {
		if err := validation.ValidateWebsiteURL(input.Website); err != nil {
			violations = append(violations, "website: "+err.Error())
		}
	}
	if len(violations) > 0 {
		return nil, models.NewValidationErrors(violations...)
	}

	social := make(map[string]string)
	for _, network := range socialNetworks {
		if v := strings.TrimSpace(input.Social[network]); v != "" {
			social[network] = v
		}
	}

	existing, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &models.Profile{
		UserID:         userID,
		Bio:            strings.TrimSpace(input.Bio),
		Website:        strings.TrimSpace(input.Website),
		Location:       strings.TrimSpace(input.Location),
		Skills:         skills,
		GithubUsername: strings.TrimSpace(input.GithubUsername),
		Social:         social,
	}

	if existing != nil {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
		if err := s.profileRepo.Update(ctx, profile); err != nil {
			return nil, err
		}
	} else {
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			return nil, err
		}
	}

	return s.loadWithGraph(ctx, profile)
}

// GetMine returns the caller's own profile.
func (s *ProfileService) GetMine(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.GetByUserID(ctx, userID)
}

// GetByUserID returns the profile owned by the given account, with its
// follower and following lists attached.
func (s *ProfileService) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.NewNotFoundError("Profile", userID)
	}
	return s.loadWithGraph(ctx, profile)
}

// List returns every profile with follower and following counts. The full
// summary lists are left off here; loading them for every profile on the
// directory page would be a per-row fan-out.
func (s *ProfileService) List(ctx context.Context) ([]models.Profile, error) {
	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		if err := s.loadCounts(ctx, &profiles[i]); err != nil {
			return nil, err
		}
	}
	return profiles, nil
}

func (s *ProfileService) loadWithGraph(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	following, err := s.followRepo.ListFollowing(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	followers, err := s.followRepo.ListFollowers(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	profile.Following = following
	profile.Followers = followers
	profile.FollowingCount = int64(len(following))
	profile.FollowersCount = int64(len(followers))
	return profile, nil
}

func (s *ProfileService) loadCounts(ctx context.Context, profile *models.Profile) error {
	following, err := s.followRepo.CountFollowing(ctx, profile.ID)
	if err != nil {
		return err
	}
	followers, err := s.followRepo.CountFollowers(ctx, profile.ID)
	if err != nil {
		return err
	}
	profile.FollowingCount = following
	profile.FollowersCount = followers
	return nil
}

// SplitList splits a comma separated string into trimmed non-empty items.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
