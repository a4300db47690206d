package service

import (
	"context"
	"strings"

	"showcase/internal/models"
	"showcase/internal/repository"
	"showcase/internal/validation"
)

// PostService provides project post business logic.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// CreatePostInput carries the fields for a new project post. TechTags is a
// single comma separated string as submitted by the client.
type CreatePostInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	TechTags    string   `json:"tech_tags"`
	WebsiteURL  string   `json:"website_url"`
	RepoURL     string   `json:"repo_url"`
}

// CreatePost validates and stores a new post for the given author. All
// violations are reported together rather than one at a time.
func (s *PostService) CreatePost(ctx context.Context, userID uint, input CreatePostInput) (*models.Post, error) {
	var violations []string
	if strings.TrimSpace(input.Title) == "" {
		violations = append(violations, "title is required")
	}
	tags := SplitList(input.TechTags)
	if len(tags) == 0 {
		violations = append(violations, "at least one tech tag is required")
	}
	if strings.TrimSpace(input.WebsiteURL) == "" {
		violations = append(violations, "website URL is required")
	} else if err := validation.ValidateWebsiteURL(input.WebsiteURL); err != nil {
		violations = append(violations, "website URL: "+err.Error())
	}
	if input.RepoURL != "" {
		if err := validation.ValidateWebsiteURL(input.RepoURL); err != nil {
			violations = append(violations, "repo URL: "+err.Error())
		}
	}
	if len(violations) > 0 {
		return nil, models.NewValidationErrors(violations...)
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Images:      input.Images,
		TechTags:    tags,
		WebsiteURL:  strings.TrimSpace(input.WebsiteURL),
		RepoURL:     strings.TrimSpace(input.RepoURL),
		UserID:      userID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// GetPost returns a single post with author, comments and likers.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// ListPosts returns every post, newest first.
func (s *PostService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	return s.postRepo.List(ctx)
}

// ListPostsByAuthor returns an author's posts, newest first. An author with
// no posts yields an empty list, not an error.
func (s *PostService) ListPostsByAuthor(ctx context.Context, userID uint) ([]*models.Post, error) {
	posts, err := s.postRepo.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	return posts, nil
}

// DeletePost removes the post with its comments and likes. Only the author
// may delete it.
func (s *PostService) DeletePost(ctx context.Context, postID, requesterID uint) error {
	return s.postRepo.Delete(ctx, postID, requesterID)
}

// LikePost records the caller's like and returns the updated liker list.
// Liking a post twice is rejected.
func (s *PostService) LikePost(ctx context.Context, postID, userID uint) ([]models.UserSummary, error) {
	if _, err := s.postRepo.GetMeta(ctx, postID); err != nil {
		return nil, err
	}
	if err := s.postRepo.Like(ctx, postID, userID); err != nil {
		return nil, err
	}
	return s.postRepo.ListLikers(ctx, postID)
}

// UnlikePost removes the caller's like and returns the updated liker list.
func (s *PostService) UnlikePost(ctx context.Context, postID, userID uint) ([]models.UserSummary, error) {
	if _, err := s.postRepo.GetMeta(ctx, postID); err != nil {
		return nil, err
	}
	if err := s.postRepo.Unlike(ctx, postID, userID); err != nil {
		return nil, err
	}
	return s.postRepo.ListLikers(ctx, postID)
}
