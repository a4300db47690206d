package service

import (
	"context"
	"strings"

	"showcase/internal/models"
	"showcase/internal/repository"
)

// CommentService provides comment business logic.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

// NewCommentService returns a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository, userRepo repository.UserRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// AddComment attaches a comment to the post and returns the post's full
// comment list. The author's name and avatar are captured at write time so
// the comment keeps its attribution even if the account changes later.
func (s *CommentService) AddComment(ctx context.Context, postID, userID uint, text string) ([]models.Comment, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, models.NewValidationError("Comment text is required")
	}

	if _, err := s.postRepo.GetMeta(ctx, postID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:       postID,
		UserID:       userID,
		AuthorName:   user.Name,
		AuthorAvatar: user.Avatar,
		Text:         trimmed,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.ListByPost(ctx, postID)
}

// DeleteComment removes a comment and returns the post's remaining comments.
// Only the comment author may delete it.
func (s *CommentService) DeleteComment(ctx context.Context, postID, commentID, requesterID uint) ([]models.Comment, error) {
	if _, err := s.postRepo.GetMeta(ctx, postID); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.PostID != postID {
		return nil, models.NewNotFoundError("Comment", commentID)
	}
	if comment.UserID != requesterID {
		return nil, models.NewUnauthorizedError("You can only delete your own comments")
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return nil, err
	}

	return s.commentRepo.ListByPost(ctx, postID)
}

// ListComments returns the post's comments, newest first.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	if _, err := s.postRepo.GetMeta(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID)
}
