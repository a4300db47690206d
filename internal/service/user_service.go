// Package service contains the business logic layer.
package service

import (
	"context"
	"crypto/md5"
	"fmt"
	"strings"

	"showcase/internal/models"
	"showcase/internal/repository"
	"showcase/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// UserService provides account business logic.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// RegisterInput carries the fields required to create an account.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account. The avatar is derived from the email so
// every account has one from the start.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	var violations []string
	if err := validation.ValidateName(input.Name); err != nil {
		violations = append(violations, err.Error())
	}
	if err := validation.ValidateEmail(input.Email); err != nil {
		violations = append(violations, err.Error())
	}
	if err := validation.ValidatePassword(input.Password); err != nil {
		violations = append(violations, err.Error())
	}
	if len(violations) > 0 {
		return nil, models.NewValidationErrors(violations...)
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("User already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:     strings.TrimSpace(input.Name),
		Email:    email,
		Password: string(hashed),
		Avatar:   GravatarURL(email),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies the credentials and returns the matching account.
// Wrong email and wrong password produce the same error so the response does
// not leak which accounts exist.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	return user, nil
}

// GetUser returns the account by id.
func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateAccountInput carries the editable account fields.
type UpdateAccountInput struct {
	Name string `json:"name"`
}

// UpdateAccount changes the account's display name. Comments written before
// the change keep their snapshotted name.
func (s *UserService) UpdateAccount(ctx context.Context, userID uint, input UpdateAccountInput) (*models.User, error) {
	if err := validation.ValidateName(input.Name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Name = strings.TrimSpace(input.Name)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount removes the account, its profile and its follow edges. Posts,
// comments and likes authored by the account are kept.
func (s *UserService) DeleteAccount(ctx context.Context, userID uint) error {
	return s.userRepo.DeleteAccount(ctx, userID)
}

// GravatarURL returns the gravatar image URL for an email address.
func GravatarURL(email string) string {
	hash := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", hash)
}
