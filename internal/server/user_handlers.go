package server

import (
	"github.com/gofiber/fiber/v2"

	"showcase/internal/models"
	"showcase/internal/service"
)

// GetCurrentUser handles GET /api/users/me
func (s *Server) GetCurrentUser(c *fiber.Ctx) error {
	user, err := s.userService.GetUser(c.Context(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// UpdateCurrentUser handles PUT /api/users/me
func (s *Server) UpdateCurrentUser(c *fiber.Ctx) error {
	var input service.UpdateAccountInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateAccount(c.Context(), currentUserID(c), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// DeleteAccount handles DELETE /api/users/me. The account, its profile and
// its follow edges are removed; posts, comments and likes remain.
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	if err := s.userService.DeleteAccount(c.Context(), currentUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Account deleted"})
}

// GetUserPosts handles GET /api/users/:id/posts
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	posts, err := s.postService.ListPostsByAuthor(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}
