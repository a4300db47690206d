package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/feed. Returns the posts authored by the accounts
// the caller follows, newest first.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	feed, err := s.feedService.GetFeed(c.Context(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(feed)
}
