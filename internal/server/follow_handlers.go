package server

import (
	"github.com/gofiber/fiber/v2"
)

// FollowProfile handles POST /api/profiles/:id/follow. Returns the caller's
// updated following list.
func (s *Server) FollowProfile(c *fiber.Ctx) error {
	profileID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	following, err := s.followService.Follow(c.Context(), currentUserID(c), profileID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(following)
}

// UnfollowProfile handles DELETE /api/profiles/:id/follow. Returns the
// caller's updated following list.
func (s *Server) UnfollowProfile(c *fiber.Ctx) error {
	profileID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	following, err := s.followService.Unfollow(c.Context(), currentUserID(c), profileID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(following)
}

// GetFollowing handles GET /api/profiles/:id/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	profileID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	following, err := s.followService.ListFollowing(c.Context(), profileID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(following)
}

// GetFollowers handles GET /api/profiles/:id/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	profileID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	followers, err := s.followService.ListFollowers(c.Context(), profileID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(followers)
}
