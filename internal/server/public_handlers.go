package server

import (
	"strings"

	"coachblog/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetPublishedPosts handles GET /api/posts?limit=N. Published summaries
// only; the full HTML body is omitted.
func (s *Server) GetPublishedPosts(c *fiber.Ctx) error {
	// Non-numeric or missing limits fall through as 0; the repository
	// applies the default and clamps.
	limit := c.QueryInt("limit", 0)

	posts, err := s.postRepo.ListPublished(c.Context(), limit)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(fiber.Map{"posts": posts})
}

// GetPublishedPost handles GET /api/posts/:slug. Published only; drafts
// are indistinguishable from missing posts.
func (s *Server) GetPublishedPost(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("slug is required"))
	}

	post, err := s.postRepo.GetBySlugPublished(c.Context(), slug)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(fiber.Map{"post": post})
}
