package server

import (
	"log/slog"

	"coachblog/internal/middleware"
	"coachblog/internal/models"
	"coachblog/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ListPosts handles GET /api/admin/posts. This is the full admin view,
// drafts included, newest created first.
func (s *Server) ListPosts(c *fiber.Ctx) error {
	posts, err := s.postRepo.List(c.Context())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"posts": posts})
}

// CreatePost handles POST /api/admin/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var input validation.PostInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	normalized, err := validation.Normalize(input)
	if err != nil {
		return s.respondError(c, err)
	}

	post, err := s.postRepo.Create(c.Context(), normalized)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"post": post})
}

// UpdatePost handles PUT /api/admin/posts/:id as a full-record update:
// supplied fields overlay the stored row, then the whole record is
// re-normalized.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	existing, err := s.postRepo.GetByID(c.Context(), id)
	if err != nil {
		return s.respondError(c, err)
	}

	var input validation.PostInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	normalized, err := validation.Normalize(input.MergeInto(existing))
	if err != nil {
		return s.respondError(c, err)
	}

	post, err := s.postRepo.Update(c.Context(), existing, normalized)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(fiber.Map{"post": post})
}

// DeletePost handles DELETE /api/admin/posts/:id. There is no soft-delete.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postRepo.Delete(c.Context(), id); err != nil {
		return s.respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// respondError maps repository and workflow errors onto the response
// taxonomy. Unrecognized errors become a generic 500; the detail only goes
// to the server log.
func (s *Server) respondError(c *fiber.Ctx, err error) error {
	status := models.StatusFor(err)
	if status == fiber.StatusInternalServerError {
		middleware.Logger.Error("request error",
			slog.String("path", c.Path()),
			slog.String("error", err.Error()),
		)
	}
	return models.RespondWithError(c, status, err)
}
