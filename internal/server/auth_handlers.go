package server

import (
	"strings"

	"coachblog/internal/auth"
	"coachblog/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Login handles POST /api/admin/login
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Email and password are required"))
	}

	admin, err := s.credentials.Verify(c.Context(), req.Email, req.Password)
	if err != nil {
		return s.respondError(c, err)
	}

	token, err := s.tokens.Issue(admin)
	if err != nil {
		return s.respondError(c, models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"token": token,
		"admin": admin.Profile(),
	})
}

// Me handles GET /api/admin/me
func (s *Server) Me(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*auth.Claims)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authorization required"))
	}
	return c.JSON(fiber.Map{"user": claims})
}

// AuthRequired is a middleware enforcing a valid bearer token on write and
// admin-view routes. The decoded claims become the acting identity.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		tokenString := ""
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}

		claims, err := s.tokens.Verify(tokenString)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		adminID, err := claims.AdminID()
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token claims"))
		}

		c.Locals("claims", claims)
		c.Locals("adminID", adminID)

		return c.Next()
	}
}
