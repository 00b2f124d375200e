// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"time"

	"coachblog/internal/auth"
	"coachblog/internal/cache"
	"coachblog/internal/config"
	"coachblog/internal/database"
	"coachblog/internal/middleware"
	"coachblog/internal/repository"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	promMiddleware *fiberprometheus.FiberPrometheus
	adminRepo      repository.AdminRepository
	postRepo       repository.PostRepository
	credentials    *auth.CredentialStore
	tokens         *auth.TokenIssuer
}

// NewServer creates a new server instance with all dependencies.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	srv := NewServerWithDeps(cfg, db, cache.GetClient())
	srv.promMiddleware = fiberprometheus.New("coachblog-api")
	return srv, nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Used by tests and any bootstrap layer that establishes the DB itself.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	adminRepo := repository.NewAdminRepository(db)
	return &Server{
		config:      cfg,
		db:          db,
		redis:       redisClient,
		adminRepo:   adminRepo,
		postRepo:    repository.NewPostRepository(db),
		credentials: auth.NewCredentialStore(adminRepo),
		tokens:      auth.NewTokenIssuer(cfg.JWTSecret),
	}
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// OpenTelemetry request spans
	app.Use(middleware.Tracing())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid)
	app.Use(middleware.StructuredLogger())

	// CORS runs before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:3000,http://127.0.0.1:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		MaxAge:       86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/", s.Root)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	api := app.Group("/api")

	// Public read surface
	api.Get("/health", s.HealthCheck)
	api.Get("/posts", s.GetPublishedPosts)
	api.Get("/posts/:slug", s.GetPublishedPost)

	// Admin surface
	admin := api.Group("/admin")
	admin.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)

	protected := admin.Group("", s.AuthRequired())
	protected.Get("/me", s.Me)
	protected.Get("/posts", s.ListPosts)
	protected.Post("/posts", s.CreatePost)
	protected.Put("/posts/:id", s.UpdatePost)
	protected.Delete("/posts/:id", s.DeletePost)
}

// Root handles GET / with a running banner.
func (s *Server) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"ok":      true,
		"message": "The Coach Angelo backend is running",
	})
}

// HealthCheck handles GET /api/health.
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"ok":      false,
			"service": "coachblog-backend",
		})
	}

	return c.JSON(fiber.Map{
		"ok":      true,
		"service": "coachblog-backend",
	})
}
