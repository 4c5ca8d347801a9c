// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"time"

	"inkwell/internal/config"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/session"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// SessionCookie is the name of the cookie carrying the opaque session
// token. The cookie is the only transport for session identity.
const SessionCookie = "inkwell_session"

// Server holds all dependencies and provides handlers
type Server struct {
	config      *config.Config
	sessions    *session.Manager
	userRepo    repository.UserRepository
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	prom        *fiberprometheus.FiberPrometheus
	app         *fiber.App
}

// New creates a Server using already-initialized dependencies; the
// bootstrap layer owns repository and session store construction.
func New(cfg *config.Config, users repository.UserRepository, posts repository.PostRepository,
	comments repository.CommentRepository, sessions *session.Manager) *Server {
	return &Server{
		config:      cfg,
		sessions:    sessions,
		userRepo:    users,
		postRepo:    posts,
		commentRepo: comments,
		prom:        fiberprometheus.New("inkwell-api"),
	}
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for log correlation
	app.Use(requestid.New())
	app.Use(middleware.ContextMiddleware())

	if s.prom != nil {
		app.Use(s.prom.Middleware)
	}

	// Security headers
	app.Use(helmet.New())

	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	// Credentialed CORS: the session cookie must survive cross-origin
	// requests from the front end.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
		MaxAge:           86400,
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	if s.prom != nil {
		s.prom.RegisterAt(app, "/metrics")
	}

	api := app.Group("/api")

	// Auth routes
	api.Post("/login", s.Login)
	api.Post("/logout", s.Logout)
	api.Get("/user", s.CurrentUser)

	// Public read routes
	api.Get("/posts", s.GetPosts)
	api.Get("/posts/:id", s.GetPost)
	api.Get("/posts/:id/comments", s.GetComments)

	// Per-visitor like routes: identity is the caller's network address,
	// so no session is involved.
	api.Post("/posts/:id/like", s.LikePost)
	api.Delete("/posts/:id/like", s.UnlikePost)
	api.Get("/posts/:id/like", s.GetLikeStatus)

	// Authenticated write routes
	api.Post("/posts/:id/comments", s.AuthRequired(), s.CreateComment)

	// Admin write routes; update and delete additionally enforce
	// authorship inside the handler.
	api.Post("/posts", s.AuthRequired(), s.AdminRequired(), s.CreatePost)
	api.Patch("/posts/:id", s.AuthRequired(), s.AdminRequired(), s.UpdatePost)
	api.Delete("/posts/:id", s.AuthRequired(), s.AdminRequired(), s.DeletePost)
	api.Delete("/posts/:id/comments/:commentId", s.AuthRequired(), s.AdminRequired(), s.DeleteComment)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests. Storage is process
// memory, so readiness reduces to the session store answering.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	sessionStatus := "healthy"
	status := fiber.StatusOK
	if _, err := s.sessions.Resolve(c.Context(), "readiness-probe"); err != nil {
		sessionStatus = "unhealthy"
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"status": sessionStatus,
		"checks": fiber.Map{
			"sessions": sessionStatus,
		},
		"time": time.Now(),
	})
}

// AuthRequired returns middleware admitting only requests that carry a
// valid session cookie. The resolved user is stored in locals.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := s.sessions.Resolve(c.Context(), c.Cookies(SessionCookie))
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		}
		if user == nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authentication required"))
		}

		c.Locals("user", user)
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, user.ID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// AdminRequired returns middleware that rejects non-admin users with 403.
// Must be placed after AuthRequired so that the user is available in locals.
func (s *Server) AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := c.Locals("user").(*models.User)
		if !user.IsAdmin {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewForbiddenError("Admin access required"))
		}
		return c.Next()
	}
}

// Start runs the HTTP server until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Inkwell API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			middleware.Logger.ErrorContext(c.UserContext(), "unhandled error", "error", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	middleware.Logger.Info("server starting", "port", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server and the session store.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			middleware.Logger.Error("error shutting down HTTP server", "error", err)
		}
	}

	if err := s.sessions.Close(); err != nil {
		middleware.Logger.Error("error closing session store", "error", err)
	}

	middleware.Logger.Info("server shutdown complete")
	return nil
}
