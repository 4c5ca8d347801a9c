package server

import (
	"errors"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/session"
	"inkwell/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Login handles POST /api/login. On success it issues a session cookie.
// Unknown username and wrong password produce the same status and body.
// An authenticated user without the admin flag is logged straight back
// out with 403: this deployment has no non-admin logins.
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if fields := validation.Login(req.Username, req.Password); fields != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError(fields))
	}

	user, sess, err := s.sessions.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			loginAttempts.WithLabelValues("invalid").Inc()
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid credentials"))
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	if !user.IsAdmin {
		_ = s.sessions.Destroy(c.Context(), sess.Token)
		loginAttempts.WithLabelValues("forbidden").Inc()
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Only admin users can log in"))
	}

	loginAttempts.WithLabelValues("success").Inc()
	s.setSessionCookie(c, sess.Token)
	return c.JSON(user)
}

// Logout handles POST /api/logout. Idempotent: logging out without an
// active session still succeeds.
func (s *Server) Logout(c *fiber.Ctx) error {
	token := c.Cookies(SessionCookie)
	if err := s.sessions.Destroy(c.Context(), token); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	s.clearSessionCookie(c)
	return c.SendStatus(fiber.StatusOK)
}

// CurrentUser handles GET /api/user.
func (s *Server) CurrentUser(c *fiber.Ctx) error {
	user, err := s.sessions.Resolve(c.Context(), c.Cookies(SessionCookie))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	if user == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Not logged in"))
	}
	return c.JSON(user)
}

func (s *Server) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   s.config.Env == "production",
	})
}

func (s *Server) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   s.config.Env == "production",
		Expires:  time.Now().Add(-time.Hour),
	})
}
