package server

import (
	"errors"

	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param, label string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+label))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// currentUser returns the user resolved by AuthRequired.
func (s *Server) currentUser(c *fiber.Ctx) *models.User {
	return c.Locals("user").(*models.User)
}

// likeIdentity is the identity token used to deduplicate likes: the
// caller's network address. It conflates visitors behind shared NAT,
// but the public like endpoints have no stronger identity to use.
func likeIdentity(c *fiber.Ctx) string {
	return c.IP()
}
