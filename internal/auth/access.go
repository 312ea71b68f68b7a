package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vgu-mess/mess-portal/internal/domain"
)

// RequireAuthenticated lets only AUTHENTICATED sessions through.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := SessionFromContext(c)
		if !ok || session.State() != domain.SessionStateAuthenticated {
			return domain.ErrNotAuthenticated
		}
		return c.Next()
	}
}
