package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-registration/internal/domain"
	apperrors "github.com/spec-kit/event-registration/pkg/util"
)

// RequireAccount ensures a caller is authenticated.
func RequireAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := AccountFromContext(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}

// RequireAdmin ensures the authenticated account holds the admin role.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		account, ok := AccountFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if account.Role != domain.RoleAdmin {
			return apperrors.NewForbidden("admin role required")
		}
		return c.Next()
	}
}
