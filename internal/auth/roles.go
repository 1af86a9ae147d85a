package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/fitness-tracker/pkg/util"
)

// RequireAdmin ensures the resolved principal holds the admin role.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("could not validate credentials")
		}
		if !principal.IsAdmin() {
			return apperrors.NewForbidden("you are not an admin")
		}
		return c.Next()
	}
}

// RequireAuthenticated ensures a principal was resolved by the middleware.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthorized("could not validate credentials")
		}
		return c.Next()
	}
}
