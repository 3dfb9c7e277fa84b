package middleware

import (
	"errors"
	"log"
	"strings"

	"bolamarcada/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserContextKey is the Locals key under which the authenticated user is
// stored for downstream handlers.
const UserContextKey = "current_user"

// AuthRequired is a Fiber middleware that resolves the bearer token to a
// user record and stores it in the request context. An inactive account
// gets 403, everything else that fails gets 401.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && strings.EqualFold(parts[0], "Bearer")) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		user, err := authService.ResolveFromToken(parts[1])
		if err != nil {
			log.Printf("Token resolution failed: %v", err)
			if errors.Is(err, services.ErrForbidden) {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"message": "Account is inactive",
				})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		c.Locals(UserContextKey, user)
		return c.Next()
	}
}
