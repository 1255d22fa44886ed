package middleware

import (
	"log"

	"kudos/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired is a Fiber middleware that verifies the session cookie.
// Requests without a valid session are redirected to the login path rather
// than answered with a data error.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(services.SessionCookieName)
		if tokenString == "" {
			return c.Redirect("/login", fiber.StatusFound)
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			log.Printf("Session validation failed: %v", err)
			return c.Redirect("/login", fiber.StatusFound)
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			return c.Redirect("/login", fiber.StatusFound)
		}

		// Store identity in Fiber context for subsequent handlers
		c.Locals("user_id", userID)

		return c.Next()
	}
}
