package middleware

import (
	"todolist/internal/models"
	"todolist/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CurrentUserKey is the fiber.Ctx Locals key holding the authenticated user.
const CurrentUserKey = "currentUser"

// SessionRequired resolves the session cookie before every protected handler.
// Requests without a valid session are redirected to the login page; the
// guarded operation never runs.
func SessionRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := authService.ResolveSession(c.Cookies(services.SessionCookieName))
		if err != nil {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}

		c.Locals(CurrentUserKey, user)
		return c.Next()
	}
}

// CurrentUser returns the user stored by SessionRequired. It must only be
// called from handlers registered behind that middleware.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(CurrentUserKey).(*models.User)
	return user
}
