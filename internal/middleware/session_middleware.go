package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CartSessionCookie names the cookie carrying the anonymous session
// identifier the cart is keyed by.
const CartSessionCookie = "cart_session"

// CartSession issues an anonymous session cookie when the request
// does not carry one, so a browser gets a stable cart before it ever
// logs in. The session ID is stored in the context for handlers.
func CartSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies(CartSessionCookie)
		if sessionID == "" {
			sessionID = uuid.New().String()
			c.Cookie(&fiber.Cookie{
				Name:     CartSessionCookie,
				Value:    sessionID,
				Expires:  time.Now().Add(24 * time.Hour),
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		c.Locals("cart_session", sessionID)
		return c.Next()
	}
}

// SessionID returns the cart session identifier for the request.
func SessionID(c *fiber.Ctx) string {
	id, _ := c.Locals("cart_session").(string)
	return id
}
