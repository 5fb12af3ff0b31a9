package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/workfree/pocket-lawyer/internal/auth"
	"github.com/workfree/pocket-lawyer/internal/utils"
)

// UserIDKey is the context key holding the authenticated user id.
const UserIDKey = "userID"

// AuthRequired rejects requests without a valid bearer token and stores the
// authenticated user id in context.
func AuthRequired(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Authorization header is required")
		}

		userID, err := auth.ParseToken(secret, token)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token")
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// AuthOptional stores the user id in context when a valid bearer token is
// present. Requests without one (or with an invalid one) proceed anonymously.
func AuthOptional(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := bearerToken(c); token != "" {
			if userID, err := auth.ParseToken(secret, token); err == nil {
				c.Locals(UserIDKey, userID)
			}
		}
		return c.Next()
	}
}

// AuthedUserID returns the authenticated user id from context, if any.
func AuthedUserID(c *fiber.Ctx) (int, bool) {
	id, ok := c.Locals(UserIDKey).(int)
	return id, ok
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
