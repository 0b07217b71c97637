package handlers

import (
	"strings"

	"inkwell/internal/auth"
	"inkwell/internal/domain"
	applog "inkwell/internal/log"

	"github.com/gofiber/fiber/v2"
)

const principalKey = "principal"

func bearerToken(c *fiber.Ctx) string {
	h := c.Get(fiber.HeaderAuthorization)
	if after, ok := strings.CutPrefix(h, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return ""
}

// RequireAuth admits requests carrying a valid bearer credential and parks
// the verified principal in the request context. Authentication failures
// answer 403 (inherited contract; see DESIGN.md).
func RequireAuth(tokens *auth.Tokens) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok := bearerToken(c)
		if tok == "" {
			applog.Security(c, "access.denied.notoken", nil)
			return jsonMessage(c, fiber.StatusForbidden, "Access denied, no token provided.")
		}
		p, err := tokens.Verify(tok)
		if err != nil {
			applog.Security(c, "access.denied.badtoken", nil)
			return jsonMessage(c, fiber.StatusForbidden, "Invalid token.")
		}
		c.Locals(principalKey, p)
		c.Locals("user_id", p.ID)
		return c.Next()
	}
}

// RequireAdmin composes after RequireAuth; a missing or empty principal is
// rejected, so it can never admit a request that skipped authentication.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := c.Locals(principalKey).(auth.Principal)
		if !ok || p.ID == "" || p.Role != domain.RoleAdmin {
			applog.Security(c, "access.denied.admin", nil)
			return jsonMessage(c, fiber.StatusForbidden, "Admin role required.")
		}
		return c.Next()
	}
}
