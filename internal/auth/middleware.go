package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/pixelcraft/agency-backoffice/pkg/util"
)

const identityKey = "auth_identity"

// Middleware resolves the caller identity for every request. Resolution is
// fail-silent; role guards decide whether an anonymous caller may proceed.
type Middleware struct {
	resolver *SessionResolver
}

// NewMiddleware constructs middleware.
func NewMiddleware(resolver *SessionResolver) *Middleware {
	return &Middleware{resolver: resolver}
}

// Handle attaches the resolved identity to the request context.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	c.Locals(identityKey, m.resolver.Resolve(c.UserContext(), bearerToken(c)))
	return c.Next()
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// IdentityFromContext retrieves the resolved identity; anonymous when absent.
func IdentityFromContext(c *fiber.Ctx) Identity {
	val := c.Locals(identityKey)
	if val == nil {
		return Anonymous()
	}
	identity, ok := val.(Identity)
	if !ok {
		return Anonymous()
	}
	return identity
}

// RequireBackOffice admits admin and staff callers only.
func RequireBackOffice() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := IdentityFromContext(c)
		if identity.IsAnonymous() {
			return apperrors.NewUnauthorized("authentication required")
		}
		if !identity.IsAdmin() && !identity.IsStaffOnly() {
			return apperrors.NewForbidden("staff or admin role required")
		}
		return c.Next()
	}
}

// RequireAdmin admits admin callers only.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := IdentityFromContext(c)
		if identity.IsAnonymous() {
			return apperrors.NewUnauthorized("authentication required")
		}
		if !identity.IsAdmin() {
			return apperrors.NewForbidden("admin role required")
		}
		return c.Next()
	}
}
