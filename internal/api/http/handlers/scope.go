package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pixelcraft/agency-backoffice/internal/auth"
	"github.com/pixelcraft/agency-backoffice/internal/scope"
)

// deriveScope recomputes the caller's visibility boundary for this request.
// Scope is never carried across requests.
func deriveScope(c *fiber.Ctx, resolver *scope.Resolver) scope.Scope {
	return resolver.Derive(c.UserContext(), auth.IdentityFromContext(c))
}
