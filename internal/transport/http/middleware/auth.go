package middleware

import (
	"net/http"
	"strings"

	"clinic-invitations/internal/api"
	"clinic-invitations/internal/auth"
	"clinic-invitations/internal/entities"

	"github.com/gofiber/fiber/v2"
)

const actorKey = "actor"

// RequireRole authenticates the bearer token and enforces the caller role.
// Missing or invalid credentials yield 401, a valid token with the wrong role
// yields 403. The resolved actor is stored on the request context.
func RequireRole(verifier *auth.TokenVerifier, role entities.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return unauthenticated(c)
		}

		actor, err := verifier.Verify(token)
		if err != nil {
			return unauthenticated(c)
		}
		if actor.Role != role {
			return c.Status(http.StatusForbidden).JSON(api.ErrorResponse{Error: api.ErrorBody{
				Code:    api.FORBIDDEN,
				Message: "wrong role for this resource",
			}})
		}

		c.Locals(actorKey, actor)
		return c.Next()
	}
}

// ActorFromCtx returns the authenticated actor stored by RequireRole. The zero
// actor means the route ran without authentication.
func ActorFromCtx(c *fiber.Ctx) entities.Actor {
	actor, _ := c.Locals(actorKey).(entities.Actor)
	return actor
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(http.StatusUnauthorized).JSON(api.ErrorResponse{Error: api.ErrorBody{
		Code:    api.UNAUTHENTICATED,
		Message: "missing or invalid credentials",
	}})
}
