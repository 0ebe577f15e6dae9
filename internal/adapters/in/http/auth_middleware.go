package http

import (
	"net/http"
	"strings"

	"deliverytrack/internal/core/domain/model/kernel"
	"deliverytrack/internal/core/ports"
	"deliverytrack/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// agentContextKey is where the middleware stores the authenticated agent id.
const agentContextKey = "authenticatedAgentID"

// AgentAuthMiddleware authenticates the Bearer credential on every request
// and stores the resolved agent id on the echo context. Requests without a
// valid credential never reach the handlers.
func AgentAuthMiddleware(provider ports.AuthProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			credential, ok := bearerCredential(ctx.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return unauthorized(ctx, "Missing bearer credential")
			}

			agentID, err := provider.Authenticate(ctx.Request().Context(), credential)
			if err != nil {
				return unauthorized(ctx, "Invalid credential")
			}

			ctx.Set(agentContextKey, agentID)
			return next(ctx)
		}
	}
}

// bearerCredential extracts the token from an "Authorization: Bearer x" header.
func bearerCredential(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return header[len(prefix):], true
}

// agentFromContext returns the agent id stored by AgentAuthMiddleware.
func agentFromContext(ctx echo.Context) (kernel.UUID, bool) {
	agentID, ok := ctx.Get(agentContextKey).(kernel.UUID)
	return agentID, ok
}

func unauthorized(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, servers.Error{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}
