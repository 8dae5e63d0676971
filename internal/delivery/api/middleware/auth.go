// Package middleware contains the echo middleware specific to the API server.
package middleware

import (
	"log/slog"
	"strings"

	"guildbook/internal/delivery/api/response"
	deliverycontext "guildbook/internal/delivery/context"
	"guildbook/internal/domain/entity"
	domainerrors "guildbook/internal/domain/errors"
	"guildbook/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	ctxKeyGuildID   = "guildID"
	ctxKeySessionID = "sessionID"
	ctxKeyRoles     = "roles"
)

// AuthMiddleware authenticates guild session tokens.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer token and stores the session on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Cabeçalho Authorization ausente")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Formato de token inválido, use Bearer")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, domainerrors.ErrSessionExpired) {
				return response.Unauthorized(c, "SESSION_EXPIRED", "Sessão expirada")
			}

			return response.Unauthorized(c, "INVALID_TOKEN", "Token inválido")
		}
		if claims.GuildID == "" || claims.SessionID == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Token sem sessão de guilda")
		}

		c.Set(ctxKeyGuildID, claims.GuildID)
		c.Set(ctxKeySessionID, claims.SessionID)
		c.Set(ctxKeyRoles, claims.Roles)

		ctx := deliverycontext.WithGuildID(c.Request().Context(), claims.GuildID)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("guild_id", claims.GuildID)))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole rejects sessions lacking requiredRole. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := GetRoles(c)
			if !ok || !entity.RolesFromStrings(roles).Contains(requiredRole) {
				return response.Forbidden(c, "FORBIDDEN", "Permissão negada: requer papel '"+requiredRole.String()+"'")
			}

			return next(c)
		}
	}
}

// GetGuildID returns the guild of the authenticated session.
func GetGuildID(c echo.Context) (string, bool) {
	id, ok := c.Get(ctxKeyGuildID).(string)

	return id, ok && id != ""
}

// GetSessionID returns the id of the authenticated session.
func GetSessionID(c echo.Context) (string, bool) {
	id, ok := c.Get(ctxKeySessionID).(string)

	return id, ok && id != ""
}

// GetRoles returns the roles of the authenticated session.
func GetRoles(c echo.Context) ([]string, bool) {
	roles, ok := c.Get(ctxKeyRoles).([]string)

	return roles, ok
}
