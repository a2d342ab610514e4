package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/MauriicioRibotta/RuralJMSolution/internal/infrastructure/idp"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/utils"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/utils/apierror"
)

type AuthMiddlewareConfig struct {
	Verifier idp.TokenVerifier
}

// NewAuthMiddleware is the first guard tier: it rejects requests without a
// valid bearer token before any repository is reached, and attaches the
// resolved identity to the context exactly once. Ownership scoping (the
// second tier) happens inside the services as data filtering.
func NewAuthMiddleware(cfg *AuthMiddlewareConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := extractBearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return c.JSON(http.StatusUnauthorized, apierror.UnauthorizedError)
			}

			ident, err := cfg.Verifier.Verify(c.Request().Context(), token)
			if err != nil {
				log.Debugf("token rejected: %v", err)
				return c.JSON(http.StatusUnauthorized, apierror.UnauthorizedError)
			}

			utils.SetIdentity(c, ident)
			return next(c)
		}
	}
}

// extractBearerToken requires the scheme to be exactly "Bearer".
func extractBearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || scheme != "Bearer" {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}
