package utils

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/MauriicioRibotta/RuralJMSolution/internal/infrastructure/idp"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/utils/apierror"
)

const identityContextKey = "identity"

// SetIdentity stores the guard-resolved identity in the request context.
// It is written exactly once by the auth middleware and treated as read-only
// downstream.
func SetIdentity(c echo.Context, ident *idp.Identity) {
	c.Set(identityContextKey, ident)
}

func GetIdentityFromContext(c echo.Context) (*idp.Identity, apierror.ErrorResponse) {
	val := c.Get(identityContextKey)
	if val == nil {
		log.Warnf("route %s attempted to read nil identity from context", c.Request().URL)
		return nil, apierror.UnauthorizedError
	}

	ident, ok := val.(*idp.Identity)
	if !ok {
		log.Warnf("expected identity type at '%s' context key, got %T", identityContextKey, val)
		return nil, apierror.InternalServerError
	}
	return ident, nil
}
