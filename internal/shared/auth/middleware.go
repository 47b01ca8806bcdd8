package auth

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

const claimsContextKey = "auth.claims"

// Middleware validates the bearer token and stores the claims on the request
// context for downstream handlers.
func Middleware(validator TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := ExtractToken(c.Request(), "token")
			claims, err := validator.Validate(token)
			if err != nil {
				if errors.Is(err, ErrMissingToken) {
					return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			StoreClaims(c, claims)
			return next(c)
		}
	}
}

// StoreClaims attaches validated claims to the request context.
func StoreClaims(c echo.Context, claims *Claims) {
	c.Set(claimsContextKey, claims)
}

// ClaimsFromEcho returns the claims stored by Middleware, or nil when the
// request was not authenticated.
func ClaimsFromEcho(c echo.Context) *Claims {
	claims, _ := c.Get(claimsContextKey).(*Claims)
	return claims
}
