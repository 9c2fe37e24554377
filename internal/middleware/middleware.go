package middleware

import (
	"net/http"
	"strings"
	"time"

	"linguaflow/internal/metrics"
	"linguaflow/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

func extractClaims(c echo.Context, tokens *service.TokenService) (*service.Claims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	claims, err := tokens.Verify(parts[1])
	if err != nil {
		// Expired and tampered tokens are reported identically.
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return claims, nil
}

// RequireAuth rejects requests without a valid bearer token and attaches the
// verified claims to the context.
func RequireAuth(tokens *service.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, tokens)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// OptionalAuth lets anonymous requests through, but a request that does
// present an Authorization header must carry a valid token.
func OptionalAuth(tokens *service.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("Authorization") == "" {
				return next(c)
			}
			claims, err := extractClaims(c, tokens)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom returns the verified claims set by RequireAuth/OptionalAuth,
// or nil for an anonymous request.
func ClaimsFrom(c echo.Context) *service.Claims {
	claims, _ := c.Get(ContextUserKey).(*service.Claims)
	return claims
}

// Instrument records request volume and handler latency.
func Instrument(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		metrics.RequestsTotal.Inc()
		start := time.Now()
		err := next(c)
		metrics.RequestDurationSeconds.Observe(time.Since(start).Seconds())
		return err
	}
}
