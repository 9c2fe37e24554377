package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"linguaflow/internal/model"
	"linguaflow/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newContext(auth string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newTokenService(t *testing.T) *service.TokenService {
	t.Helper()
	ts, err := service.NewTokenService("testsecret", time.Minute)
	require.NoError(t, err)
	return ts
}

func TestExtractClaims(t *testing.T) {
	ts := newTokenService(t)

	// missing header
	ctx, _ := newContext("")
	_, err := extractClaims(ctx, ts)
	require.Error(t, err)

	// bad format
	ctx, _ = newContext("BadHeader")
	_, err = extractClaims(ctx, ts)
	require.Error(t, err)

	// invalid token
	ctx, _ = newContext("Bearer invalid")
	_, err = extractClaims(ctx, ts)
	require.Error(t, err)

	// valid token
	user := model.User{ID: uuid.New(), Email: "alice@example.com", Name: "Alice"}
	tok, err := ts.Issue(user)
	require.NoError(t, err)
	ctx, _ = newContext("Bearer " + tok)
	claims, err := extractClaims(ctx, ts)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, user.Email, claims.Email)
}

func TestRequireAuth(t *testing.T) {
	ts := newTokenService(t)
	user := model.User{ID: uuid.New()}
	tok, err := ts.Issue(user)
	require.NoError(t, err)

	// success path
	ctx, rec := newContext("Bearer " + tok)
	called := false
	handler := RequireAuth(ts)(func(c echo.Context) error {
		called = true
		cl := ClaimsFrom(c)
		require.NotNil(t, cl)
		require.Equal(t, user.ID, cl.UserID)
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(ctx))
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)

	// missing token
	ctx, _ = newContext("")
	called = false
	err = RequireAuth(ts)(func(echo.Context) error { called = true; return nil })(ctx)
	require.Error(t, err)
	require.False(t, called)
}

func TestOptionalAuth(t *testing.T) {
	ts := newTokenService(t)

	// anonymous passes through without claims
	ctx, _ := newContext("")
	called := false
	err := OptionalAuth(ts)(func(c echo.Context) error {
		called = true
		require.Nil(t, ClaimsFrom(c))
		return nil
	})(ctx)
	require.NoError(t, err)
	require.True(t, called)

	// present-but-invalid token is rejected
	ctx, _ = newContext("Bearer garbage")
	called = false
	err = OptionalAuth(ts)(func(echo.Context) error { called = true; return nil })(ctx)
	require.Error(t, err)
	require.False(t, called)

	// valid token attaches claims
	user := model.User{ID: uuid.New()}
	tok, err := ts.Issue(user)
	require.NoError(t, err)
	ctx, _ = newContext("Bearer " + tok)
	err = OptionalAuth(ts)(func(c echo.Context) error {
		cl := ClaimsFrom(c)
		require.NotNil(t, cl)
		require.Equal(t, user.ID, cl.UserID)
		return nil
	})(ctx)
	require.NoError(t, err)
}

func TestExpiredAndTamperedLookTheSame(t *testing.T) {
	ts := newTokenService(t)

	other, err := service.NewTokenService("othersecret", time.Minute)
	require.NoError(t, err)
	tampered, err := other.Issue(model.User{ID: uuid.New()})
	require.NoError(t, err)

	ctx, _ := newContext("Bearer " + tampered)
	_, tamperedErr := extractClaims(ctx, ts)
	require.Error(t, tamperedErr)

	he, ok := tamperedErr.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, he.Code)
	require.Equal(t, "invalid token", he.Message)
}

func TestInstrument(t *testing.T) {
	ctx, rec := newContext("")
	err := Instrument(func(c echo.Context) error { return c.String(http.StatusOK, "ok") })(ctx)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)
}
