package ratelimit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SRHSoulja/pengubook-backend/internal/middleware/auth"
)

func newTestLimiter(t *testing.T, limit int) (echo.MiddlewareFunc, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return Middleware(Config{
		Client:    client,
		Logger:    zap.NewNop(),
		KeyPrefix: "ratelimit:test:",
		Limit:     limit,
		Window:    time.Hour,
	}), mr
}

func performLimitedRequest(t *testing.T, limiter echo.MiddlewareFunc, user *auth.AuthUser) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/account", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		auth.SetAuthUser(c, user)
	}

	handler := limiter(func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})
	require.NoError(t, handler(c))
	return rec
}

func TestMiddleware_AdmitsUpToLimit(t *testing.T) {
	limiter, _ := newTestLimiter(t, 2)
	user := &auth.AuthUser{ID: "user-1"}

	assert.Equal(t, http.StatusOK, performLimitedRequest(t, limiter, user).Code)
	assert.Equal(t, http.StatusOK, performLimitedRequest(t, limiter, user).Code)

	rec := performLimitedRequest(t, limiter, user)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "RATE_LIMITED", body["code"])
	retryAfter, ok := body["retryAfter"].(float64)
	require.True(t, ok)
	assert.Greater(t, retryAfter, float64(0))
}

func TestMiddleware_LimitsArePerUser(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1)

	assert.Equal(t, http.StatusOK, performLimitedRequest(t, limiter, &auth.AuthUser{ID: "a"}).Code)
	assert.Equal(t, http.StatusTooManyRequests, performLimitedRequest(t, limiter, &auth.AuthUser{ID: "a"}).Code)

	// A different user still has a fresh budget.
	assert.Equal(t, http.StatusOK, performLimitedRequest(t, limiter, &auth.AuthUser{ID: "b"}).Code)
}

func TestMiddleware_WindowExpiryResetsBudget(t *testing.T) {
	limiter, mr := newTestLimiter(t, 1)
	user := &auth.AuthUser{ID: "user-1"}

	assert.Equal(t, http.StatusOK, performLimitedRequest(t, limiter, user).Code)
	assert.Equal(t, http.StatusTooManyRequests, performLimitedRequest(t, limiter, user).Code)

	mr.FastForward(2 * time.Hour)

	assert.Equal(t, http.StatusOK, performLimitedRequest(t, limiter, user).Code)
}

func TestMiddleware_UnauthenticatedFallsThrough(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1)

	// The auth middleware owns rejecting anonymous requests.
	assert.Equal(t, http.StatusOK, performLimitedRequest(t, limiter, nil).Code)
	assert.Equal(t, http.StatusOK, performLimitedRequest(t, limiter, nil).Code)
}

func TestMiddleware_RedisOutageFailsOpen(t *testing.T) {
	limiter, mr := newTestLimiter(t, 1)
	mr.Close()

	rec := performLimitedRequest(t, limiter, &auth.AuthUser{ID: "user-1"})
	assert.Equal(t, http.StatusOK, rec.Code)
}
