package http

import (
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/fitness-tracker/internal/config"
)

func newLimitedLoginApp(t *testing.T, cfg config.RateLimitConfig) *fiber.App {
	t.Helper()

	limiter := NewLoginRateLimiter(cfg)
	t.Cleanup(limiter.Stop)

	// ProxyHeader lets each test pick the client address per request.
	app := fiber.New(fiber.Config{ProxyHeader: fiber.HeaderXForwardedFor})
	RegisterMiddlewares(app, zap.NewNop(), nil, 0)
	app.Post("/token", limiter.Handle, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func loginAttempt(t *testing.T, app *fiber.App, ip string) (*nethttp.Response, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(nethttp.MethodPost, "/token", nil)
	req.Header.Set(fiber.HeaderXForwardedFor, ip)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var parsed map[string]any
	if len(raw) > 0 && json.Valid(raw) {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp, parsed
}

func TestLoginLimiterAllowsWithinBurst(t *testing.T) {
	app := newLimitedLoginApp(t, config.RateLimitConfig{LoginPerMinute: 1, LoginBurst: 3})

	for i := 0; i < 3; i++ {
		resp, _ := loginAttempt(t, app, "203.0.113.9")
		assert.Equal(t, nethttp.StatusOK, resp.StatusCode, "attempt %d", i+1)
	}
}

func TestLoginLimiterThrottlesBeyondBurst(t *testing.T) {
	app := newLimitedLoginApp(t, config.RateLimitConfig{LoginPerMinute: 1, LoginBurst: 2})

	for i := 0; i < 2; i++ {
		resp, _ := loginAttempt(t, app, "203.0.113.9")
		require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	}

	resp, body := loginAttempt(t, app, "203.0.113.9")
	require.Equal(t, nethttp.StatusTooManyRequests, resp.StatusCode)
	errObj := body["error"].(map[string]any)
	assert.Equal(t, "RATE_LIMITED", errObj["code"])
	assert.Equal(t, "too many login attempts", errObj["message"])
}

func TestLoginLimiterIsolatesClients(t *testing.T) {
	app := newLimitedLoginApp(t, config.RateLimitConfig{LoginPerMinute: 1, LoginBurst: 1})

	resp, _ := loginAttempt(t, app, "203.0.113.9")
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	resp, _ = loginAttempt(t, app, "203.0.113.9")
	require.Equal(t, nethttp.StatusTooManyRequests, resp.StatusCode)

	// A different address carries its own bucket.
	resp, _ = loginAttempt(t, app, "203.0.113.10")
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
}

func TestLoginLimiterSweepDropsIdleClients(t *testing.T) {
	limiter := NewLoginRateLimiter(config.RateLimitConfig{LoginPerMinute: 10, LoginBurst: 10})
	defer limiter.Stop()

	limiter.limiterFor("stale")
	limiter.limiterFor("fresh")

	limiter.mu.Lock()
	limiter.clients["stale"].lastSeen = time.Now().Add(-2 * limiterIdleTTL)
	limiter.mu.Unlock()

	limiter.sweep(time.Now().Add(-limiterIdleTTL))

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.NotContains(t, limiter.clients, "stale")
	assert.Contains(t, limiter.clients, "fresh")
}
