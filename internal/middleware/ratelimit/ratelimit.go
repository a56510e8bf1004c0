// Package ratelimit provides a redis-backed fixed-window limiter for
// sensitive operations.
package ratelimit

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/SRHSoulja/pengubook-backend/internal/middleware/auth"
)

// Config holds the rate limiter configuration.
type Config struct {
	Client *redis.Client
	Logger *zap.Logger
	// KeyPrefix namespaces the counters, e.g. "ratelimit:account_delete:".
	KeyPrefix string
	// Limit is the number of requests admitted per Window.
	Limit int
	// Window is the rolling window the limit applies to.
	Window time.Duration
}

// Middleware limits authenticated callers to Limit requests per Window,
// keyed by user id. Unauthenticated requests fall through; the auth
// middleware handles those.
func Middleware(config Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := auth.GetUser(c)
			if user == nil {
				return next(c)
			}

			key := fmt.Sprintf("%s%s", config.KeyPrefix, user.ID)
			ctx := c.Request().Context()

			count, err := config.Client.Incr(ctx, key).Result()
			if err != nil {
				// A broken limiter must not take the endpoint down with it.
				config.Logger.Error("Rate limit counter unavailable",
					zap.String("key", key),
					zap.Error(err))
				return next(c)
			}
			if count == 1 {
				if err := config.Client.Expire(ctx, key, config.Window).Err(); err != nil {
					config.Logger.Warn("Failed to set rate limit expiry",
						zap.String("key", key),
						zap.Error(err))
				}
			}

			if count > int64(config.Limit) {
				ttl, _ := config.Client.TTL(ctx, key).Result()
				config.Logger.Warn("Rate limit exceeded",
					zap.String("user_id", user.ID),
					zap.Int64("count", count),
					zap.Duration("retry_after", ttl))
				return c.JSON(http.StatusTooManyRequests, echo.Map{
					"error":      "Too many requests, try again later",
					"code":       "RATE_LIMITED",
					"retryAfter": int(ttl.Seconds()),
				})
			}

			return next(c)
		}
	}
}
