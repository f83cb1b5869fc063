package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/deppfellow/geotemp/internal/errs"
	"github.com/deppfellow/geotemp/internal/metrics"
	"github.com/deppfellow/geotemp/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const rateLimitKeyPrefix = "geotemp:ratelimit:"

// Counter counts hits for key inside the fixed window that contains now.
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RedisCounter keeps fixed-window hit counts in Redis. Each window gets its
// own key, which expires together with the window.
type RedisCounter struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisCounter(client *redis.Client) *RedisCounter {
	return &RedisCounter{
		client: client,
		now:    time.Now,
	}
}

func (rc *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	windowStart := rc.now().Truncate(window).Unix()
	windowKey := fmt.Sprintf("%s%s:%d", rateLimitKeyPrefix, key, windowStart)

	pipe := rc.client.TxPipeline()
	incr := pipe.Incr(ctx, windowKey)
	pipe.Expire(ctx, windowKey, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("rate limit counter: %w", err)
	}

	return incr.Val(), nil
}

// RateLimitMiddleware limits requests per client IP.
//
// The limiter fails open: when the counter is unavailable the request is
// served and the failure is counted in metrics.
type RateLimitMiddleware struct {
	server  *server.Server
	counter Counter
}

func NewRateLimitMiddleware(s *server.Server, counter Counter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server:  s,
		counter: counter,
	}
}

func (r *RateLimitMiddleware) enabled() bool {
	cfg := r.server.Config.RateLimit
	return r.counter != nil && cfg != nil && cfg.Enabled
}

// Limit rejects a client with 429 once it exceeds the configured number of
// requests in the current window.
func (r *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !r.enabled() {
				return next(c)
			}

			cfg := r.server.Config.RateLimit
			hits, err := r.counter.Incr(c.Request().Context(), c.RealIP(), cfg.Window)
			if err != nil {
				metrics.RateLimiterErrorsTotal.Inc()
				GetLogger(c).Warn().Err(err).Msg("rate limiter unavailable, letting request through")
				return next(c)
			}

			if hits > cfg.Requests {
				r.RecordRateLimitHit(c.Path())
				return errs.NewTooManyRequestsError("Too many requests, slow down")
			}

			return next(c)
		}
	}
}

// RecordRateLimitHit counts a rejected request and reports it to New Relic
// when the agent runs.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	metrics.RateLimitedTotal.Inc()

	if r.server.LoggerService != nil && r.server.LoggerService.GetApplication() != nil {
		r.server.LoggerService.GetApplication().RecordCustomEvent("RateLimitHit", map[string]any{
			"endpoint": endpoint,
		})
	}
}
