package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/onlinedrinkshop/backend/internal/config"
)

// client pairs a token bucket with the time it was last used so idle
// buckets can be evicted after the configured TTL.
type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewTokenBucket returns a per-client-IP token bucket middleware. Each
// client gets a bucket of cfg.Burst tokens refilled once per
// cfg.RefillEvery; requests that find the bucket empty are rejected with
// 429 and a Retry-After hint.
func NewTokenBucket(cfg config.RateLimitConfig) echo.MiddlewareFunc {
	if !cfg.Enabled {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}

	var (
		mu      sync.Mutex
		clients = map[string]*client{}
	)
	limit := rate.Every(cfg.RefillEvery)

	take := func(key string) (bool, time.Duration) {
		mu.Lock()
		defer mu.Unlock()
		now := time.Now()
		cl, ok := clients[key]
		if !ok {
			cl = &client{limiter: rate.NewLimiter(limit, cfg.Burst)}
			clients[key] = cl
			// Evict idle buckets while we hold the lock anyway.
			for k, other := range clients {
				if now.Sub(other.lastSeen) > cfg.TTL {
					delete(clients, k)
				}
			}
		}
		cl.lastSeen = now
		res := cl.limiter.Reserve()
		if delay := res.Delay(); delay > 0 {
			res.Cancel()
			return false, delay
		}
		return true, 0
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, retryIn := take(c.RealIP())
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Burst))
			if !allowed {
				secs := int(retryIn / time.Second)
				if retryIn%time.Second > 0 {
					secs++
				}
				c.Response().Header().Set("Retry-After", strconv.Itoa(secs))
				return c.JSON(http.StatusTooManyRequests, echo.Map{
					"error":       "too_many_requests",
					"message":     "rate limit exceeded",
					"retry_after": secs,
				})
			}
			return next(c)
		}
	}
}
