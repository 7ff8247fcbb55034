package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"todoweb/internal/adapter/telemetry"
)

// RateLimitEndpointConfig is a fixed-window budget for one route pattern.
type RateLimitEndpointConfig struct {
	Requests int
	Window   time.Duration
}

type RateLimiter struct {
	cache   *cache.Cache
	config  map[string]RateLimitEndpointConfig
	logger  zerolog.Logger
	metrics *telemetry.AppMetrics
}

type rateLimitEntry struct {
	Count     int
	ResetTime time.Time
}

// NewRateLimiter keys windows by client IP. Mutating endpoints get a
// tighter budget than the listing pages.
func NewRateLimiter(logger zerolog.Logger, metrics *telemetry.AppMetrics) *RateLimiter {
	c := cache.New(5*time.Minute, 10*time.Minute)

	configs := map[string]RateLimitEndpointConfig{
		"GET /todos/": {
			Requests: 120,
			Window:   time.Minute,
		},
		"POST /todos/new/": {
			Requests: 30,
			Window:   time.Minute,
		},
		"POST /todos/:id/edit/": {
			Requests: 30,
			Window:   time.Minute,
		},
		"POST /todos/:id/delete/": {
			Requests: 30,
			Window:   time.Minute,
		},
		"POST /todos/:id/toggle-complete/": {
			Requests: 60,
			Window:   time.Minute,
		},
		"default": {
			Requests: 120,
			Window:   time.Minute,
		},
	}

	return &RateLimiter{
		cache:   c,
		config:  configs,
		logger:  logger,
		metrics: metrics,
	}
}

func (rl *RateLimiter) RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()

		if path == "" {
			path = c.Request.URL.Path
		}

		methodPath := c.Request.Method + " " + path

		config, exists := rl.config[methodPath]

		if !exists {
			config = rl.config["default"]
		}

		key := methodPath + "|" + c.ClientIP()
		now := time.Now()

		entry := rateLimitEntry{Count: 0, ResetTime: now.Add(config.Window)}

		if cached, found := rl.cache.Get(key); found {
			entry = cached.(rateLimitEntry)

			if now.After(entry.ResetTime) {
				entry = rateLimitEntry{Count: 0, ResetTime: now.Add(config.Window)}
			}
		}

		entry.Count++
		rl.cache.Set(key, entry, time.Until(entry.ResetTime))

		remaining := config.Requests - entry.Count

		if remaining < 0 {
			remaining = 0
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", config.Requests))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))

		if entry.Count > config.Requests {
			rl.metrics.RecordRateLimitHit(path)

			rl.logger.Warn().
				Str("method", c.Request.Method).
				Str("path", path).
				Str("client_ip", c.ClientIP()).
				Int("count", entry.Count).
				Int("limit", config.Requests).
				Msg("rate limit exceeded")

			retryAfter := int(time.Until(entry.ResetTime).Seconds()) + 1

			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			c.String(http.StatusTooManyRequests, "Too many requests")
			c.Abort()
			return
		}

		c.Next()
	}
}
