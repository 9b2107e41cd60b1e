package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/config"
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimiter is a fixed window limiter for the catalog view routes, backed by
// Redis. Without Redis every request passes, and a Redis error lets the
// request through.
func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		client := config.RedisClient
		if client == nil {
			c.Next()
			return
		}
		ctx := c.Request.Context()
		key := rateKey(c)

		pipe := client.TxPipeline()
		incr := pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, window)
		ttl := pipe.PTTL(ctx, key)
		if _, err := pipe.Exec(ctx); err != nil {
			config.Logger.Warn("⚠️ rate limiter unavailable, letting request through", zap.Error(err))
			c.Next()
			return
		}

		rate := viewRate(maxRequests, incr.Val(), ttl.Val(), window, time.Now())
		c.Set("rateLimiter", rate)
		c.Header("X-RateLimit-Limit", strconv.Itoa(rate.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(rate.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(rate.ResetAt.Unix(), 10))

		if int(incr.Val()) > maxRequests {
			c.Header("Retry-After", strconv.Itoa(rate.ResetInSeconds))
			c.JSON(http.StatusTooManyRequests, models.ApiResponse{
				Message: "Too many requests",
				Error:   true,
				Rate:    rate,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// rateKey scopes the window to the client and route. Requests against one
// view (events, reads, close) count per view id, so a busy view does not
// starve the client's other views; view creation counts per client.
func rateKey(c *gin.Context) string {
	key := "rl:views:" + c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()
	if id := c.Param("id"); id != "" {
		key += ":" + id
	}
	return key
}

// viewRate derives the limiter state from the window count and the key's
// remaining time to live. A missing TTL counts as a fresh window.
func viewRate(maxRequests int, count int64, ttl, window time.Duration, now time.Time) *models.RateLimiter {
	if ttl <= 0 {
		ttl = window
	}
	remaining := maxRequests - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return &models.RateLimiter{
		Limit:          maxRequests,
		Remaining:      remaining,
		ResetAt:        now.Add(ttl).Truncate(time.Second),
		ResetInSeconds: int(ttl.Round(time.Second) / time.Second),
	}
}
