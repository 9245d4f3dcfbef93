package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Somye55/colbin-recruitment-platform/internal/response"
)

// RateLimiter is a fixed-window counter in redis, keyed per route and
// client IP. It is the injected replacement for ad-hoc in-memory counters:
// the state lives in redis, the limiter itself is stateless.
type RateLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
}

func NewRateLimiter(rdb *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{rdb: rdb, limit: limit, window: window}
}

// Handle counts the request and aborts with 429 once the window is full.
// With no redis configured, or when redis is unreachable, requests pass
// (fail open: throttling is protection, not correctness).
func (l *RateLimiter) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil || l.rdb == nil || l.limit <= 0 {
			c.Next()
			return
		}
		ctx := c.Request.Context()
		key := fmt.Sprintf("ratelimit:%s:%s", c.FullPath(), c.ClientIP())
		n, err := l.rdb.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if n == 1 {
			l.rdb.Expire(ctx, key, l.window)
		}
		if n > int64(l.limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Body{
				Success: false,
				Message: "too many requests, try again later",
			})
			return
		}
		c.Next()
	}
}
