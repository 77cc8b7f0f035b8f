package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"sanad-backend/internal/shared/response"
)

// WindowCounter increments a fixed-window counter and returns its value.
type WindowCounter interface {
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimit caps requests per client IP for the route it guards. Counter
// state lives in redis so the limit holds across workers.
func RateLimit(counter WindowCounter, limit int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", c.FullPath(), c.ClientIP())

		count, err := counter.IncrWindow(c.Request.Context(), key, window)
		if err != nil {
			// Fail open: an unreachable counter must not take the
			// public inquiry form down with it.
			log.Warn().Err(err).Msg("rate limiter unavailable")
			c.Next()
			return
		}

		if count > limit {
			response.TooManyRequests(c, "too many requests, try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
