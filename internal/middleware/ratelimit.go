package middleware

import (
	"context"
	"net/http"

	"github.com/stpnv0/TimeslotBooker/internal/auth"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit keys authenticated callers by user id and anonymous ones by
// client IP. On limiter errors it lets the request through when failOpen is
// set and answers 503 otherwise.
func RateLimit(l Limiter, failOpen bool, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		key := "ip:" + c.ClientIP()
		if actor := auth.ActorFromContext(c.Request.Context()); actor.Authenticated() {
			key = "user:" + actor.ID
		}

		ok, err := l.Allow(c.Request.Context(), key)
		if err != nil {
			log.LogAttrs(c.Request.Context(), logger.WarnLevel, "rate limiter error",
				logger.String("key", key),
				logger.String("error", err.Error()),
			)
			if failOpen {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, ginext.H{"error": "rate limiter unavailable"})
			return
		}

		if !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ginext.H{"error": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}
