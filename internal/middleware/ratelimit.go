package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/buildtrack-dev/buildtrack/pkg/apperror"
	"github.com/buildtrack-dev/buildtrack/pkg/response"
)

// RateLimit applies a fixed-window limit per client IP on mutating
// endpoints. A nil client disables limiting entirely, and redis
// failures fail open so the store never gates the API.
func RateLimit(rdb *redis.Client, max int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := fmt.Sprintf("rate_limit:ip:%s", c.ClientIP())

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			log.Warn().Err(err).Msg("rate limit check failed, allowing request")
			c.Next()
			return
		}
		if count == 1 {
			if err := rdb.Expire(ctx, key, window).Err(); err != nil {
				log.Warn().Err(err).Msg("failed to set rate limit window")
			}
		}

		if count > max {
			response.Error(c, apperror.ErrRateLimitExceeded)
			c.Abort()
			return
		}

		c.Next()
	}
}
