package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitAI caps AI suggestion calls per user with a fixed one-minute
// window in redis. A nil client or non-positive limit disables the check,
// and redis errors fail open.
func RateLimitAI(rdb *redis.Client, perMinute int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || perMinute <= 0 {
			c.Next()
			return
		}
		key := fmt.Sprintf("ai_rate:%s:%s", GetCurrentUserID(c), time.Now().UTC().Format("200601021504"))
		// INCR and EXPIRE travel in one pipeline so the counter cannot be
		// left without a TTL.
		pipe := rdb.TxPipeline()
		incr := pipe.Incr(c.Request.Context(), key)
		pipe.Expire(c.Request.Context(), key, time.Minute)
		if _, err := pipe.Exec(c.Request.Context()); err != nil {
			c.Next()
			return
		}
		if incr.Val() > int64(perMinute) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"code": 42901, "message": "too many suggestion requests, try again in a minute", "data": nil})
			return
		}
		c.Next()
	}
}
