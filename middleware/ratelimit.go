package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"hotel/response"
)

const (
	rateLimitMax    = 120
	rateLimitWindow = time.Minute
)

// RateLimitMiddleware giới hạn request theo IP bằng cửa sổ cố định
// trên Redis. Redis lỗi hoặc không cấu hình thì cho qua.
func RateLimitMiddleware(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		ctx := context.Background()
		key := fmt.Sprintf("ratelimit:%s", c.ClientIP())

		// INCR và đặt TTL đi chung một MULTI/EXEC để counter không bao
		// giờ tồn tại thiếu TTL khi kết nối đứt giữa chừng
		pipe := rdb.TxPipeline()
		incr := pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, rateLimitWindow)
		if _, err := pipe.Exec(ctx); err != nil {
			// Không chặn request chỉ vì Redis lỗi
			c.Next()
			return
		}

		if incr.Val() > rateLimitMax {
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
