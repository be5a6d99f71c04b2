package config

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis kết nối Redis, cache và rate limit không bắt buộc
// nên lỗi kết nối chỉ cảnh báo chứ không dừng app
func ConnectRedis() (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     GetEnv("REDIS_ADDR", "localhost:6379"),
		Password: GetEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	if err := rdb.Ping(Ctx).Err(); err != nil {
		log.Printf("Warning: không kết nối được Redis: %v", err)
		return nil, err
	}

	RedisClient = rdb
	return rdb, nil
}
