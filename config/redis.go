package config

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var (
	// RedisClient is nil when REDIS_URL is unset; callers treat that as "no shared cache".
	RedisClient *redis.Client
	Ctx         = context.Background()
)

func ConnectRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		Logger.Warn("⚠️  REDIS_URL not set, rate limiting and shared menu cache disabled")
		return
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		Logger.Fatal("❌ invalid REDIS_URL", zap.Error(err))
	}

	RedisClient = redis.NewClient(opt)

	res, err := RedisClient.Ping(Ctx).Result()
	if err != nil {
		Logger.Fatal("❌ failed to connect to Redis", zap.Error(err))
	}
	Logger.Info("✅ Connected to Redis", zap.String("ping", res))
}

// PingRedis reports whether Redis answers. A disabled Redis is not an error.
func PingRedis(ctx context.Context) error {
	if RedisClient == nil {
		return nil
	}
	return RedisClient.Ping(ctx).Err()
}

func CloseRedis() {
	if RedisClient != nil {
		_ = RedisClient.Close()
	}
}
