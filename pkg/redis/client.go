package redis

import (
	"context"

	"github.com/Tech-T1tans/StudyBuddy-version-control/pkg/config"

	"github.com/redis/go-redis/v9"
)

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// Ping verifies the connection is usable.
func Ping(ctx context.Context, client *redis.Client) error {
	return client.Ping(ctx).Err()
}
