package cache

import (
	"context"
	"fmt"

	"hospital-appointment/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	if err := Ping(context.Background(), client); err != nil {
		client.Close()
		return nil, err
	}

	logrus.Info("Successfully connected to Redis")

	return client, nil
}

// Ping reports whether Redis answers. Slot holds depend on it.
func Ping(ctx context.Context, client *redis.Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return nil
}
