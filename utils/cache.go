package utils

import (
	"context"
	"log"
	"time"

	"localspot/config"

	"github.com/go-redis/redis/v8"
)

// StatsClient is the Redis client backing search counters and the trending
// query set.
var StatsClient *redis.Client

// InitStatsCache initializes the Redis client for search statistics.
func InitStatsCache() {
	StatsClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisStatsDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := StatsClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Stats): %v", err)
	}
}

// GetStatsClient returns the Redis client for search statistics.
func GetStatsClient() *redis.Client {
	if StatsClient == nil {
		InitStatsCache()
	}
	return StatsClient
}
