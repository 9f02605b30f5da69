package config

import (
	"log"
	"time"

	"github.com/redis/rueidis"

	"github.com/maiquockhanh06/Timeflow-app/internal/cache"
)

func NewRedisClient(addr string) rueidis.Client {
	redisClient, err := rueidis.NewClient(
		rueidis.ClientOption{
			InitAddress: []string{addr},
		},
	)
	if err != nil {
		log.Fatalf("failed to create redis client: %v", err)
	}

	return redisClient
}

// NewSummaryCache returns a Redis-backed cache when enabled, and a cache
// that never hits otherwise. The returned func releases the client.
func NewSummaryCache(cfg Config) (cache.SummaryCache, func()) {
	if !cfg.RedisEnabled {
		return cache.NopSummaryCache{}, func() {}
	}

	client := NewRedisClient(cfg.RedisAddr)
	ttl := time.Duration(cfg.StatsCacheTTLSeconds) * time.Second

	return cache.NewRedisSummaryCache(client, cfg.RedisKeyPrefix, ttl), client.Close
}
