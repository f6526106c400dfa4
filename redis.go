package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"financial-dashboard/internal/finance"
	"financial-dashboard/internal/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const cacheKeyPrefix = "dashboard:"

// initRedis initializes the Redis connection
func initRedis(redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(fmt.Sprintf("redis://%s", redisURL))
	if err != nil {
		// Fallback to simple connection
		opt = &redis.Options{
			Addr: redisURL,
		}
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

// responseCache is a read-through cache of dashboard responses. A nil
// cache, or one without a client, misses every lookup.
type responseCache struct {
	client *redis.Client
	ttl    time.Duration
}

func newResponseCache(client *redis.Client, ttl time.Duration) *responseCache {
	if client == nil || ttl <= 0 {
		return nil
	}
	return &responseCache{client: client, ttl: ttl}
}

func cacheKey(endpoint string, f finance.Filter, extra string) string {
	return cacheKeyPrefix + endpoint + ":" + f.Key() + extra
}

func (c *responseCache) get(ctx context.Context, key string, dst any) bool {
	if c == nil {
		return false
	}
	cached, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(cached), dst) == nil
}

func (c *responseCache) set(ctx context.Context, key string, v any) {
	if c == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.client.SetEx(ctx, key, data, c.ttl).Err(); err != nil {
		logger.Log.Warn("Failed to cache response", zap.String("key", key), zap.Error(err))
	}
}

// invalidate drops every cached dashboard response.
func (c *responseCache) invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	iter := c.client.Scan(ctx, 0, cacheKeyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		logger.Log.Warn("Failed to scan cached responses", zap.Error(err))
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logger.Log.Warn("Failed to invalidate cached responses", zap.Error(err))
	}
}

// hook adapts invalidation to finance.WithRecordHook.
func (c *responseCache) hook() finance.RecordHook {
	return func(ctx context.Context, _ finance.Transaction) {
		c.invalidate(ctx)
	}
}
