package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"nomaddesk/internal/pkg/config"
	"nomaddesk/internal/usecase/queries"
)

// StatsCache keeps per-booking capacity accounting in Redis with a
// short TTL. Commands invalidate on every membership change, so the
// TTL only bounds staleness after missed invalidations.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{client: client, ttl: ttl}
}

func NewRedisClient(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	cleanup := func() { _ = client.Close() }
	return client, cleanup, nil
}

func (c *StatsCache) Get(ctx context.Context, bookingID uuid.UUID) (*queries.GroupStatsView, error) {
	data, err := c.client.Get(ctx, statsKey(bookingID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var stats queries.GroupStatsView
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *StatsCache) Set(ctx context.Context, bookingID uuid.UUID, stats *queries.GroupStatsView) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, statsKey(bookingID), payload, c.ttl).Err()
}

func (c *StatsCache) Invalidate(ctx context.Context, bookingID uuid.UUID) error {
	return c.client.Del(ctx, statsKey(bookingID)).Err()
}

func statsKey(bookingID uuid.UUID) string {
	return fmt.Sprintf("stats:booking:%s", bookingID)
}
