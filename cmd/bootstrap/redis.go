package bootstrap

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"nomaddesk/internal/infra/cache"
	"nomaddesk/internal/pkg/config"
	"nomaddesk/internal/usecase/queries"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			NewStatsCache,
			fx.As(new(queries.StatsCache)),
		),
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, cleanup, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return client, nil
}

func NewStatsCache(client *redis.Client, cfg config.Config) *cache.StatsCache {
	return cache.NewStatsCache(client, cfg.Redis.StatsTTL)
}
