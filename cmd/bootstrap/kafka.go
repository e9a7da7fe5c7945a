package bootstrap

import (
	"context"

	"go.uber.org/fx"

	"nomaddesk/internal/infra/notify"
	"nomaddesk/internal/infra/stream"
	"nomaddesk/internal/pkg/config"
)

var KafkaModule = fx.Module("kafka",
	fx.Provide(
		fx.Annotate(
			NewKafkaProducer,
			fx.As(new(notify.Publisher)),
		),
	),
)

func NewKafkaProducer(lc fx.Lifecycle, cfg config.Config) *stream.Producer {
	producer := stream.NewProducer(cfg.Kafka)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return producer.Close()
		},
	})

	return producer
}
