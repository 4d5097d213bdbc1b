package events

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/storemart/internal/config"
)

// Module provides the event publisher, nop when Kafka is not configured.
var Module = fx.Provide(newPublisher)

type publisherParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newPublisher(p publisherParams) Publisher {
	if len(p.Config.KafkaBrokers) == 0 {
		return NopPublisher{}
	}

	publisher := NewKafkaPublisher(p.Config.KafkaBrokers, p.Config.KafkaOrderTopic, p.Logger)
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return publisher.Close()
		},
	})
	return publisher
}
