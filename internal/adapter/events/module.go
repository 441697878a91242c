package events

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/trangvu/shopmart/internal/config"
)

// Module provides a Publisher. An empty broker URL yields a no-op publisher
// so the service runs without RabbitMQ.
var Module = fx.Options(
	fx.Provide(newPublisher),
	fx.Invoke(registerLifecycle),
)

type publisherParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newPublisher(p publisherParams) (Publisher, error) {
	if p.Config.BrokerURL == "" {
		p.Logger.Info("broker URL not set, event publishing disabled")
		return NewNoopPublisher(p.Logger), nil
	}
	return NewAMQPPublisher(p.Config.BrokerURL, p.Config.EventQueue, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, publisher Publisher) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return publisher.Close()
		},
	})
}
