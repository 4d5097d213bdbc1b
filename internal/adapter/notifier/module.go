package notifier

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/storemart/internal/config"
)

// Module exposes the notifier client, nop when unconfigured.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	if p.Config.NotifierAddress == "" {
		return NopClient{}, nil
	}
	return NewHTTPClient(p.Config.NotifierAddress, p.Logger)
}
