package cache

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/storemart/internal/config"
)

// Module provides the discount catalog cache, falling back to a nop
// implementation when Redis is not configured.
var Module = fx.Options(
	fx.Provide(newCatalog),
)

type catalogParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newCatalog(p catalogParams) DiscountCatalog {
	if p.Config.RedisAddress == "" {
		return NopCatalog{}
	}

	catalog := NewRedisCatalog(p.Config.RedisAddress, p.Config.DiscountCacheTTL, p.Logger)
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return catalog.Close()
		},
	})
	return catalog
}
