package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/storemart/internal/adapter/notifier"
	"github.com/polkiloo/storemart/internal/app"
	"github.com/polkiloo/storemart/internal/config"
	"github.com/polkiloo/storemart/internal/events"
	"github.com/polkiloo/storemart/internal/logger"
	"github.com/polkiloo/storemart/internal/pkg/auth"
	"github.com/polkiloo/storemart/internal/pkg/cache"
	"github.com/polkiloo/storemart/internal/server/http/handlers"
	"github.com/polkiloo/storemart/internal/server/http/router"
	"github.com/polkiloo/storemart/internal/storage/postgres"
	"github.com/polkiloo/storemart/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		cache.Module,
		events.Module,
		notifier.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.Pinger { return s }),
		fx.Provide(func(f *app.CommerceFacade) handlers.StoreFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
