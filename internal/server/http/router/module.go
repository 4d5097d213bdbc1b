package router

import (
	"go.uber.org/fx"

	"github.com/polkiloo/storemart/internal/server/http/middleware"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Options(
	fx.Provide(middleware.NewMetrics),
	fx.Provide(Setup),
)
