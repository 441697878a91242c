package di

import (
	"go.uber.org/fx"

	"github.com/trangvu/shopmart/internal/adapter/events"
	"github.com/trangvu/shopmart/internal/adapter/geocode"
	"github.com/trangvu/shopmart/internal/app"
	"github.com/trangvu/shopmart/internal/config"
	"github.com/trangvu/shopmart/internal/logger"
	"github.com/trangvu/shopmart/internal/pkg/auth"
	"github.com/trangvu/shopmart/internal/server/http/handlers"
	"github.com/trangvu/shopmart/internal/server/http/router"
	"github.com/trangvu/shopmart/internal/storage/postgres"
	"github.com/trangvu/shopmart/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		geocode.Module,
		events.Module,
		usecase.Module,
		fx.Provide(func(f *app.ShopFacade) handlers.ShopFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
