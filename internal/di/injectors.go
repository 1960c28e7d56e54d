//go:build wireinject
// +build wireinject

package di

import (
	"funneld/internal"
	"funneld/internal/controllers"
	"funneld/internal/mailer"
	"funneld/internal/providers"
	"funneld/internal/services"
	"funneld/internal/store"
	"funneld/internal/structures"

	wire "github.com/google/wire"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		store.NewCSVStore,
		store.NewZstdCompressor,
		store.NewBackupManager,
		store.NewScheduler,

		mailer.NewMailer,
		services.NewClock,
		services.NewSubscriptionService,
		services.NewStatsService,

		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
