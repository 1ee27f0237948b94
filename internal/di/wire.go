//go:build wireinject
// +build wireinject

package di

import (
	"PairLens/pkg/config"
	"PairLens/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideSeriesFetcher,
		ProvideCache,
		ProvideClickHouseClient,
		ProvideKafkaProducer,

		// Repositories
		ProvideSignalStorage,
		ProvideSignalPublisher,

		// Use cases
		ProvideSignalSink,
		ProvideUnitRootUseCase,
		ProvidePairsUseCase,

		// HTTP
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
