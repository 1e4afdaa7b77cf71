package components

import (
	"travel-broker/internal/pkg/clock"
	"travel-broker/internal/pkg/config"
	"travel-broker/internal/usecase/commands"
	"travel-broker/internal/usecase/handlers"
	"travel-broker/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	func(cfg config.Config) commands.AcceptanceConfig {
		return commands.AcceptanceConfig{BroadcastAddress: cfg.Notify.BroadcastAddress}
	},
	func(cfg config.Config) handlers.NotifyConfig {
		return handlers.NotifyConfig{BroadcastAddress: cfg.Notify.BroadcastAddress}
	},
	func(cfg config.Config) commands.ReconcileConfig {
		return commands.ReconcileConfig{
			StaleAfter: cfg.Reconcile.StaleAfter,
			BatchSize:  cfg.Reconcile.BatchSize,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingStatusUseCase,
		commands.NewAcceptanceUseCase,
		commands.NewReconcileUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
	),
)

// ClockModule is shared by the use cases and the notifier dedup window.
var ClockModule = fx.Provide(clock.NewRealClock)
