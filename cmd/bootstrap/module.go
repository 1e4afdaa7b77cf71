package bootstrap

import (
	"travel-broker/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	components.ClockModule,
	LoggerModule,
	DBModule,
	components.PersistenceModule,
	NotifierModule,
	EventBusModule,
	components.UseCaseModule,
	components.HandlerModule,
	WorkerModule,
)
