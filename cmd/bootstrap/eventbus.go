package bootstrap

import (
	"log/slog"

	"travel-broker/internal/usecase/eventbus"
	"travel-broker/internal/usecase/handlers"
	"travel-broker/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventBusModule = fx.Module("eventbus",
	fx.Provide(
		eventbus.New,
		func(bus *eventbus.Bus) shared.EventPublisher { return bus },
		handlers.NewBookingCreatedNotifier,
	),
	fx.Invoke(RegisterEventHandlers),
)

// RegisterEventHandlers runs before the HTTP server starts accepting requests.
func RegisterEventHandlers(bus *eventbus.Bus, notifier *handlers.BookingCreatedNotifier, logger *slog.Logger) {
	bus.Register(notifier)
	for _, h := range handlers.NewAuditLogHandlers(logger) {
		bus.Register(h)
	}
	logger.Info("event handlers registered", slog.Any("events", bus.RegisteredEvents()))
}
