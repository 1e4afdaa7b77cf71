package components

import (
	"travel-broker/internal/handler"
	"travel-broker/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAcceptanceHandler,
		api.NewBookingHandler,
		api.NewAdminHandler,
		api.NewProxyChatHandler,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	acceptance *api.AcceptanceHandler,
	booking *api.BookingHandler,
	admin *api.AdminHandler,
	proxyChat *api.ProxyChatHandler,
) handler.Handlers {
	return handler.Handlers{
		Acceptance: acceptance,
		Booking:    booking,
		Admin:      admin,
		ProxyChat:  proxyChat,
	}
}
