package components

import (
	"riad-booking/internal/handler"
	"riad-booking/internal/handler/api"
	"riad-booking/internal/handler/middleware"
	"riad-booking/internal/pkg/clock"
	"riad-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewRoomHandler,
		handler.NewHandlers,
		NewRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

func NewRateLimiter(cfg config.Config, clk clock.Clock) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimit, clk)
}
