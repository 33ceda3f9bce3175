package bootstrap

import (
	"log/slog"

	"riad-booking/internal/pkg/clock"
	"riad-booking/internal/pkg/config"
	"riad-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// NewJWTService returns a disabled service when no secret is configured;
// outbound calls then go unsigned.
func NewJWTService(cfg config.Config, clk clock.Clock, logger *slog.Logger) *jwt.Service {
	if cfg.BookingAPI.TokenSecret == "" {
		logger.Warn("BOOKING_API_TOKEN_SECRET is not set, booking API calls are unsigned")
		return nil
	}
	if cfg.BookingAPI.TokenTTL <= 0 {
		panic("invalid BOOKING_API_TOKEN_TTL: must be positive")
	}
	return jwt.NewService(cfg.BookingAPI.TokenSecret, cfg.BookingAPI.TokenTTL, clk)
}
