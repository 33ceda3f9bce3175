package components

import (
	"log/slog"

	"riad-booking/internal/infra/bookingapi"
	"riad-booking/internal/pkg/config"
	"riad-booking/internal/pkg/jwt"
	"riad-booking/internal/pkg/metrics"
	"riad-booking/internal/usecase"

	"go.uber.org/fx"
)

var BookingAPIModule = fx.Module("bookingapi",
	fx.Provide(
		fx.Annotate(
			NewBookingAPIClient,
			fx.As(new(usecase.RoomCatalog)),
			fx.As(new(usecase.PricingService)),
			fx.As(new(usecase.AvailabilityService)),
			fx.As(new(usecase.ReservationService)),
		),
	),
)

func NewBookingAPIClient(cfg config.Config, tokens *jwt.Service, m *metrics.Metrics, logger *slog.Logger) *bookingapi.Client {
	return bookingapi.NewClient(cfg.BookingAPI, tokens, m, logger)
}
