package components

import (
	"context"
	"log/slog"

	"riad-booking/internal/domain/booking"
	"riad-booking/internal/pkg/config"
	"riad-booking/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseBookingModule,
)

var usecaseBaseOption = fx.Provide(
	NewDiscountRules,
	NewSessionsOptions,
)

var usecaseBookingModule = fx.Module("usecase/booking",
	fx.Provide(
		usecase.NewGate,
		usecase.NewWorkflow,
		fx.Annotate(
			usecase.NewSessions,
			fx.As(fx.Self()),
			fx.As(new(usecase.SessionManager)),
		),
	),
	fx.Invoke(startSessionSweeper),
)

func NewDiscountRules(cfg config.Config) (booking.DiscountRules, error) {
	longStay, err := booking.NewPercentageDiscount(cfg.Booking.LongStayPercentOff)
	if err != nil {
		return booking.DiscountRules{}, err
	}
	promo, err := booking.NewPercentageDiscount(cfg.Booking.PromoPercentOff)
	if err != nil {
		return booking.DiscountRules{}, err
	}
	return booking.DiscountRules{
		LongStayNights: cfg.Booking.LongStayNights,
		LongStay:       longStay,
		PromoCode:      cfg.Booking.PromoCode,
		Promo:          promo,
	}, nil
}

func NewSessionsOptions(cfg config.Config, rules booking.DiscountRules) usecase.SessionsOptions {
	return usecase.SessionsOptions{
		Rules:   rules,
		IdleTTL: cfg.Booking.SessionIdleTTL,
	}
}

func startSessionSweeper(lc fx.Lifecycle, sessions *usecase.Sessions, cfg config.Config, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				sessions.RunSweeper(ctx, cfg.Booking.SweepInterval)
			}()
			logger.Info("Session sweeper started", "interval", cfg.Booking.SweepInterval, "idle_ttl", cfg.Booking.SessionIdleTTL)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
