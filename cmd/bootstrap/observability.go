package bootstrap

import (
	"riad-booking/internal/pkg/clock"
	"riad-booking/internal/pkg/metrics"

	"go.uber.org/fx"
)

var ObservabilityModule = fx.Module("observability",
	fx.Provide(
		metrics.New,
		clock.NewRealClock,
	),
)
