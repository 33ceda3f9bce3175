package bootstrap

import (
	"riad-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	ObservabilityModule,
	JWTModule,
	components.BookingAPIModule,
	components.UseCaseModule,
	components.HandlerModule,
)
