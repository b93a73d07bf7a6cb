package bootstrap

import (
	"rovera-leads/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	SessionModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
