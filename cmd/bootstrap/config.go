package bootstrap

import (
	"rovera-leads/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.PaginationConfig { return cfg.Pagination },
	),
)
