package components

import (
	"rovera-leads/internal/pkg/clock"
	"rovera-leads/internal/pkg/oauth"
	"rovera-leads/internal/pkg/session"
	"rovera-leads/internal/usecase"
	"rovera-leads/internal/usecase/commands"
	"rovera-leads/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	queries.NewPagination,
	fx.Annotate(
		func(r *oauth.Registry) *oauth.Registry { return r },
		fx.As(new(commands.ProviderLookup)),
	),
	fx.Annotate(
		func(s *session.Service) *session.Service { return s },
		fx.As(new(commands.SessionIssuer)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewLeadCommands,
		commands.NewAuthCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewLeadQueries,
		queries.NewSimulationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewSessionValidator,
	),
)
