package components

import (
	"rovera-leads/internal/handler"
	"rovera-leads/internal/handler/api"
	"rovera-leads/internal/handler/middleware"
	"rovera-leads/internal/infra/db"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewLeadHandler,
		api.NewSimulationHandler,
		api.NewAuthHandler,
		fx.Annotate(
			func(p *db.Pinger) *db.Pinger { return p },
			fx.As(new(api.Pinger)),
		),
		api.NewHealthHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(lead *api.LeadHandler, sim *api.SimulationHandler, auth *api.AuthHandler, health *api.HealthHandler) handler.Handlers {
	return handler.Handlers{
		Lead:       lead,
		Simulation: sim,
		Auth:       auth,
		Health:     health,
	}
}
