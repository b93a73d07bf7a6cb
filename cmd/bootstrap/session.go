package bootstrap

import (
	"rovera-leads/internal/pkg/config"
	"rovera-leads/internal/pkg/oauth"
	"rovera-leads/internal/pkg/session"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewSessionService,
		NewOAuthRegistry,
	),
)

func NewSessionService(cfg config.Config) *session.Service {
	if cfg.Session.Duration <= 0 {
		panic("invalid SESSION_DURATION: must be positive")
	}
	return session.NewService(cfg.Session.Secret, cfg.Session.Duration)
}

func NewOAuthRegistry(cfg config.Config) *oauth.Registry {
	return oauth.NewRegistry(cfg.OAuth)
}
