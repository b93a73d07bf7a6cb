package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

import (
	"context"
	"time"

	"rovera-leads/internal/domain/lead"
	"rovera-leads/internal/pkg/oauth"
	"rovera-leads/internal/pkg/session"
)

type LeadRepository interface {
	// Insert returns the id assigned by the store.
	Insert(ctx context.Context, l *lead.Lead) (string, error)
	DeleteByID(ctx context.Context, id string) error
}

type ProviderLookup interface {
	Get(name string) (oauth.Provider, error)
	Names() []string
}

type SessionIssuer interface {
	Issue(id session.Identity) (string, error)
	Duration() time.Duration
}
