//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"rovera-leads/internal/pkg/config"
	"rovera-leads/internal/pkg/session"

	"github.com/stretchr/testify/require"
)

type SessionHelper struct {
	cfg config.SessionConfig
}

func NewSessionHelper(cfg config.SessionConfig) *SessionHelper {
	return &SessionHelper{cfg: cfg}
}

func (h *SessionHelper) Identity(email string) session.Identity {
	return session.Identity{Name: "Test User", Email: email, Provider: "github"}
}

func (h *SessionHelper) IssueToken(t *testing.T, email string) string {
	t.Helper()
	token, err := session.NewService(h.cfg.Secret, h.cfg.Duration).Issue(h.Identity(email))
	require.NoError(t, err)
	return token
}

// IssueExpiredToken signs with a negative lifetime so the token is already expired.
func (h *SessionHelper) IssueExpiredToken(t *testing.T, email string) string {
	t.Helper()
	token, err := session.NewService(h.cfg.Secret, -time.Minute).Issue(h.Identity(email))
	require.NoError(t, err)
	return token
}

// IssueForeignToken is signed with a secret the server does not know.
func (h *SessionHelper) IssueForeignToken(t *testing.T, email string) string {
	t.Helper()
	token, err := session.NewService("not-"+h.cfg.Secret, h.cfg.Duration).Issue(h.Identity(email))
	require.NoError(t, err)
	return token
}
