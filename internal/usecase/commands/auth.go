package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"rovera-leads/internal/pkg/errs"
	"rovera-leads/internal/pkg/session"

	"github.com/google/uuid"
)

var (
	ErrUnknownProvider = errs.New("sign-in provider not available")
	ErrMissingAuthCode = errs.New("authorization code missing")
	ErrSignInFailed    = errs.New("sign-in failed")
	ErrSessionIssuance = errs.New("session issuance failed")
)

type SignInRedirect struct {
	URL   string
	State string
}

type SignInResult struct {
	Token     string
	Identity  session.Identity
	ExpiresIn time.Duration
}

type AuthCommands interface {
	// BeginSignIn returns the provider consent URL bound to a fresh state value.
	BeginSignIn(provider string) (*SignInRedirect, error)
	// CompleteSignIn trades the callback code for a session token.
	CompleteSignIn(ctx context.Context, provider, code string) (*SignInResult, error)
	// Providers lists the configured provider names.
	Providers() []string
}

type authCommandsImpl struct {
	providers ProviderLookup
	sessions  SessionIssuer
	newState  func() string
}

func NewAuthCommands(providers ProviderLookup, sessions SessionIssuer) AuthCommands {
	return &authCommandsImpl{
		providers: providers,
		sessions:  sessions,
		newState:  uuid.NewString,
	}
}

func (a *authCommandsImpl) BeginSignIn(provider string) (*SignInRedirect, error) {
	p, err := a.providers.Get(provider)
	if err != nil {
		return nil, errs.Mark(err, ErrUnknownProvider)
	}
	state := a.newState()
	return &SignInRedirect{URL: p.AuthCodeURL(state), State: state}, nil
}

func (a *authCommandsImpl) CompleteSignIn(ctx context.Context, provider, code string) (*SignInResult, error) {
	p, err := a.providers.Get(provider)
	if err != nil {
		return nil, errs.Mark(err, ErrUnknownProvider)
	}
	if strings.TrimSpace(code) == "" {
		return nil, ErrMissingAuthCode
	}

	identity, err := p.Exchange(ctx, code)
	if err != nil {
		slog.Warn("oauth exchange failed", "provider", p.Name(), "error", err.Error())
		return nil, errs.Mark(err, ErrSignInFailed)
	}

	token, err := a.sessions.Issue(*identity)
	if err != nil {
		return nil, errs.Mark(err, ErrSessionIssuance)
	}

	return &SignInResult{
		Token:     token,
		Identity:  *identity,
		ExpiresIn: a.sessions.Duration(),
	}, nil
}

func (a *authCommandsImpl) Providers() []string {
	return a.providers.Names()
}
