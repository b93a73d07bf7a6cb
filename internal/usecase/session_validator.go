package usecase

//go:generate mockgen -source=session_validator.go -destination=../../tests/mock/usecase/session_validator_mock.go -package=usecasemock

import (
	"rovera-leads/internal/pkg/session"
)

// SessionValidator resolves a session token to the signed-in identity for middleware.
type SessionValidator interface {
	ValidateSession(token string) (session.Identity, error)
}

type sessionValidatorImpl struct {
	sessions *session.Service
}

func NewSessionValidator(sessions *session.Service) SessionValidator {
	return &sessionValidatorImpl{
		sessions: sessions,
	}
}

func (v *sessionValidatorImpl) ValidateSession(token string) (session.Identity, error) {
	claims, err := v.sessions.Validate(token)
	if err != nil {
		return session.Identity{}, err
	}
	return claims.Identity(), nil
}
