package session

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrExpiredToken = errors.New("session token expired")
	ErrMissingEmail = errors.New("session identity has no email")
)

const issuer = "rovera-leads"

// Identity is what a signed-in visitor carries around: the profile returned
// by the identity provider.
type Identity struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Image    string `json:"image,omitempty"`
	Provider string `json:"provider,omitempty"`
}

type Claims struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Image    string `json:"image,omitempty"`
	Provider string `json:"provider,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) Identity() Identity {
	return Identity{Name: c.Name, Email: c.Email, Image: c.Image, Provider: c.Provider}
}

type Service struct {
	secretKey []byte
	duration  time.Duration
	now       func() time.Time
}

func NewService(secretKey string, duration time.Duration) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		duration:  duration,
		now:       time.Now,
	}
}

func (s *Service) Duration() time.Duration {
	return s.duration
}

func (s *Service) Issue(id Identity) (string, error) {
	email := strings.ToLower(strings.TrimSpace(id.Email))
	if email == "" {
		return "", ErrMissingEmail
	}

	now := s.now()
	claims := Claims{
		Name:     id.Name,
		Email:    email,
		Image:    id.Image,
		Provider: id.Provider,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Email == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
