package response

import (
	"rovera-leads/internal/pkg/session"
)

type SessionUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image,omitempty"`
}

type SessionResponse struct {
	User     SessionUser `json:"user"`
	Provider string      `json:"provider,omitempty"`
}

func FromIdentity(id session.Identity) *SessionResponse {
	return &SessionResponse{
		User:     SessionUser{Name: id.Name, Email: id.Email, Image: id.Image},
		Provider: id.Provider,
	}
}

type ProvidersResponse struct {
	Providers []string `json:"providers"`
}
