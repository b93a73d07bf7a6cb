package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"rovera-leads/internal/handler/httperr"
	"rovera-leads/internal/pkg/cookie"
	"rovera-leads/internal/pkg/session"
	"rovera-leads/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	sessionValidator usecase.SessionValidator
}

const (
	ctxIdentityKey  = "session_identity"
	ctxUserEmailKey = "user_email"
)

const (
	msgSessionRequired = "Não autenticado"
	msgSessionInvalid  = "Sessão inválida ou expirada"
)

func NewAuthMiddleware(sessionValidator usecase.SessionValidator) *AuthMiddleware {
	return &AuthMiddleware{
		sessionValidator: sessionValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.Response{Error: msgSessionRequired})
			return
		}

		identity, err := m.sessionValidator.ValidateSession(token)
		if err != nil {
			slog.Warn("Session validation failed in auth middleware", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.Response{Error: msgSessionInvalid})
			return
		}

		setIdentity(c, identity)
		c.Next()
	}
}

// OptionalAuth attaches the identity when a valid session is present and never aborts.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		identity, err := m.sessionValidator.ValidateSession(token)
		if err != nil {
			c.Next()
			return
		}

		setIdentity(c, identity)
		c.Next()
	}
}

// cookie first, then a Bearer header
func extractToken(c *gin.Context) string {
	if token := cookie.GetSessionToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func setIdentity(c *gin.Context, identity session.Identity) {
	c.Set(ctxIdentityKey, identity)
	c.Set(ctxUserEmailKey, identity.Email)
}

func GetIdentity(c *gin.Context) (session.Identity, bool) {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return session.Identity{}, false
	}

	identity, ok := v.(session.Identity)
	return identity, ok
}

// GetUserEmail returns the signed-in email, or "" for anonymous requests.
func GetUserEmail(c *gin.Context) string {
	return c.GetString(ctxUserEmailKey)
}
