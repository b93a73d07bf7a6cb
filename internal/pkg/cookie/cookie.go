package cookie

import (
	"net/http"
	"time"

	"rovera-leads/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookieName    = "session_token"
	OAuthStateCookieName = "oauth_state"

	// the state cookie only has to survive the round trip to the provider
	oauthStateMaxAge = 10 * time.Minute
)

func SetSessionCookie(c *gin.Context, cfg config.CookieConfig, token string, expiry time.Duration) {
	set(c, cfg, SessionCookieName, token, int(expiry.Seconds()))
}

func ClearSessionCookie(c *gin.Context, cfg config.CookieConfig) {
	set(c, cfg, SessionCookieName, "", -1)
}

func GetSessionToken(c *gin.Context) string {
	token, _ := c.Cookie(SessionCookieName)
	return token
}

func SetOAuthState(c *gin.Context, cfg config.CookieConfig, state string) {
	set(c, cfg, OAuthStateCookieName, state, int(oauthStateMaxAge.Seconds()))
}

// PopOAuthState reads the state cookie and clears it; a state is single use.
func PopOAuthState(c *gin.Context, cfg config.CookieConfig) string {
	state, _ := c.Cookie(OAuthStateCookieName)
	set(c, cfg, OAuthStateCookieName, "", -1)
	return state
}

func set(c *gin.Context, cfg config.CookieConfig, name, value string, maxAge int) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		name,
		value,
		maxAge,
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
