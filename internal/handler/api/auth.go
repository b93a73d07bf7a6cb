package api

import (
	"net/http"
	"net/url"

	reqdto "rovera-leads/internal/handler/dto/request"
	resdto "rovera-leads/internal/handler/dto/response"
	"rovera-leads/internal/handler/httperr"
	"rovera-leads/internal/handler/middleware"
	"rovera-leads/internal/pkg/config"
	"rovera-leads/internal/pkg/cookie"
	"rovera-leads/internal/pkg/errs"
	"rovera-leads/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	MsgUnknownProvider   = "Provedor de login desconhecido"
	MsgInvalidOAuthState = "Estado de login inválido"
	MsgSignInFailed      = "Falha na autenticação"
	MsgNotAuthenticated  = "Não autenticado"

	// where a failed or cancelled sign-in sends the browser
	signInErrorPath = "/login"
)

type AuthHandler struct {
	auth      commands.AuthCommands
	cookieCfg config.CookieConfig
	serverCfg config.ServerConfig
}

func NewAuthHandler(auth commands.AuthCommands, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		auth:      auth,
		cookieCfg: cfg.Cookie,
		serverCfg: cfg.Server,
	}
}

// @Summary List sign-in providers
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.ProvidersResponse
// @Router /auth/providers [get]
func (h *AuthHandler) Providers(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.ProvidersResponse{Providers: h.auth.Providers()})
}

// @Summary Start sign-in
// @Description Redirects to the provider consent page.
// @Tags auth
// @Param provider path string true "google or github"
// @Success 302
// @Failure 404 {object} httperr.Response
// @Router /auth/{provider}/login [get]
func (h *AuthHandler) Login(c *gin.Context) {
	redirect, err := h.auth.BeginSignIn(c.Param("provider"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, MsgUnknownProvider, nil)
		return
	}

	cookie.SetOAuthState(c, h.cookieCfg, redirect.State)
	c.Redirect(http.StatusFound, redirect.URL)
}

// @Summary Finish sign-in
// @Description Provider callback. Sets the session cookie and redirects to the dashboard.
// @Tags auth
// @Param provider path string true "google or github"
// @Param code query string true "Authorization code"
// @Param state query string true "State issued at login"
// @Success 302
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/{provider}/callback [get]
func (h *AuthHandler) Callback(c *gin.Context) {
	var query reqdto.OAuthCallbackQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, MsgInvalidRequest, nil)
		return
	}

	expectedState := cookie.PopOAuthState(c, h.cookieCfg)
	if query.Error != "" {
		c.Redirect(http.StatusFound, signInErrorPath+"?error="+url.QueryEscape(query.Error))
		return
	}
	if expectedState == "" || query.State != expectedState {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("oauth state mismatch"), MsgInvalidOAuthState, nil)
		return
	}

	result, err := h.auth.CompleteSignIn(c.Request.Context(), c.Param("provider"), query.Code)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrUnknownProvider):
			httperr.AbortWithError(c, http.StatusNotFound, err, MsgUnknownProvider, nil)
		case errs.Is(err, commands.ErrMissingAuthCode):
			httperr.AbortWithError(c, http.StatusBadRequest, err, MsgInvalidRequest, nil)
		case errs.Is(err, commands.ErrSignInFailed):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, MsgSignInFailed, nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, MsgSignInFailed, nil)
		}
		return
	}

	cookie.SetSessionCookie(c, h.cookieCfg, result.Token, result.ExpiresIn)
	c.Redirect(http.StatusFound, h.serverCfg.PostLoginRedirect)
}

// @Summary Current session
// @Tags auth
// @Produce json
// @Security SessionCookie
// @Success 200 {object} resdto.SessionResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.Response{Error: MsgNotAuthenticated})
		return
	}
	c.JSON(http.StatusOK, resdto.FromIdentity(identity))
}

// @Summary Sign out
// @Description Clears the session cookie. Tokens are stateless, so nothing is revoked server side.
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearSessionCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}
