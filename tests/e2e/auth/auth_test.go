//go:build e2e

package auth_test

import (
	"net/http"
	"net/url"
	"testing"

	"rovera-leads/internal/handler/api"
	resdto "rovera-leads/internal/handler/dto/response"
	"rovera-leads/internal/pkg/cookie"
	"rovera-leads/tests/common/authtest"
	"rovera-leads/tests/common/httptest"
	"rovera-leads/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	providersURL = "/api/auth/providers"
	sessionURL   = "/api/auth/session"
	logoutURL    = "/api/auth/logout"
	healthURL    = "/health"
)

type authSuite struct {
	e2e.SharedSuite
	sessions *authtest.SessionHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.sessions = authtest.NewSessionHelper(s.Config.Session)
}

func (s *authSuite) TestProviders() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, providersURL, nil, "")

	var res resdto.ProvidersResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	assert.ElementsMatch(s.T(), []string{"github", "google"}, res.Providers)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		provider string
		host     string
		clientID string
	}{
		{provider: "google", host: "accounts.google.com", clientID: s.Config.OAuth.GoogleClientID},
		{provider: "github", host: "github.com", clientID: s.Config.OAuth.GithubClientID},
	}

	for _, tt := range tests {
		s.Run(tt.provider, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/auth/"+tt.provider+"/login", nil, "")

			require.Equal(s.T(), http.StatusFound, w.Code)
			location, err := url.Parse(w.Header().Get("Location"))
			require.NoError(s.T(), err)
			assert.Equal(s.T(), tt.host, location.Host)
			assert.Equal(s.T(), tt.clientID, location.Query().Get("client_id"))
			assert.Equal(s.T(), s.Config.OAuth.CallbackURL(tt.provider), location.Query().Get("redirect_uri"))

			state := httptest.ExtractCookie(w, cookie.OAuthStateCookieName)
			require.NotNil(s.T(), state)
			assert.Equal(s.T(), location.Query().Get("state"), state.Value)
			assert.True(s.T(), state.HttpOnly)
		})
	}

	s.Run("unknown provider", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/auth/facebook/login", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, api.MsgUnknownProvider)
	})
}

func (s *authSuite) TestCallback() {
	s.Run("provider denial goes back to the sign-in page", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/auth/github/callback?error=access_denied&state=abc", nil, "")

		httptest.AssertRedirect(s.T(), w, "/login?error=access_denied")
	})

	s.Run("state without the login cookie is rejected", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/auth/github/callback?code=abc&state=xyz", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, api.MsgInvalidOAuthState)
		assert.Nil(s.T(), httptest.ExtractCookie(w, cookie.SessionCookieName))
	})

	s.Run("state that does not match the cookie is rejected", func() {
		cookies := []*http.Cookie{{Name: cookie.OAuthStateCookieName, Value: "expected"}}

		w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodGet,
			"/api/auth/github/callback?code=abc&state=forged", nil, cookies, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, api.MsgInvalidOAuthState)
	})
}

func (s *authSuite) TestSession() {
	s.Run("from the session cookie", func() {
		token := s.sessions.IssueToken(s.T(), "owner@example.com")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, sessionURL, nil, token)

		var res resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		assert.Equal(s.T(), "owner@example.com", res.User.Email)
		assert.Equal(s.T(), "Test User", res.User.Name)
		assert.Equal(s.T(), "github", res.Provider)
	})

	s.Run("from a bearer token", func() {
		token := s.sessions.IssueToken(s.T(), "owner@example.com")

		w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodGet, sessionURL, nil, nil, token)

		var res resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		assert.Equal(s.T(), "owner@example.com", res.User.Email)
	})

	tests := []struct {
		name  string
		token func() string
	}{
		{name: "no token", token: func() string { return "" }},
		{name: "expired token", token: func() string { return s.sessions.IssueExpiredToken(s.T(), "owner@example.com") }},
		{name: "foreign token", token: func() string { return s.sessions.IssueForeignToken(s.T(), "owner@example.com") }},
		{name: "garbage", token: func() string { return "not-a-jwt" }},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, sessionURL, nil, tt.token())

			assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
		})
	}
}

func (s *authSuite) TestLogout() {
	token := s.sessions.IssueToken(s.T(), "owner@example.com")

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, token)

	assert.Equal(s.T(), http.StatusNoContent, w.Code)
	cleared := httptest.ExtractCookie(w, cookie.SessionCookieName)
	require.NotNil(s.T(), cleared)
	assert.Empty(s.T(), cleared.Value)
	assert.Negative(s.T(), cleared.MaxAge)
}

func (s *authSuite) TestHealth() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, healthURL, nil, "")

	var res map[string]string
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	assert.Equal(s.T(), "ok", res["status"])
	assert.Equal(s.T(), "ok", res["database"])
}
