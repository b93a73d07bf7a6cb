package oauth

//go:generate mockgen -source=provider.go -destination=../../../tests/mock/oauth/provider_mock.go -package=oauthmock

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"rovera-leads/internal/pkg/config"
	"rovera-leads/internal/pkg/errs"
	"rovera-leads/internal/pkg/session"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"
)

const (
	ProviderGoogle = "google"
	ProviderGithub = "github"

	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
	githubUserURL     = "https://api.github.com/user"
	githubEmailsURL   = "https://api.github.com/user/emails"
)

var (
	ErrUnknownProvider = errs.New("unknown oauth provider")
	ErrCodeExchange    = errs.New("oauth code exchange failed")
	ErrUserInfo        = errs.New("oauth user info request failed")
)

// Provider is one external identity provider. Identity issuance is fully
// delegated to it; we only keep the profile it hands back.
type Provider interface {
	Name() string
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*session.Identity, error)
}

type profileDecoder func(ctx context.Context, client *http.Client, body []byte) (*session.Identity, error)

type provider struct {
	name        string
	conf        *oauth2.Config
	userInfoURL string
	decode      profileDecoder
}

func (p *provider) Name() string { return p.name }

func (p *provider) AuthCodeURL(state string) string {
	return p.conf.AuthCodeURL(state)
}

func (p *provider) Exchange(ctx context.Context, code string) (*session.Identity, error) {
	token, err := p.conf.Exchange(ctx, code)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "exchange code with %s", p.name), ErrCodeExchange)
	}

	client := p.conf.Client(ctx, token)
	body, err := getJSON(ctx, client, p.userInfoURL)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "fetch %s profile", p.name), ErrUserInfo)
	}

	id, err := p.decode(ctx, client, body)
	if err != nil {
		return nil, errs.Mark(err, ErrUserInfo)
	}
	id.Provider = p.name
	return id, nil
}

// Registry holds the providers that have credentials configured.
type Registry struct {
	providers map[string]Provider
}

func NewRegistry(cfg config.OAuthConfig) *Registry {
	r := &Registry{providers: map[string]Provider{}}
	if cfg.GoogleClientID != "" {
		r.Register(NewGoogleProvider(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.CallbackURL(ProviderGoogle)))
	}
	if cfg.GithubClientID != "" {
		r.Register(NewGithubProvider(cfg.GithubClientID, cfg.GithubClientSecret, cfg.CallbackURL(ProviderGithub)))
	}
	return r
}

func (r *Registry) Register(p Provider) {
	r.providers[p.Name()] = p
}

func (r *Registry) Get(name string) (Provider, error) {
	p, ok := r.providers[strings.ToLower(name)]
	if !ok {
		return nil, ErrUnknownProvider
	}
	return p, nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func NewGoogleProvider(clientID, clientSecret, redirectURL string) Provider {
	return &provider{
		name: ProviderGoogle,
		conf: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		userInfoURL: googleUserInfoURL,
		decode:      decodeGoogleProfile,
	}
}

func NewGithubProvider(clientID, clientSecret, redirectURL string) Provider {
	return &provider{
		name: ProviderGithub,
		conf: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"read:user", "user:email"},
			Endpoint:     github.Endpoint,
		},
		userInfoURL: githubUserURL,
		decode:      githubProfileDecoder(githubEmailsURL),
	}
}

func decodeGoogleProfile(_ context.Context, _ *http.Client, body []byte) (*session.Identity, error) {
	var profile struct {
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, errs.Wrap(err, "decode google profile")
	}
	return &session.Identity{Name: profile.Name, Email: profile.Email, Image: profile.Picture}, nil
}

// GitHub hides the address on /user when the user keeps it private; the
// primary verified one is then read from /user/emails.
func githubProfileDecoder(emailsURL string) profileDecoder {
	return func(ctx context.Context, client *http.Client, body []byte) (*session.Identity, error) {
		var profile struct {
			Login     string `json:"login"`
			Name      string `json:"name"`
			Email     string `json:"email"`
			AvatarURL string `json:"avatar_url"`
		}
		if err := json.Unmarshal(body, &profile); err != nil {
			return nil, errs.Wrap(err, "decode github profile")
		}

		id := &session.Identity{Name: profile.Name, Email: profile.Email, Image: profile.AvatarURL}
		if id.Name == "" {
			id.Name = profile.Login
		}
		if id.Email != "" {
			return id, nil
		}

		raw, err := getJSON(ctx, client, emailsURL)
		if err != nil {
			return nil, errs.Wrap(err, "fetch github emails")
		}
		var emails []struct {
			Email    string `json:"email"`
			Primary  bool   `json:"primary"`
			Verified bool   `json:"verified"`
		}
		if err := json.Unmarshal(raw, &emails); err != nil {
			return nil, errs.Wrap(err, "decode github emails")
		}
		for _, e := range emails {
			if e.Primary && e.Verified {
				id.Email = e.Email
				return id, nil
			}
		}
		return nil, errs.New("github account has no verified primary email")
	}
}

func getJSON(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
