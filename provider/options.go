package provider

import (
	"slices"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"github.com/kbukum/idprovider/claims"
	"github.com/kbukum/idprovider/validation"
)

// ProfileFunc maps a decoded provider profile to the application user.
type ProfileFunc[P any] func(profile P, tokens *oauth2.Token) (User, error)

// Endpoints overrides endpoints the engine would otherwise discover.
type Endpoints struct {
	Authorization string `mapstructure:"authorization" json:"authorization,omitempty"`
	Token         string `mapstructure:"token" json:"token,omitempty"`
	UserInfo      string `mapstructure:"userinfo" json:"userinfo,omitempty"`
	JWKS          string `mapstructure:"jwks" json:"jwks,omitempty"`
}

// Options is the caller's configuration for one provider. The factory
// passes it through without reading it. Loadable from YAML/env via
// mapstructure tags.
type Options[P any] struct {
	ClientID     string    `mapstructure:"client_id" json:"client_id"`
	ClientSecret string    `mapstructure:"client_secret" json:"client_secret,omitempty"`
	Issuer       string    `mapstructure:"issuer" json:"issuer,omitempty"`
	Endpoints    Endpoints `mapstructure:"endpoints" json:"endpoints"`

	// Scopes requested from the provider (default: openid, profile, email).
	Scopes []string `mapstructure:"scopes" json:"scopes,omitempty"`

	// Claims extends the provider's default claim shape.
	Claims *claims.Shape `mapstructure:"-" json:"claims,omitempty"`
	// Profile maps the decoded profile to the application user.
	Profile ProfileFunc[P] `mapstructure:"-" json:"-"`

	// Extra carries engine-specific settings this module does not know about.
	Extra map[string]any `mapstructure:"extra" json:"extra,omitempty"`
}

// DefaultScopes are requested when Options.Scopes is empty.
func DefaultScopes() []string {
	return []string{oidc.ScopeOpenID, "profile", "email"}
}

// Validate runs the checks an engine applies before using the options:
// a client id, and an issuer URL for OIDC providers or explicit
// authorization and token endpoints for plain OAuth providers without one.
// The descriptor factory never calls it.
func (o Options[P]) Validate(kind Kind) error {
	v := validation.New()
	v.Required("client_id", o.ClientID)
	v.URL("issuer", o.Issuer)
	v.URL("endpoints.authorization", o.Endpoints.Authorization)
	v.URL("endpoints.token", o.Endpoints.Token)
	v.URL("endpoints.userinfo", o.Endpoints.UserInfo)
	v.URL("endpoints.jwks", o.Endpoints.JWKS)

	switch kind {
	case KindOIDC:
		v.Required("issuer", o.Issuer)
	case KindOAuth:
		if o.Issuer == "" {
			v.Required("endpoints.authorization", o.Endpoints.Authorization)
			v.Required("endpoints.token", o.Endpoints.Token)
		}
	}

	if o.Claims != nil {
		v.Check("claims", o.Claims.Validate())
	}

	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

// OAuth2Config assembles the oauth2 client configuration from the options
// and the endpoint the engine discovered, with explicit overrides winning.
func (o Options[P]) OAuth2Config(redirectURL string, discovered oauth2.Endpoint) *oauth2.Config {
	ep := discovered
	if o.Endpoints.Authorization != "" {
		ep.AuthURL = o.Endpoints.Authorization
	}
	if o.Endpoints.Token != "" {
		ep.TokenURL = o.Endpoints.Token
	}

	scopes := slices.Clone(o.Scopes)
	if len(scopes) == 0 {
		scopes = DefaultScopes()
	}

	return &oauth2.Config{
		ClientID:     o.ClientID,
		ClientSecret: o.ClientSecret,
		Endpoint:     ep,
		RedirectURL:  redirectURL,
		Scopes:       scopes,
	}
}

// UserInfoURL returns the userinfo endpoint override, or discovered.
func (o Options[P]) UserInfoURL(discovered string) string {
	if o.Endpoints.UserInfo != "" {
		return o.Endpoints.UserInfo
	}
	return discovered
}

// Redacted returns a copy safe to print: the client secret is masked.
func (o Options[P]) Redacted() Options[P] {
	if o.ClientSecret != "" {
		o.ClientSecret = "********"
	}
	return o
}
