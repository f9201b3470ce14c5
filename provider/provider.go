package provider

import (
	"slices"

	"golang.org/x/oauth2"

	"github.com/kbukum/idprovider/claims"
	"github.com/kbukum/idprovider/errors"
	"github.com/kbukum/idprovider/validation"
)

// Kind is the protocol a provider speaks.
type Kind string

const (
	KindOAuth Kind = "oauth"
	KindOIDC  Kind = "oidc"
)

// Check is a security check the engine enforces during the flow.
type Check string

const (
	// CheckPKCE makes the engine send a code challenge and verify the code verifier.
	CheckPKCE Check = "pkce"
	// CheckState makes the engine bind the callback to an anti-forgery state value.
	CheckState Check = "state"
	// CheckNone disables checks. It must be the only entry when present.
	CheckNone Check = "none"
)

// Style is the sign-in button styling.
type Style struct {
	Background string `json:"bg"`
	Text       string `json:"text"`
}

// User is the application user record produced from a provider profile.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Image string `json:"image,omitempty"`
}

// UserMapper is implemented by profile types that carry a default mapping
// to User, used when the caller supplies no Profile callback.
type UserMapper interface {
	DefaultUser() User
}

// Info is the provider identity an engine needs to register a descriptor,
// independent of the profile type.
type Info struct {
	ID     string  `json:"id" validate:"required"`
	Name   string  `json:"name" validate:"required"`
	Kind   Kind    `json:"type" validate:"required,oneof=oauth oidc"`
	Style  Style   `json:"style"`
	Checks []Check `json:"checks" validate:"unique,dive,oneof=pkce state none"`
}

// Validate checks the engine contract: a non-empty identifier and name, a
// known protocol kind, and checks drawn from pkce, state and none, with none
// standing alone.
func (i Info) Validate() error {
	if err := validation.Validate(i); err != nil {
		msg := err.Error()
		if appErr, ok := errors.AsAppError(err); ok {
			msg = appErr.Message
		}
		return errors.InvalidDescriptor(i.ID, msg).WithCause(err)
	}
	if slices.Contains(i.Checks, CheckNone) && len(i.Checks) > 1 {
		return errors.InvalidDescriptor(i.ID, `checks: "none" cannot be combined with other checks`)
	}
	return nil
}

// Descriptor is the normalized record an engine consumes for one provider.
// Every field except Options is fixed by the provider; Options is exactly
// what the caller handed to the factory.
type Descriptor[P any] struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Kind   Kind    `json:"type"`
	Style  Style   `json:"style"`
	Checks []Check `json:"checks"`

	// Claims is the provider's default claim shape.
	Claims  *claims.Shape `json:"claims,omitempty"`
	Options Options[P]    `json:"options"`
}

// Info returns the provider identity of d.
func (d Descriptor[P]) Info() Info {
	return Info{
		ID:     d.ID,
		Name:   d.Name,
		Kind:   d.Kind,
		Style:  d.Style,
		Checks: slices.Clone(d.Checks),
	}
}

// Requires reports whether the engine must enforce c for this provider.
func (d Descriptor[P]) Requires(c Check) bool {
	return slices.Contains(d.Checks, c)
}

// EffectiveClaims returns the provider's claim shape overridden by the
// caller's extension in Options.Claims, if any.
func (d Descriptor[P]) EffectiveClaims() *claims.Shape {
	return claims.Override(d.Claims, d.Options.Claims)
}

// MapUser turns a decoded profile into the application user record. The
// caller's Profile callback wins; otherwise a profile implementing
// UserMapper supplies the default mapping.
func (d Descriptor[P]) MapUser(profile P, tokens *oauth2.Token) (User, error) {
	if d.Options.Profile != nil {
		return d.Options.Profile(profile, tokens)
	}
	if m, ok := any(profile).(UserMapper); ok {
		return m.DefaultUser(), nil
	}
	return User{}, errors.MissingField("profile").
		WithDetail("provider", d.ID)
}
