package monocloud

import "github.com/kbukum/idprovider/provider"

// Provider identity.
const (
	ID   = "monocloud"
	Name = "MonoCloud"
	Kind = provider.KindOIDC
)

// Sign-in button colors.
const (
	ButtonBackground = "#000"
	ButtonText       = "#fff"
)

// Options configures MonoCloud with the typed Profile.
type Options = provider.Options[Profile]

// Descriptor is the MonoCloud descriptor with the typed Profile.
type Descriptor = provider.Descriptor[Profile]

// Checks returns the security checks MonoCloud requires: PKCE and state.
// Each call returns a new slice.
func Checks() []provider.Check {
	return []provider.Check{provider.CheckPKCE, provider.CheckState}
}

// New returns the MonoCloud descriptor carrying opts unchanged.
//
// P is the profile type the engine decodes claims into; use Profile unless
// the tenant's claims need a richer record. New never fails, performs no
// I/O and returns equal descriptors for equal options.
func New[P any](opts provider.Options[P]) provider.Descriptor[P] {
	return provider.Descriptor[P]{
		ID:   ID,
		Name: Name,
		Kind: Kind,
		Style: provider.Style{
			Background: ButtonBackground,
			Text:       ButtonText,
		},
		Checks:  Checks(),
		Claims:  ProfileShape,
		Options: opts,
	}
}
