package monocloud

import (
	"reflect"
	"testing"

	"golang.org/x/oauth2"

	"github.com/kbukum/idprovider/claims"
	"github.com/kbukum/idprovider/provider"
)

func TestNewDescriptor(t *testing.T) {
	opts := Options{ClientID: "a", ClientSecret: "b", Issuer: "https://issuer.example"}
	d := New(opts)

	if d.ID != "monocloud" {
		t.Errorf("expected id 'monocloud', got %q", d.ID)
	}
	if d.Name != "MonoCloud" {
		t.Errorf("expected name 'MonoCloud', got %q", d.Name)
	}
	if d.Kind != provider.KindOIDC {
		t.Errorf("expected kind oidc, got %q", d.Kind)
	}
	if d.Style != (provider.Style{Background: "#000", Text: "#fff"}) {
		t.Errorf("unexpected style %+v", d.Style)
	}
	if !reflect.DeepEqual(d.Checks, []provider.Check{provider.CheckPKCE, provider.CheckState}) {
		t.Errorf("expected checks [pkce state], got %v", d.Checks)
	}
	if d.Claims != ProfileShape {
		t.Error("expected the default profile shape")
	}
	if !reflect.DeepEqual(d.Options, opts) {
		t.Errorf("options must pass through unchanged, got %+v", d.Options)
	}
	if err := d.Info().Validate(); err != nil {
		t.Errorf("descriptor breaks the engine contract: %v", err)
	}
}

func TestNewPassesOptionsThrough(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"empty", Options{}},
		{"issuer only", Options{Issuer: "https://tenant.monocloud.example"}},
		{"scopes and extra", Options{
			ClientID: "abc",
			Scopes:   []string{"openid", "offline_access"},
			Extra:    map[string]any{"allowDangerousEmailAccountLinking": true},
		}},
		{"claims extension", Options{Claims: claims.NewShape().WithOpen(claims.String)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := New(tc.opts)
			if !reflect.DeepEqual(d.Options, tc.opts) {
				t.Errorf("expected options %+v, got %+v", tc.opts, d.Options)
			}
			if d.ID != ID || d.Name != Name || d.Kind != Kind {
				t.Errorf("identity must not depend on options, got %s/%s/%s", d.ID, d.Name, d.Kind)
			}
		})
	}
}

func TestNewDeterministic(t *testing.T) {
	opts := Options{ClientID: "abc", Issuer: "https://tenant.monocloud.example"}
	if !reflect.DeepEqual(New(opts), New(opts)) {
		t.Error("expected equal descriptors for equal options")
	}
}

func TestNewChecksAreIndependent(t *testing.T) {
	first := New(Options{})
	first.Checks[0] = provider.CheckNone

	second := New(Options{})
	if second.Checks[0] != provider.CheckPKCE {
		t.Errorf("mutating one descriptor leaked into the next: %v", second.Checks)
	}
	if Checks()[0] != provider.CheckPKCE {
		t.Error("mutating a descriptor changed the provider checks")
	}
}

func TestNewCustomProfileType(t *testing.T) {
	type tenantProfile struct {
		Sub    string `json:"sub"`
		Tenant string `json:"tenant"`
	}
	d := New(provider.Options[tenantProfile]{
		ClientID: "abc",
		Profile: func(p tenantProfile, _ *oauth2.Token) (provider.User, error) {
			return provider.User{ID: p.Tenant + "/" + p.Sub}, nil
		},
	})

	u, err := d.MapUser(tenantProfile{Sub: "u1", Tenant: "acme"}, nil)
	if err != nil {
		t.Fatalf("MapUser failed: %v", err)
	}
	if u.ID != "acme/u1" {
		t.Errorf("expected callback mapping, got %+v", u)
	}
}

func TestNewRegistersWithEngine(t *testing.T) {
	reg := provider.NewRegistry()
	if err := reg.Register(New(Options{ClientID: "abc"})); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	d, err := provider.Lookup[Profile](reg, ID)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if !d.Requires(provider.CheckPKCE) || !d.Requires(provider.CheckState) {
		t.Errorf("expected pkce and state, got %v", d.Checks)
	}
}
