package claims

import (
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
)

// FromIDToken partitions the claims of an ID token the engine has already
// verified. It reads the token payload only and performs no verification.
func FromIDToken(shape *Shape, token *oidc.IDToken) (*Record, error) {
	if token == nil {
		return nil, fmt.Errorf("claims: nil id token")
	}
	var raw map[string]any
	if err := token.Claims(&raw); err != nil {
		return nil, fmt.Errorf("claims: decode id token: %w", err)
	}
	return Partition(shape, raw), nil
}
