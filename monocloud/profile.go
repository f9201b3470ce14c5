package monocloud

import (
	"encoding/json"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"

	"github.com/kbukum/idprovider/claims"
	"github.com/kbukum/idprovider/provider"
)

// Address is the decoded address claim. Claims outside AddressShape land
// in Extra.
type Address struct {
	Formatted     string `json:"formatted,omitempty"`
	StreetAddress string `json:"street_address,omitempty"`
	Locality      string `json:"locality,omitempty"`
	Region        string `json:"region,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
	Country       string `json:"country,omitempty"`

	Extra map[string]any `json:"-"`
}

// Profile is the decoded MonoCloud profile. Claims outside ProfileShape
// land in Extra and carry no type promise. Time claims accept fractional
// NumericDate values.
type Profile struct {
	Sub               string           `json:"sub"`
	Name              string           `json:"name,omitempty"`
	GivenName         string           `json:"given_name,omitempty"`
	FamilyName        string           `json:"family_name,omitempty"`
	MiddleName        string           `json:"middle_name,omitempty"`
	Nickname          string           `json:"nickname,omitempty"`
	PreferredUsername string           `json:"preferred_username,omitempty"`
	ProfileURL        string           `json:"profile,omitempty"`
	Picture           string           `json:"picture,omitempty"`
	Website           string           `json:"website,omitempty"`
	Email             string           `json:"email,omitempty"`
	EmailVerified     bool             `json:"email_verified,omitempty"`
	Gender            string           `json:"gender,omitempty"`
	Birthdate         string           `json:"birthdate,omitempty"`
	Zoneinfo          string           `json:"zoneinfo,omitempty"`
	Locale            string           `json:"locale,omitempty"`
	PhoneNumber       string           `json:"phone_number,omitempty"`
	UpdatedAt         *jwt.NumericDate `json:"updated_at,omitempty"`
	Address           *Address         `json:"address,omitempty"`

	ACR      string           `json:"acr,omitempty"`
	AMR      []string         `json:"amr,omitempty"`
	AtHash   string           `json:"at_hash,omitempty"`
	Audience claims.Audience  `json:"aud"`
	AuthTime *jwt.NumericDate `json:"auth_time,omitempty"`
	AZP      string           `json:"azp,omitempty"`
	CHash    string           `json:"c_hash,omitempty"`
	Expiry   *jwt.NumericDate `json:"exp"`
	IssuedAt *jwt.NumericDate `json:"iat"`
	Issuer   string           `json:"iss"`
	Nonce    string           `json:"nonce,omitempty"`
	SHash    string           `json:"s_hash,omitempty"`

	Extra map[string]any `json:"-"`
}

// UnmarshalJSON decodes the known claims into fields and the rest into Extra.
func (p *Profile) UnmarshalJSON(data []byte) error {
	type plain Profile
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	extra, err := extraClaims(ProfileShape, data)
	if err != nil {
		return err
	}
	v.Extra = extra
	*p = Profile(v)
	return nil
}

// MarshalJSON writes the known claims followed by Extra. Extra never
// overrides a known claim.
func (p Profile) MarshalJSON() ([]byte, error) {
	type plain Profile
	return withExtra(ProfileShape, plain(p), p.Extra)
}

// UnmarshalJSON decodes the known address claims into fields and the rest into Extra.
func (a *Address) UnmarshalJSON(data []byte) error {
	type plain Address
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	extra, err := extraClaims(AddressShape, data)
	if err != nil {
		return err
	}
	v.Extra = extra
	*a = Address(v)
	return nil
}

// MarshalJSON writes the known address claims followed by Extra.
func (a Address) MarshalJSON() ([]byte, error) {
	type plain Address
	return withExtra(AddressShape, plain(a), a.Extra)
}

// DefaultUser maps a profile to the application user: the subject becomes
// the user id and the picture its image.
func DefaultUser(p Profile) provider.User {
	return provider.User{
		ID:    p.Sub,
		Name:  p.Name,
		Email: p.Email,
		Image: p.Picture,
	}
}

// DefaultUser implements provider.UserMapper.
func (p Profile) DefaultUser() provider.User {
	return DefaultUser(p)
}

// ProfileFromIDToken decodes the claims of an ID token the engine has
// already verified.
func ProfileFromIDToken(token *oidc.IDToken) (Profile, error) {
	var p Profile
	if token == nil {
		return p, fmt.Errorf("monocloud: nil id token")
	}
	if err := token.Claims(&p); err != nil {
		return p, fmt.Errorf("monocloud: decode id token: %w", err)
	}
	return p, nil
}

func extraClaims(shape *claims.Shape, data []byte) (map[string]any, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	var extra map[string]any
	for k, v := range raw {
		if shape.IsKnown(k) {
			continue
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[k] = v
	}
	return extra, nil
}

func withExtra(shape *claims.Shape, known any, extra map[string]any) ([]byte, error) {
	data, err := json.Marshal(known)
	if err != nil || len(extra) == 0 {
		return data, err
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	for k, v := range extra {
		if !shape.IsKnown(k) {
			out[k] = v
		}
	}
	return json.Marshal(out)
}
