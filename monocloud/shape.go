package monocloud

import "github.com/kbukum/idprovider/claims"

// AddressShape is the standard OIDC address claim.
var AddressShape = claims.MustShape(claims.NewShape(
	claims.Optional("formatted", claims.String),
	claims.Optional("street_address", claims.String),
	claims.Optional("locality", claims.String),
	claims.Optional("region", claims.String),
	claims.Optional("postal_code", claims.String),
	claims.Optional("country", claims.String),
).WithOpen(claims.Unknown))

// ProfileShape is the claim set MonoCloud returns for a signed-in user:
// the OIDC standard profile claims plus the ID token claims. Any other
// claim is typed Unknown.
var ProfileShape = NewProfileShape(nil)

// NewProfileShape returns the profile shape with its address claim
// extended by addressExt. A nil addressExt yields the default shape.
func NewProfileShape(addressExt *claims.Shape) *claims.Shape {
	return claims.MustShape(claims.NewShape(
		claims.Required("sub", claims.String),
		claims.Optional("name", claims.String),
		claims.Optional("given_name", claims.String),
		claims.Optional("family_name", claims.String),
		claims.Optional("middle_name", claims.String),
		claims.Optional("nickname", claims.String),
		claims.Optional("preferred_username", claims.String),
		claims.Optional("profile", claims.String),
		claims.Optional("picture", claims.String),
		claims.Optional("website", claims.String),
		claims.Optional("email", claims.String),
		claims.Optional("email_verified", claims.Boolean),
		claims.Optional("gender", claims.String),
		claims.Optional("birthdate", claims.String),
		claims.Optional("zoneinfo", claims.String),
		claims.Optional("locale", claims.String),
		claims.Optional("phone_number", claims.String),
		claims.Optional("updated_at", claims.Number),
		claims.Nested("address", claims.Override(AddressShape, addressExt)),
		claims.Optional("acr", claims.String),
		claims.Optional("amr", claims.StringList),
		claims.Optional("at_hash", claims.String),
		claims.Required("aud", claims.StringOrList),
		claims.Optional("auth_time", claims.Number),
		claims.Optional("azp", claims.String),
		claims.Optional("c_hash", claims.String),
		claims.Required("exp", claims.Number),
		claims.Required("iat", claims.Number),
		claims.Required("iss", claims.String),
		claims.Optional("nonce", claims.String),
		claims.Optional("s_hash", claims.String),
	).WithOpen(claims.Unknown))
}

// AddressExtension returns a profile extension, suitable for
// Options.Claims, that overrides only the address claim with addressExt
// merged over AddressShape.
func AddressExtension(addressExt *claims.Shape) *claims.Shape {
	return claims.NewShape(claims.Nested("address", claims.Override(AddressShape, addressExt)))
}
