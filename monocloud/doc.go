// Package monocloud integrates MonoCloud as an OpenID Connect identity
// provider.
//
// New returns the provider descriptor an authorization engine registers:
//
//	d := monocloud.New(monocloud.Options{
//	    ClientID:     os.Getenv("MONOCLOUD_CLIENT_ID"),
//	    ClientSecret: os.Getenv("MONOCLOUD_CLIENT_SECRET"),
//	    Issuer:       os.Getenv("MONOCLOUD_ISSUER"),
//	})
//
// The descriptor declares the "oidc" protocol and requires the engine to
// enforce PKCE and state. ProfileShape describes the claims MonoCloud
// returns; callers whose tenant adds claims extend it through
// Options.Claims, and AddressExtension extends only the address claim.
package monocloud
