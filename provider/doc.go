// Package provider defines the contract between identity-provider
// integrations and the authorization engine that drives the OAuth flow.
//
// A provider integration is a pure factory returning a Descriptor: the
// provider's fixed identity (ID, display name, protocol Kind, button Style,
// the security Checks the engine must enforce, the default claim Shape)
// paired with the caller's Options, passed through untouched. The engine
// registers descriptors without any provider-specific code:
//
//	reg := provider.NewRegistry()
//	if err := reg.Register(monocloud.New(opts)); err != nil {
//	    return err
//	}
//	d, err := provider.Lookup[monocloud.Profile](reg, "monocloud")
//
// Helpers such as Options.Validate, Options.OAuth2Config and
// Descriptor.MapUser exist for the engine's benefit; the factory itself never
// calls them and never fails.
package provider
