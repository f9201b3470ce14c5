// Package version reports build information for idpctl.
//
// Version, commit and build time are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/idprovider/version.Version=1.0.0" ./cmd/idpctl
//
// Unset values fall back to the VCS stamps of the Go build info.
package version
