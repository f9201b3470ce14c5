// Package errors provides the structured error type shared by the claim-shape,
// descriptor and registry packages. Every error carries a machine-readable
// code so engines can branch on it without string matching.
package errors
