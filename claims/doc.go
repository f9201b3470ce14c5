// Package claims declares the shape of identity-token and userinfo claims.
//
// A Shape is an ordered list of known fields, each with a FieldType, plus a
// single open rule that types every claim name the shape does not declare.
// Shapes are built once, usually into package-level variables, and never
// mutated afterwards:
//
//	var Address = claims.MustShape(claims.NewShape(
//	    claims.Optional("formatted", claims.String),
//	    claims.Optional("country", claims.String),
//	))
//
// Override computes the effective shape of a provider whose callers extend
// its default shape:
//
//	effective := claims.Override(monocloud.ProfileShape, claims.NewShape(
//	    claims.Optional("tenant_id", claims.String),
//	).WithOpen(claims.Any))
//
// Known fields of the extension replace the default's type for the same
// name, fields the extension does not mention are inherited, and the
// extension's open rule (when it declares one) replaces the default's.
//
// Shapes are descriptive metadata. Nothing in this package checks claim
// values against their declared type; Partition only separates the known
// claims of a decoded token from the extra ones.
package claims
