// Package naming derives language-safe property identifiers from raw schema
// field names.
//
// OpenAPI property names are arbitrary strings. Generated sources need
// identifiers, so characters that cannot appear in one are removed or spelled
// out before the name reaches a template:
//
//	naming.GeneratePropertyName("@odata.type")  // "odata_type"
//	naming.GeneratePropertyName("price+tax")    // "priceplustax"
//	naming.GeneratePropertyName("x-rate-limit") // "x_rate_limit"
//	naming.GeneratePropertyName("*flag")        // "Starflag"
//
// Casing is never changed and nothing is truncated; two different raw names
// may map to the same identifier; resolving such collisions is left to the
// caller.
//
// # Substitution Table
//
// The rewrite runs as two passes over fixed tables. The first pass removes
// quote, sigil and bracket characters and maps ( . = | to "_" and + to "plus".
// The second pass maps * to "Star", : - # to "_" and & to "And". Whether the
// second pass runs is decided on the raw name, before the first pass.
//
// All functions in this package are pure and safe for concurrent use.
package naming
