// Package fixer normalizes enumeration values in OpenAPI documents ahead of
// code generation.
//
// Generators that turn string enums into named constants fail, or silently
// drop members, when an enum lists the same value in several casings
// ("Active", "active", "ACTIVE"). The fixer walks the whole schema graph and
// keeps only the first spelling of each value, together with its display name
// from the x-enumNames extension.
//
// # Quick Start
//
// Deduplicate an already-parsed document in place:
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("openapi.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fixer.RemoveCaseInsensitiveEnumDuplicates(result.Document)
//	out, _ := result.Marshal(result.SourceFormat)
//
// Or use functional options to get a report of every rewritten schema:
//
//	fixed, err := fixer.FixWithOptions(
//		fixer.WithFilePath("openapi.yaml"),
//		fixer.WithDryRun(true),
//	)
//	for _, fix := range fixed.Fixes {
//		fmt.Printf("%s: %v -> %v\n", fix.Path, fix.Before, fix.After)
//	}
//
// # Traversal
//
// Component schemas are visited first, then for every path the effective
// operations: their parameters (path-level ones included), request body and
// responses. From each schema the walk follows $ref links to the concrete
// node and recurses into properties (inline allOf members included), array
// items and additionalProperties. Every concrete schema is processed at most
// once, so shared components are rewritten once and reference cycles
// terminate.
//
// # Case Modes
//
// CaseModeOrdinal, the default, compares values after a simple per-rune
// upper-case mapping. CaseModeUnicodeFold applies full Unicode case folding,
// which also merges values such as "straße" and "STRASSE".
//
// # Other Models
//
// RemoveCaseInsensitiveEnumDuplicatesKin applies the same rules to a
// document loaded with github.com/getkin/kin-openapi.
//
// # Related Packages
//
//   - [github.com/erraggy/oasnorm/parser] - Load documents and write them back
//   - [github.com/erraggy/oasnorm/naming] - Derive identifiers from property names
package fixer
