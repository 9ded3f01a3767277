// Package oasnorm normalizes identifiers and values inside OpenAPI documents
// before code generation.
//
// Code generators turn schema property names into struct fields and enum
// values into named constants. Two things routinely break that step: property
// names carrying characters that are illegal in identifiers ("@type",
// "x-rate-limit", "price+tax"), and string enums that list the same member in
// several casings ("Active", "active", "ACTIVE"), which collapse into one
// identifier in case-insensitive targets.
//
// # Overview
//
// The library consists of three packages:
//
//   - naming: derive a language-safe property identifier from a raw schema
//     field name using a fixed character substitution table
//   - fixer: walk a whole document graph and remove enum members that only
//     differ by letter case, keeping the first spelling and its display name
//   - parser: load an OpenAPI 3.x document into a pointer-linked schema graph
//     in which every $ref to a component shares the component's node
//
// # Quick Start
//
// Sanitize a property name:
//
//	import "github.com/erraggy/oasnorm/naming"
//
//	name := naming.GeneratePropertyName("@odata.type") // "odata_type"
//
// Remove case-insensitive enum duplicates from a document:
//
//	import (
//		"github.com/erraggy/oasnorm/fixer"
//		"github.com/erraggy/oasnorm/parser"
//	)
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("openapi.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fixer.RemoveCaseInsensitiveEnumDuplicates(result.Document)
//
// Or get a report of every rewritten schema:
//
//	fixResult, err := fixer.FixWithOptions(fixer.WithFilePath("openapi.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, fix := range fixResult.Fixes {
//		fmt.Printf("%s: %s\n", fix.Path, fix.Description)
//	}
//
// # Command-Line Interface
//
// The oasnorm command wraps the same operations:
//
//	oasnorm dedupe -o normalized.yaml openapi.yaml
//	oasnorm propname "@odata.type" "x-rate-limit"
//	oasnorm mcp
//
// # Related Packages
//
//   - [github.com/erraggy/oasnorm/naming] - Property name sanitizer
//   - [github.com/erraggy/oasnorm/fixer] - Enum deduplication
//   - [github.com/erraggy/oasnorm/parser] - Document model and loader
//   - [github.com/erraggy/oasnorm/oaserrors] - Structured error types
package oasnorm
