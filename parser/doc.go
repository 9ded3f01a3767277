// Package parser loads OpenAPI 3.x documents into a pointer-linked model.
//
// The model covers the objects that can carry schemas: components, paths,
// operations, parameters, request bodies, responses and media types. Every
// $ref is linked by pointer to the object it names, so all references to a
// component share one *Schema. Code that rewrites a schema through one path
// is seen through every other path, and graph walkers can key a visited set
// on schema identity.
//
// # Quick Start
//
// Parse a file using functional options:
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("openapi.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, w := range result.Warnings {
//		fmt.Println("warning:", w)
//	}
//
// Or create a reusable Parser instance:
//
//	p := parser.New()
//	p.MaxRefDepth = 20
//	result, err := p.Parse("https://example.com/api.yaml")
//
// # Versions
//
// OpenAPI 3.0.x, 3.1.x and 3.2.x are accepted in YAML or JSON. Swagger 2.0
// documents are rejected with an *oaserrors.ParseError.
//
// # References
//
// Local refs (#/...) are resolved against the document itself, including
// pointers into nested schemas. External refs, refs whose target is missing,
// and $ref loops that never reach a concrete schema are reported in
// ParseResult.Warnings; the affected nodes keep their Ref and
// ActualSchema returns the last node reached.
//
// # Writing Documents Back
//
// [ParseResult.Marshal] re-emits the original node tree, so key order,
// comments and fields the model does not cover are preserved. Enum lists and
// enum-name lists are synced from the model first:
//
//	fixer.RemoveCaseInsensitiveEnumDuplicates(result.Document)
//	out, err := result.Marshal(parser.SourceFormatYAML)
//
// # Enum Names
//
// Display names for enum values are read from x-enumNames or, when that is
// absent, x-enum-varnames. The list is parallel to enum and may be shorter.
package parser
