package fixer_test

import (
	"fmt"
	"log"

	"github.com/erraggy/oasnorm/fixer"
	"github.com/erraggy/oasnorm/parser"
)

const exampleSpec = `openapi: 3.0.3
info:
  title: Example
  version: "1"
paths: {}
components:
  schemas:
    Status:
      type: string
      enum: [Active, active, INACTIVE, inactive]
      x-enumNames: [A, a, I, i]
`

func ExampleRemoveCaseInsensitiveEnumDuplicates() {
	result, err := parser.ParseWithOptions(parser.WithBytes([]byte(exampleSpec)))
	if err != nil {
		log.Fatal(err)
	}

	fixer.RemoveCaseInsensitiveEnumDuplicates(result.Document)

	status, _ := result.Document.Components.Schemas.Get("Status")
	fmt.Println(status.Enum)
	fmt.Println(status.EnumNames)
	// Output:
	// [Active INACTIVE]
	// [A I]
}

func ExampleFixWithOptions() {
	parsed, err := parser.ParseWithOptions(parser.WithBytes([]byte(exampleSpec)))
	if err != nil {
		log.Fatal(err)
	}

	result, err := fixer.FixWithOptions(
		fixer.WithParsed(*parsed),
		fixer.WithDryRun(true),
	)
	if err != nil {
		log.Fatal(err)
	}
	for _, fix := range result.Fixes {
		fmt.Printf("%s: %s\n", fix.Path, fix.Description)
	}
	// Output:
	// components.schemas.Status: removed 2 case-insensitive duplicate enum values
}
