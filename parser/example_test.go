package parser_test

import (
	"fmt"
	"log"

	"github.com/erraggy/oasnorm/parser"
)

func Example() {
	src := `openapi: 3.0.3
info: {title: Example, version: "1.0"}
paths: {}
components:
  schemas:
    Status:
      type: string
      enum: [active, inactive]
    Pet:
      type: object
      properties:
        status:
          $ref: '#/components/schemas/Status'
`
	result, err := parser.ParseWithOptions(parser.WithBytes([]byte(src)))
	if err != nil {
		log.Fatal(err)
	}

	schemas := result.Document.Components.Schemas
	status, _ := schemas.Get("Status")
	pet, _ := schemas.Get("Pet")
	prop, _ := pet.Properties.Get("status")

	fmt.Println(result.Version, schemas.Keys())
	fmt.Println(prop.Ref)
	fmt.Println(prop.ActualSchema() == status, status.Enum)
	// Output:
	// 3.0.3 [Status Pet]
	// #/components/schemas/Status
	// true [active inactive]
}

func ExampleParseResult_Marshal() {
	src := `{"openapi": "3.1.0", "info": {"title": "T", "version": "1"}, "paths": {}}`
	result, err := parser.ParseWithOptions(parser.WithBytes([]byte(src)))
	if err != nil {
		log.Fatal(err)
	}
	out, err := result.Marshal(parser.SourceFormatYAML)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(string(out))
	// Output:
	// openapi: 3.1.0
	// info:
	//   title: T
	//   version: "1"
	// paths: {}
}
