// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// PetStoreYAML is an OAS 3.0 document whose enums repeat members in several
// casings at every place the deduplicator visits: component schemas, shared
// and inline parameters, request bodies, referenced responses, array items,
// additionalProperties and a self-referencing schema.
const PetStoreYAML = `openapi: 3.0.3
info:
  title: Pet Store
  version: 1.0.0
paths:
  /pets:
    parameters:
      - name: region
        in: query
        schema:
          type: string
          enum: [eu, EU, us]
    get:
      operationId: listPets
      parameters:
        - $ref: '#/components/parameters/StatusFilter'
        - name: sort
          in: query
          schema:
            type: string
            enum: [asc, ASC, desc]
      responses:
        '200':
          $ref: '#/components/responses/PetList'
    post:
      operationId: createPet
      requestBody:
        content:
          application/json:
            schema:
              $ref: '#/components/schemas/Pet'
      responses:
        '201':
          description: created
          content:
            application/json:
              schema:
                type: object
                properties:
                  result:
                    type: string
                    enum: [ok, OK]
components:
  schemas:
    Status:
      type: string
      enum:
        - Active
        - active
        - INACTIVE
        - inactive
      x-enumNames:
        - A
        - a
        - I
        - i
    Pet:
      type: object
      properties:
        status:
          $ref: '#/components/schemas/Status'
        tags:
          type: array
          items:
            type: string
            enum: [red, Red, blue]
        labels:
          type: object
          additionalProperties:
            type: string
            enum: [x, X]
        size:
          type: integer
          enum: [1, 2, 3]
    Node:
      type: object
      properties:
        kind:
          type: string
          enum: [leaf, LEAF, branch]
        children:
          type: array
          items:
            $ref: '#/components/schemas/Node'
  parameters:
    StatusFilter:
      name: status
      in: query
      schema:
        $ref: '#/components/schemas/Status'
  responses:
    PetList:
      description: pets
      content:
        application/json:
          schema:
            type: array
            items:
              $ref: '#/components/schemas/Pet'
`

// PetStoreJSON is a small OAS 3.1 JSON document with one duplicated enum.
const PetStoreJSON = `{
  "openapi": "3.1.0",
  "info": {"title": "Pet Store", "version": "1.0.0"},
  "paths": {},
  "components": {
    "schemas": {
      "Color": {
        "type": "string",
        "enum": ["Red", "RED", "Green"],
        "x-enum-varnames": ["Red", "RED", "Green"]
      }
    }
  }
}
`

// CleanYAML is a document without case-insensitive enum duplicates.
const CleanYAML = `openapi: 3.0.3
info:
  title: Clean
  version: 1.0.0
paths: {}
components:
  schemas:
    Status:
      type: string
      enum: [active, inactive]
`

// Swagger20YAML is a Swagger 2.0 document, which is not supported.
const Swagger20YAML = `swagger: "2.0"
info:
  title: Old
  version: 1.0.0
paths: {}
`

// WriteTempFile writes content to name inside a per-test temporary
// directory and returns the full path.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}
	return path
}

// WriteTempYAML writes content to a temporary .yaml file.
func WriteTempYAML(t *testing.T, content string) string {
	t.Helper()
	return WriteTempFile(t, "test.yaml", content)
}

// WriteTempJSON writes content to a temporary .json file.
func WriteTempJSON(t *testing.T, content string) string {
	t.Helper()
	return WriteTempFile(t, "test.json", content)
}
