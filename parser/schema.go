package parser

import "go.yaml.in/yaml/v4"

// Enum display-name extensions. NJsonSchema writes x-enumNames; OpenAPI
// Generator writes x-enum-varnames. Both hold a list parallel to enum.
const (
	ExtEnumNames    = "x-enumNames"
	ExtEnumVarNames = "x-enum-varnames"
)

// Schema represents one JSON Schema node of an OpenAPI document.
//
// Only the keywords that take part in normalization are modeled; the loader
// keeps the original YAML node for everything else so documents round-trip
// without loss.
//
// Schemas are compared by pointer identity. Every $ref to the same target
// links to the same *Schema through Reference, so a change made through one
// path is visible from every other path that reaches the node.
type Schema struct {
	// Ref is the raw $ref value, empty for inline schemas
	Ref string
	// Reference is the schema Ref resolves to, set by the loader's link phase.
	// It is nil for inline schemas and for refs that could not be resolved.
	Reference *Schema

	// Type is a string, or a []any of strings in OAS 3.1+
	Type        any
	Format      string
	Title       string
	Description string

	// Enum holds the allowed values in declared order
	Enum []any
	// EnumNames holds display names parallel to Enum. It may be shorter than
	// Enum, in which case trailing values have no name.
	EnumNames []string

	// Properties maps property names to schemas in declared order
	Properties *OrderedMap[*Schema]
	// Item is the single element schema of an array ("items": {...})
	Item *Schema
	// Items is the tuple form: array-valued "items" or OAS 3.1 "prefixItems"
	Items []*Schema
	// AdditionalProperties is the schema form of additionalProperties
	AdditionalProperties *Schema
	// AdditionalPropertiesAllowed is the boolean form of additionalProperties
	AdditionalPropertiesAllowed *bool
	// AllOf holds composed schemas; inline members contribute their
	// properties to ActualProperties
	AllOf []*Schema
	// AnyOf, OneOf and Not are decoded so refs into them link, but
	// normalization does not descend into them
	AnyOf []*Schema
	OneOf []*Schema
	Not   *Schema

	// Extra holds vendor extensions (x-*) other than the enum-name lists
	Extra map[string]any

	// node is the mapping node this schema was decoded from
	node *yaml.Node
	// enumNode and namesNode are the decoded sequences, rewritten on marshal
	enumNode  *yaml.Node
	namesNode *yaml.Node
	// namesKey records which extension carried EnumNames
	namesKey string
}

// ActualSchema follows Reference links and returns the concrete schema.
// It returns s itself for inline schemas and for unresolved refs, and nil
// for a nil receiver. On a reference loop it returns the last schema reached
// before the loop closes.
func (s *Schema) ActualSchema() *Schema {
	return follow(s, func(schema *Schema) *Schema { return schema.Reference })
}

// IsReference reports whether the schema is a $ref placeholder.
func (s *Schema) IsReference() bool {
	return s != nil && s.Ref != ""
}

// HasStringEnum reports whether the schema has at least one enum value and
// every value is a string.
func (s *Schema) HasStringEnum() bool {
	if s == nil || len(s.Enum) == 0 {
		return false
	}
	for _, v := range s.Enum {
		if _, ok := v.(string); !ok {
			return false
		}
	}
	return true
}

// ActualProperties returns the schema's own properties followed by the
// properties of inline allOf members, in declared order. Properties of
// $ref'd allOf members belong to the referenced schema and are not merged.
// An own property shadows a merged one with the same name.
func (s *Schema) ActualProperties() *OrderedMap[*Schema] {
	if s == nil {
		return nil
	}
	inline := false
	for _, member := range s.AllOf {
		if member != nil && !member.IsReference() && member.Properties.Len() > 0 {
			inline = true
			break
		}
	}
	if !inline {
		return s.Properties
	}

	merged := NewOrderedMap[*Schema]()
	for name, prop := range s.Properties.All() {
		merged.Set(name, prop)
	}
	for _, member := range s.AllOf {
		if member == nil || member.IsReference() {
			continue
		}
		for name, prop := range member.Properties.All() {
			if _, exists := merged.Get(name); !exists {
				merged.Set(name, prop)
			}
		}
	}
	return merged
}

// EnumNamesKey returns the extension name EnumNames is written under.
func (s *Schema) EnumNamesKey() string {
	if s == nil || s.namesKey == "" {
		return ExtEnumNames
	}
	return s.namesKey
}
