package fixer

import (
	"github.com/erraggy/oasnorm/internal/maputil"
	"github.com/erraggy/oasnorm/parser"
	"github.com/getkin/kin-openapi/openapi3"
)

// RemoveCaseInsensitiveEnumDuplicatesKin applies the rules of
// RemoveCaseInsensitiveEnumDuplicates to a kin-openapi document. The kin
// loader shares one *openapi3.Schema among every $ref to a component, so
// aliased schemas are rewritten once.
//
// Display names are read from and written back to the x-enumNames (or
// x-enum-varnames) extension. kin stores properties, paths and responses in
// Go maps, which are visited in sorted key order.
func RemoveCaseInsensitiveEnumDuplicatesKin(doc *openapi3.T) {
	if doc == nil {
		return
	}
	k := &kinDeduper{key: CaseModeOrdinal.keyFunc(), visited: make(map[*openapi3.Schema]struct{})}

	if doc.Components != nil {
		for _, name := range maputil.SortedKeys(doc.Components.Schemas) {
			k.visit(doc.Components.Schemas[name])
		}
	}
	if doc.Paths == nil {
		return
	}
	paths := doc.Paths.Map()
	for _, p := range maputil.SortedKeys(paths) {
		item := paths[p]
		if item == nil {
			continue
		}
		for _, op := range []*openapi3.Operation{
			item.Get, item.Put, item.Post, item.Delete,
			item.Options, item.Head, item.Patch, item.Trace,
		} {
			if op != nil {
				k.operation(item, op)
			}
		}
	}
}

type kinDeduper struct {
	key     func(string) string
	visited map[*openapi3.Schema]struct{}
}

func (k *kinDeduper) operation(item *openapi3.PathItem, op *openapi3.Operation) {
	for _, param := range kinParameters(item.Parameters, op.Parameters) {
		if param.Schema != nil {
			k.visit(param.Schema)
			continue
		}
		k.content(param.Content)
	}
	if op.RequestBody != nil && op.RequestBody.Value != nil {
		k.content(op.RequestBody.Value.Content)
	}
	if op.Responses != nil {
		responses := op.Responses.Map()
		for _, code := range maputil.SortedKeys(responses) {
			if resp := responses[code]; resp != nil && resp.Value != nil {
				k.content(resp.Value.Content)
			}
		}
	}
}

func (k *kinDeduper) content(content openapi3.Content) {
	for _, mt := range maputil.SortedKeys(content) {
		if media := content[mt]; media != nil {
			k.visit(media.Schema)
		}
	}
}

func (k *kinDeduper) visit(ref *openapi3.SchemaRef) {
	if ref == nil || ref.Value == nil {
		return
	}
	s := ref.Value
	if _, seen := k.visited[s]; seen {
		return
	}
	k.visited[s] = struct{}{}

	k.dedupe(s)

	for _, name := range maputil.SortedKeys(s.Properties) {
		k.visit(s.Properties[name])
	}
	for _, member := range s.AllOf {
		if member == nil || member.Ref != "" || member.Value == nil {
			continue
		}
		for _, name := range maputil.SortedKeys(member.Value.Properties) {
			if _, own := s.Properties[name]; !own {
				k.visit(member.Value.Properties[name])
			}
		}
	}
	k.visit(s.Items)
	k.visit(s.AdditionalProperties.Schema)
}

func (k *kinDeduper) dedupe(s *openapi3.Schema) {
	if len(s.Enum) < 2 {
		return
	}
	for _, v := range s.Enum {
		if _, ok := v.(string); !ok {
			return
		}
	}

	namesKey, names := kinEnumNames(s.Extensions)
	seen := make(map[string]struct{}, len(s.Enum))
	values := make([]any, 0, len(s.Enum))
	var kept []any
	for i, v := range s.Enum {
		key := k.key(v.(string))
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		values = append(values, v)
		if i < len(names) {
			kept = append(kept, names[i])
		}
	}
	if len(values) == len(s.Enum) {
		return
	}

	s.Enum = values
	if namesKey != "" {
		s.Extensions[namesKey] = append([]any{}, kept...)
	}
}

// kinEnumNames returns the extension key holding display names and its
// entries. kin decodes extensions as JSON, so the list is []any.
func kinEnumNames(ext map[string]any) (string, []any) {
	for _, key := range []string{parser.ExtEnumNames, parser.ExtEnumVarNames} {
		if names, ok := ext[key].([]any); ok {
			return key, names
		}
	}
	return "", nil
}

// kinParameters lists operation parameters first, then path-level
// parameters the operation does not override by name and location.
func kinParameters(pathLevel, opLevel openapi3.Parameters) []*openapi3.Parameter {
	type paramKey struct{ name, in string }
	seen := make(map[paramKey]struct{})
	var out []*openapi3.Parameter
	for _, list := range []openapi3.Parameters{opLevel, pathLevel} {
		for _, ref := range list {
			if ref == nil || ref.Value == nil {
				continue
			}
			key := paramKey{ref.Value.Name, ref.Value.In}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, ref.Value)
		}
	}
	return out
}
