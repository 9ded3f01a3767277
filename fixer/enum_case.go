package fixer

import (
	"fmt"

	"github.com/erraggy/oasnorm/internal/pathutil"
	"github.com/erraggy/oasnorm/parser"
)

// FixTypeEnumCaseDuplicate indicates enum values that only differed by
// letter case were removed
const FixTypeEnumCaseDuplicate FixType = "enum-case-duplicate"

// RemoveCaseInsensitiveEnumDuplicates removes string enum values that are
// equal to an earlier value of the same enum when letter case is ignored.
// The first spelling of each value is kept, together with its display name
// in x-enumNames when the names list reaches that index.
//
// The document is modified in place. Schemas reached through several $refs
// are rewritten once, and reference cycles terminate. A nil document is a
// no-op.
func RemoveCaseInsensitiveEnumDuplicates(doc *parser.Document) {
	New().DedupeEnums(doc, nil)
}

// DedupeEnums runs the same rewrite as RemoveCaseInsensitiveEnumDuplicates
// using the fixer's CaseMode, DryRun and Logger settings. When result is not
// nil, one Fix is appended per rewritten schema and FixCount is updated.
func (f *Fixer) DedupeEnums(doc *parser.Document, result *FixResult) {
	if doc == nil {
		return
	}

	d := &enumDeduper{
		key:     f.CaseMode.keyFunc(),
		dryRun:  f.DryRun,
		logger:  f.log(),
		result:  result,
		visited: make(map[*parser.Schema]struct{}),
		path:    pathutil.Get(),
	}
	defer pathutil.Put(d.path)

	d.document(doc)

	if result != nil {
		result.FixCount = len(result.Fixes)
	}
}

// enumDeduper walks one document. The visited set is keyed on resolved
// schema identity and shared across every entry point.
type enumDeduper struct {
	key     func(string) string
	dryRun  bool
	logger  parser.Logger
	result  *FixResult
	visited map[*parser.Schema]struct{}
	path    *pathutil.PathBuilder
}

func (d *enumDeduper) document(doc *parser.Document) {
	if doc.Components != nil {
		d.path.Push("components")
		d.path.Push("schemas")
		for name, schema := range doc.Components.Schemas.All() {
			d.path.Push(name)
			d.visit(schema)
			d.path.Pop()
		}
		d.path.Pop()
		d.path.Pop()
	}

	d.path.Push("paths")
	for pathKey, item := range doc.Paths.All() {
		d.path.Push(pathKey)
		for method, op := range item.ActualOperations().All() {
			d.path.Push(method)
			d.operation(item, op)
			d.path.Pop()
		}
		d.path.Pop()
	}
	d.path.Pop()
}

func (d *enumDeduper) operation(item *parser.PathItem, op *parser.Operation) {
	d.path.Push("parameters")
	for _, param := range op.ActualParameters(item) {
		d.path.PushKey(param.Name)
		d.path.Push("schema")
		d.visit(param.ActualSchema())
		d.path.Pop()
		d.path.Pop()
	}
	d.path.Pop()

	if body := op.ActualRequestBody(); body != nil {
		d.path.Push("requestBody")
		d.content(body.Content)
		d.path.Pop()
	}

	d.path.Push("responses")
	for code, resp := range op.ActualResponses().All() {
		d.path.Push(code)
		d.content(resp.Content)
		d.path.Pop()
	}
	d.path.Pop()
}

func (d *enumDeduper) content(content *parser.OrderedMap[*parser.MediaType]) {
	d.path.Push("content")
	for mediaType, mt := range content.All() {
		if mt == nil {
			continue
		}
		d.path.Push(mediaType)
		d.path.Push("schema")
		d.visit(mt.Schema)
		d.path.Pop()
		d.path.Pop()
	}
	d.path.Pop()
}

func (d *enumDeduper) visit(schema *parser.Schema) {
	s := schema.ActualSchema()
	if s == nil {
		return
	}
	if _, seen := d.visited[s]; seen {
		return
	}
	d.visited[s] = struct{}{}

	d.dedupe(s)

	d.path.Push("properties")
	for name, prop := range s.ActualProperties().All() {
		d.path.Push(name)
		d.visit(prop)
		d.path.Pop()
	}
	d.path.Pop()

	if s.Item != nil {
		d.path.Push("items")
		d.visit(s.Item)
		d.path.Pop()
	}
	for i, item := range s.Items {
		d.path.Push("items")
		d.path.PushIndex(i)
		d.visit(item)
		d.path.Pop()
		d.path.Pop()
	}
	if s.AdditionalProperties != nil {
		d.path.Push("additionalProperties")
		d.visit(s.AdditionalProperties)
		d.path.Pop()
	}
}

// dedupe rewrites s.Enum and s.EnumNames when at least one value repeats an
// earlier value under the case key.
func (d *enumDeduper) dedupe(s *parser.Schema) {
	if len(s.Enum) < 2 || !s.HasStringEnum() {
		return
	}

	seen := make(map[string]struct{}, len(s.Enum))
	values := make([]any, 0, len(s.Enum))
	var names []string
	for i, v := range s.Enum {
		k := d.key(v.(string))
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		values = append(values, v)
		if i < len(s.EnumNames) {
			names = append(names, s.EnumNames[i])
		}
	}

	removed := len(s.Enum) - len(values)
	if removed == 0 {
		return
	}

	location := d.path.String()
	d.logger.Debug("removed case-insensitive enum duplicates",
		"path", location, "removed", removed, "dryRun", d.dryRun)

	if d.result != nil {
		d.result.Fixes = append(d.result.Fixes, Fix{
			Type:        FixTypeEnumCaseDuplicate,
			Path:        location,
			Description: describeRemoval(removed),
			Before:      append([]any(nil), s.Enum...),
			After:       values,
		})
	}
	if d.dryRun {
		return
	}

	s.Enum = values
	if s.EnumNames != nil {
		s.EnumNames = append([]string{}, names...)
	}
}

func describeRemoval(n int) string {
	if n == 1 {
		return "removed 1 case-insensitive duplicate enum value"
	}
	return fmt.Sprintf("removed %d case-insensitive duplicate enum values", n)
}
