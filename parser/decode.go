package parser

import (
	"fmt"
	"strings"

	"github.com/erraggy/oasnorm/internal/httputil"
	"github.com/erraggy/oasnorm/oaserrors"
	"go.yaml.in/yaml/v4"
)

// decoder turns a yaml.Node tree into the document model.
//
// Every object is memoized by the node it was decoded from, so a YAML alias
// and the anchor it names produce the same pointer, and the linker can map
// a $ref target node back to its decoded object.
type decoder struct {
	source string
	logger Logger
	root   *yaml.Node

	schemas       map[*yaml.Node]*Schema
	parameters    map[*yaml.Node]*Parameter
	requestBodies map[*yaml.Node]*RequestBody
	responses     map[*yaml.Node]*Response
	pathItems     map[*yaml.Node]*PathItem

	// decoded objects in document order
	order            []*Schema
	parameterOrder   []*Parameter
	requestBodyOrder []*RequestBody
	responseOrder    []*Response
	pathItemOrder    []*PathItem

	warnings []string
	warned   map[string]struct{}
}

func newDecoder(source string, logger Logger) *decoder {
	return &decoder{
		source:        source,
		logger:        logger,
		schemas:       make(map[*yaml.Node]*Schema),
		parameters:    make(map[*yaml.Node]*Parameter),
		requestBodies: make(map[*yaml.Node]*RequestBody),
		responses:     make(map[*yaml.Node]*Response),
		pathItems:     make(map[*yaml.Node]*PathItem),
		warned:        make(map[string]struct{}),
	}
}

// warn records a non-fatal problem once.
func (d *decoder) warn(msg string) {
	if _, dup := d.warned[msg]; dup {
		return
	}
	d.warned[msg] = struct{}{}
	d.warnings = append(d.warnings, msg)
	d.logger.Warn("parser warning", "source", d.source, "warning", msg)
}

func (d *decoder) parseError(node *yaml.Node, format string, args ...any) error {
	perr := &oaserrors.ParseError{Path: d.source, Message: fmt.Sprintf(format, args...)}
	if node != nil {
		perr.Line = node.Line
		perr.Column = node.Column
	}
	return fmt.Errorf("parser: %w", perr)
}

// pairs iterates the key/value pairs of a mapping node, resolving aliases.
func pairs(node *yaml.Node, yield func(key string, value *yaml.Node)) {
	node = resolveAlias(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		yield(node.Content[i].Value, resolveAlias(node.Content[i+1]))
	}
}

// expectKind warns when node is not of the wanted kind.
func (d *decoder) expectKind(node *yaml.Node, kind yaml.Kind, what string) bool {
	if node != nil && node.Kind == kind {
		return true
	}
	if node != nil {
		d.warn(fmt.Sprintf("line %d: %s should be a %s", node.Line, what, kindName(kind)))
	}
	return false
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	}
	return "node"
}

// document decodes the root mapping of an OpenAPI document.
func (d *decoder) document(node *yaml.Node) (*Document, error) {
	node = resolveAlias(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil, d.parseError(node, "document root must be a mapping")
	}
	d.root = node

	doc := &Document{}
	var swagger string
	pairs(node, func(key string, value *yaml.Node) {
		switch key {
		case "openapi":
			doc.OpenAPI = value.Value
		case "swagger":
			swagger = value.Value
		}
	})

	if swagger != "" {
		return nil, d.parseError(node, "swagger %s documents are not supported, convert to OpenAPI 3.x first", swagger)
	}
	if doc.OpenAPI == "" {
		return nil, d.parseError(node, "missing openapi version field")
	}
	if !supportedVersion(doc.OpenAPI) {
		return nil, d.parseError(node, "unsupported OpenAPI version %q (supported: 3.0.x, 3.1.x, 3.2.x)", doc.OpenAPI)
	}

	var err error
	pairs(node, func(key string, value *yaml.Node) {
		if err != nil {
			return
		}
		switch key {
		case "info":
			doc.Info = d.info(value)
		case "components":
			if value.Kind != yaml.MappingNode {
				err = d.parseError(value, "components must be a mapping")
				return
			}
			doc.Components = d.components(value)
		case "paths":
			if value.Kind != yaml.MappingNode {
				err = d.parseError(value, "paths must be a mapping")
				return
			}
			doc.Paths = NewOrderedMap[*PathItem]()
			pairs(value, func(path string, itemNode *yaml.Node) {
				if strings.HasPrefix(path, "x-") {
					return
				}
				doc.Paths.Set(path, d.pathItem(itemNode))
			})
		}
	})
	if err != nil {
		return nil, err
	}

	doc.schemas = d.order
	return doc, nil
}

func supportedVersion(v string) bool {
	for _, prefix := range []string{"3.0", "3.1", "3.2"} {
		if v == prefix || strings.HasPrefix(v, prefix+".") {
			return true
		}
	}
	return false
}

func (d *decoder) info(node *yaml.Node) *Info {
	if !d.expectKind(node, yaml.MappingNode, "info") {
		return nil
	}
	info := &Info{}
	pairs(node, func(key string, value *yaml.Node) {
		switch key {
		case "title":
			info.Title = value.Value
		case "version":
			info.Version = value.Value
		case "description":
			info.Description = value.Value
		}
	})
	return info
}

func (d *decoder) components(node *yaml.Node) *Components {
	c := &Components{}
	pairs(node, func(key string, value *yaml.Node) {
		if strings.HasPrefix(key, "x-") || !d.expectKind(value, yaml.MappingNode, "components."+key) {
			return
		}
		switch key {
		case "schemas":
			c.Schemas = NewOrderedMap[*Schema]()
			pairs(value, func(name string, n *yaml.Node) { c.Schemas.Set(name, d.schema(n)) })
		case "parameters":
			c.Parameters = NewOrderedMap[*Parameter]()
			pairs(value, func(name string, n *yaml.Node) { c.Parameters.Set(name, d.parameter(n)) })
		case "requestBodies":
			c.RequestBodies = NewOrderedMap[*RequestBody]()
			pairs(value, func(name string, n *yaml.Node) { c.RequestBodies.Set(name, d.requestBody(n)) })
		case "responses":
			c.Responses = NewOrderedMap[*Response]()
			pairs(value, func(name string, n *yaml.Node) { c.Responses.Set(name, d.response(n)) })
		case "pathItems":
			c.PathItems = NewOrderedMap[*PathItem]()
			pairs(value, func(name string, n *yaml.Node) { c.PathItems.Set(name, d.pathItem(n)) })
		}
	})
	return c
}

func (d *decoder) pathItem(node *yaml.Node) *PathItem {
	if item, ok := d.pathItems[node]; ok {
		return item
	}
	item := &PathItem{}
	d.pathItems[node] = item
	d.pathItemOrder = append(d.pathItemOrder, item)
	if !d.expectKind(node, yaml.MappingNode, "path item") {
		return item
	}

	pairs(node, func(key string, value *yaml.Node) {
		switch key {
		case "$ref":
			item.Ref = value.Value
		case "summary":
			item.Summary = value.Value
		case "description":
			item.Description = value.Value
		case "parameters":
			item.Parameters = d.parameterList(value)
		default:
			if op := d.operationFor(key, value); op != nil {
				item.setOperation(key, op)
			}
		}
	})
	return item
}

// operationFor decodes value when key names an HTTP method.
func (d *decoder) operationFor(method string, node *yaml.Node) *Operation {
	if httputil.IsOperationMethod(method) && d.expectKind(node, yaml.MappingNode, method+" operation") {
		return d.operation(node)
	}
	return nil
}

func (d *decoder) operation(node *yaml.Node) *Operation {
	op := &Operation{}
	pairs(node, func(key string, value *yaml.Node) {
		switch key {
		case "operationId":
			op.OperationID = value.Value
		case "summary":
			op.Summary = value.Value
		case "parameters":
			op.Parameters = d.parameterList(value)
		case "requestBody":
			op.RequestBody = d.requestBody(value)
		case "responses":
			if !d.expectKind(value, yaml.MappingNode, "responses") {
				return
			}
			op.Responses = NewOrderedMap[*Response]()
			pairs(value, func(code string, n *yaml.Node) {
				if strings.HasPrefix(code, "x-") {
					return
				}
				if !httputil.ValidateStatusCode(code) {
					d.warn(fmt.Sprintf("line %d: unexpected response status code %q", n.Line, code))
				}
				op.Responses.Set(code, d.response(n))
			})
		}
	})
	return op
}

func (d *decoder) parameterList(node *yaml.Node) []*Parameter {
	if !d.expectKind(node, yaml.SequenceNode, "parameters") {
		return nil
	}
	params := make([]*Parameter, 0, len(node.Content))
	for _, n := range node.Content {
		params = append(params, d.parameter(resolveAlias(n)))
	}
	return params
}

func (d *decoder) parameter(node *yaml.Node) *Parameter {
	if p, ok := d.parameters[node]; ok {
		return p
	}
	p := &Parameter{}
	d.parameters[node] = p
	d.parameterOrder = append(d.parameterOrder, p)
	if !d.expectKind(node, yaml.MappingNode, "parameter") {
		return p
	}
	pairs(node, func(key string, value *yaml.Node) {
		switch key {
		case "$ref":
			p.Ref = value.Value
		case "name":
			p.Name = value.Value
		case "in":
			p.In = value.Value
		case "schema":
			p.Schema = d.schema(value)
		case "content":
			p.Content = d.content(value)
		}
	})
	return p
}

func (d *decoder) requestBody(node *yaml.Node) *RequestBody {
	if rb, ok := d.requestBodies[node]; ok {
		return rb
	}
	rb := &RequestBody{}
	d.requestBodies[node] = rb
	d.requestBodyOrder = append(d.requestBodyOrder, rb)
	if !d.expectKind(node, yaml.MappingNode, "request body") {
		return rb
	}
	pairs(node, func(key string, value *yaml.Node) {
		switch key {
		case "$ref":
			rb.Ref = value.Value
		case "description":
			rb.Description = value.Value
		case "required":
			rb.Required = value.Value == "true"
		case "content":
			rb.Content = d.content(value)
		}
	})
	return rb
}

func (d *decoder) response(node *yaml.Node) *Response {
	if resp, ok := d.responses[node]; ok {
		return resp
	}
	resp := &Response{}
	d.responses[node] = resp
	d.responseOrder = append(d.responseOrder, resp)
	if !d.expectKind(node, yaml.MappingNode, "response") {
		return resp
	}
	pairs(node, func(key string, value *yaml.Node) {
		switch key {
		case "$ref":
			resp.Ref = value.Value
		case "description":
			resp.Description = value.Value
		case "content":
			resp.Content = d.content(value)
		}
	})
	return resp
}

func (d *decoder) content(node *yaml.Node) *OrderedMap[*MediaType] {
	if !d.expectKind(node, yaml.MappingNode, "content") {
		return nil
	}
	content := NewOrderedMap[*MediaType]()
	pairs(node, func(mediaType string, n *yaml.Node) {
		if !httputil.IsValidMediaType(mediaType) {
			d.warn(fmt.Sprintf("line %d: invalid media type %q", n.Line, mediaType))
		}
		mt := &MediaType{}
		pairs(n, func(key string, value *yaml.Node) {
			if key == "schema" {
				mt.Schema = d.schema(value)
			}
		})
		content.Set(mediaType, mt)
	})
	return content
}

// schema decodes a schema node. Boolean schemas decode to an empty Schema.
func (d *decoder) schema(node *yaml.Node) *Schema {
	node = resolveAlias(node)
	if node == nil {
		return nil
	}
	if s, ok := d.schemas[node]; ok {
		return s
	}
	s := &Schema{node: node}
	d.schemas[node] = s
	d.order = append(d.order, s)
	if node.Kind != yaml.MappingNode {
		return s
	}

	pairs(node, func(key string, value *yaml.Node) {
		switch key {
		case "$ref":
			s.Ref = value.Value
		case "type":
			s.Type = d.value(value)
		case "format":
			s.Format = value.Value
		case "title":
			s.Title = value.Value
		case "description":
			s.Description = value.Value
		case "enum":
			if d.expectKind(value, yaml.SequenceNode, "enum") {
				s.enumNode = value
				s.Enum = d.values(value)
			}
		case ExtEnumNames, ExtEnumVarNames:
			// x-enumNames wins when both are present
			if s.namesKey == ExtEnumNames || !d.expectKind(value, yaml.SequenceNode, key) {
				return
			}
			s.namesNode = value
			s.namesKey = key
			s.EnumNames = names(value)
		case "properties":
			if !d.expectKind(value, yaml.MappingNode, "properties") {
				return
			}
			s.Properties = NewOrderedMap[*Schema]()
			pairs(value, func(name string, n *yaml.Node) { s.Properties.Set(name, d.schema(n)) })
		case "items":
			if value.Kind == yaml.SequenceNode {
				s.Items = d.schemaList(value)
			} else {
				s.Item = d.schema(value)
			}
		case "prefixItems":
			s.Items = d.schemaList(value)
		case "additionalProperties":
			if value.Kind == yaml.ScalarNode {
				allowed := value.Value == "true"
				s.AdditionalPropertiesAllowed = &allowed
			} else {
				s.AdditionalProperties = d.schema(value)
			}
		case "allOf":
			s.AllOf = d.schemaList(value)
		case "anyOf":
			s.AnyOf = d.schemaList(value)
		case "oneOf":
			s.OneOf = d.schemaList(value)
		case "not":
			s.Not = d.schema(value)
		default:
			if strings.HasPrefix(key, "x-") {
				if s.Extra == nil {
					s.Extra = make(map[string]any)
				}
				s.Extra[key] = d.value(value)
			}
		}
	})
	return s
}

func (d *decoder) schemaList(node *yaml.Node) []*Schema {
	if !d.expectKind(node, yaml.SequenceNode, "schema list") {
		return nil
	}
	list := make([]*Schema, 0, len(node.Content))
	for _, n := range node.Content {
		list = append(list, d.schema(n))
	}
	return list
}

// value decodes an arbitrary node into Go values.
func (d *decoder) value(node *yaml.Node) any {
	var v any
	if err := node.Decode(&v); err != nil {
		d.warn(fmt.Sprintf("line %d: %v", node.Line, err))
		return nil
	}
	return v
}

func (d *decoder) values(node *yaml.Node) []any {
	values := make([]any, 0, len(node.Content))
	for _, n := range node.Content {
		values = append(values, d.value(resolveAlias(n)))
	}
	return values
}

// names reads a display-name list. Non-scalar entries become "".
func names(node *yaml.Node) []string {
	list := make([]string, 0, len(node.Content))
	for _, n := range node.Content {
		n = resolveAlias(n)
		if n.Kind == yaml.ScalarNode && n.ShortTag() != "!!null" {
			list = append(list, n.Value)
			continue
		}
		list = append(list, "")
	}
	return list
}

func (d *decoder) stats(doc *Document) DocumentStats {
	stats := DocumentStats{SchemaCount: len(d.schemas)}
	for _, item := range doc.Paths.All() {
		stats.PathCount++
		stats.OperationCount += item.ActualOperations().Len()
	}
	return stats
}
