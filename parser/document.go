package parser

import (
	"github.com/erraggy/oasnorm/internal/httputil"
	"go.yaml.in/yaml/v4"
)

// Document is a decoded OpenAPI 3.x document.
//
// Only the objects that can carry schemas are modeled. The original YAML
// node tree is retained by the ParseResult and written back by Marshal.
type Document struct {
	// OpenAPI is the declared version string, e.g. "3.0.3"
	OpenAPI    string
	Info       *Info
	Components *Components
	// Paths maps path templates to path items in declared order
	Paths *OrderedMap[*PathItem]

	// schemas lists every schema node decoded from the document
	schemas []*Schema
}

// Info holds the document metadata fields oasnorm reports on.
type Info struct {
	Title       string
	Version     string
	Description string
}

// Components holds the reusable objects of a document.
type Components struct {
	Schemas       *OrderedMap[*Schema]
	Parameters    *OrderedMap[*Parameter]
	RequestBodies *OrderedMap[*RequestBody]
	Responses     *OrderedMap[*Response]
	PathItems     *OrderedMap[*PathItem]
}

// PathItem describes the operations available on a single path.
type PathItem struct {
	Ref       string
	Reference *PathItem

	Summary     string
	Description string
	// Parameters are shared by every operation on the path
	Parameters []*Parameter

	Get     *Operation
	Put     *Operation
	Post    *Operation
	Delete  *Operation
	Options *Operation
	Head    *Operation
	Patch   *Operation
	Trace   *Operation
	// Query is the OAS 3.2 QUERY method
	Query *Operation
}

// ActualPathItem follows Reference links to the concrete path item.
func (p *PathItem) ActualPathItem() *PathItem {
	return follow(p, func(item *PathItem) *PathItem { return item.Reference })
}

// operation returns the operation for a lower-case method name.
func (p *PathItem) operation(method string) *Operation {
	switch method {
	case httputil.MethodGet:
		return p.Get
	case httputil.MethodPut:
		return p.Put
	case httputil.MethodPost:
		return p.Post
	case httputil.MethodDelete:
		return p.Delete
	case httputil.MethodOptions:
		return p.Options
	case httputil.MethodHead:
		return p.Head
	case httputil.MethodPatch:
		return p.Patch
	case httputil.MethodTrace:
		return p.Trace
	case httputil.MethodQuery:
		return p.Query
	}
	return nil
}

// setOperation stores op under a lower-case method name.
func (p *PathItem) setOperation(method string, op *Operation) {
	switch method {
	case httputil.MethodGet:
		p.Get = op
	case httputil.MethodPut:
		p.Put = op
	case httputil.MethodPost:
		p.Post = op
	case httputil.MethodDelete:
		p.Delete = op
	case httputil.MethodOptions:
		p.Options = op
	case httputil.MethodHead:
		p.Head = op
	case httputil.MethodPatch:
		p.Patch = op
	case httputil.MethodTrace:
		p.Trace = op
	case httputil.MethodQuery:
		p.Query = op
	}
}

// ActualOperations returns the operations of the resolved path item keyed
// by lower-case method, in get, put, post, delete, options, head, patch,
// trace, query order.
func (p *PathItem) ActualOperations() *OrderedMap[*Operation] {
	ops := NewOrderedMap[*Operation]()
	actual := p.ActualPathItem()
	if actual == nil {
		return ops
	}
	for _, method := range httputil.OperationMethods {
		if op := actual.operation(method); op != nil {
			ops.Set(method, op)
		}
	}
	return ops
}

// Operation describes a single API operation on a path.
type Operation struct {
	OperationID string
	Summary     string
	Parameters  []*Parameter
	RequestBody *RequestBody
	// Responses maps status codes (or "default") to responses in declared order
	Responses *OrderedMap[*Response]
}

// ActualParameters returns the effective parameters of the operation: its
// own parameters followed by the parameters inherited from pathItem that it
// does not override. A parameter overrides another when both share name and
// location. Every entry is resolved through its $ref; unresolved entries are
// skipped.
func (o *Operation) ActualParameters(pathItem *PathItem) []*Parameter {
	if o == nil {
		return nil
	}
	type key struct{ name, in string }
	seen := make(map[key]struct{})
	var params []*Parameter

	for _, p := range o.Parameters {
		actual := p.ActualParameter()
		if actual == nil {
			continue
		}
		k := key{actual.Name, actual.In}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		params = append(params, actual)
	}

	if item := pathItem.ActualPathItem(); item != nil {
		for _, p := range item.Parameters {
			actual := p.ActualParameter()
			if actual == nil {
				continue
			}
			k := key{actual.Name, actual.In}
			if _, overridden := seen[k]; overridden {
				continue
			}
			seen[k] = struct{}{}
			params = append(params, actual)
		}
	}
	return params
}

// ActualRequestBody returns the resolved request body, or nil.
func (o *Operation) ActualRequestBody() *RequestBody {
	if o == nil {
		return nil
	}
	return o.RequestBody.ActualRequestBody()
}

// ActualResponses returns the operation's responses with every $ref
// resolved, keyed and ordered as declared.
func (o *Operation) ActualResponses() *OrderedMap[*Response] {
	responses := NewOrderedMap[*Response]()
	if o == nil {
		return responses
	}
	for code, resp := range o.Responses.All() {
		if actual := resp.ActualResponse(); actual != nil {
			responses.Set(code, actual)
		}
	}
	return responses
}

// Parameter describes a single operation parameter.
type Parameter struct {
	Ref       string
	Reference *Parameter

	Name string
	// In is the parameter location: query, header, path or cookie
	In     string
	Schema *Schema
	// Content is the alternative to Schema for complex serialization
	Content *OrderedMap[*MediaType]
}

// ActualParameter follows Reference links to the concrete parameter. It
// returns nil when the parameter is an unresolved $ref.
func (p *Parameter) ActualParameter() *Parameter {
	actual := follow(p, func(param *Parameter) *Parameter { return param.Reference })
	if actual != nil && actual.Ref != "" {
		return nil
	}
	return actual
}

// ActualSchema returns the parameter's schema resolved through its $ref,
// falling back to the schema of the first content media type.
func (p *Parameter) ActualSchema() *Schema {
	if p == nil {
		return nil
	}
	if p.Schema != nil {
		return p.Schema.ActualSchema()
	}
	for mt := range p.Content.Values() {
		if mt != nil && mt.Schema != nil {
			return mt.Schema.ActualSchema()
		}
	}
	return nil
}

// RequestBody describes an operation's request payload.
type RequestBody struct {
	Ref       string
	Reference *RequestBody

	Description string
	Required    bool
	Content     *OrderedMap[*MediaType]
}

// ActualRequestBody follows Reference links to the concrete request body.
// It returns nil when the body is an unresolved $ref.
func (r *RequestBody) ActualRequestBody() *RequestBody {
	actual := follow(r, func(body *RequestBody) *RequestBody { return body.Reference })
	if actual != nil && actual.Ref != "" {
		return nil
	}
	return actual
}

// Response describes a single operation response.
type Response struct {
	Ref       string
	Reference *Response

	Description string
	Content     *OrderedMap[*MediaType]
}

// ActualResponse follows Reference links to the concrete response. It
// returns nil when the response is an unresolved $ref.
func (r *Response) ActualResponse() *Response {
	actual := follow(r, func(resp *Response) *Response { return resp.Reference })
	if actual != nil && actual.Ref != "" {
		return nil
	}
	return actual
}

// MediaType pairs a content type with its schema.
type MediaType struct {
	Schema *Schema
}

// follow walks next links from start and returns the last object reached,
// stopping before any object is revisited.
func follow[T any](start *T, next func(*T) *T) *T {
	if start == nil || next(start) == nil {
		return start
	}
	seen := map[*T]struct{}{start: {}}
	current := start
	for {
		n := next(current)
		if n == nil {
			return current
		}
		if _, loop := seen[n]; loop {
			return current
		}
		seen[n] = struct{}{}
		current = n
	}
}

// Schemas returns every schema decoded from the document, in the order the
// decoder met them. Referenced components appear once.
func (d *Document) Schemas() []*Schema {
	if d == nil {
		return nil
	}
	return d.schemas
}

// resolveAlias returns the node an alias points to.
func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}
