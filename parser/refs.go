package parser

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/erraggy/oasnorm/oaserrors"
	"go.yaml.in/yaml/v4"
)

// linker connects every decoded $ref to the object its JSON pointer names.
//
// Targets are found by walking the node tree, then mapped back to decoded
// objects through the decoder's node caches, so any local pointer works,
// not only #/components/<kind>/<name>.
type linker struct {
	d           *decoder
	maxRefDepth int
	logger      Logger
}

func newLinker(d *decoder, maxRefDepth int, logger Logger) *linker {
	return &linker{d: d, maxRefDepth: maxRefDepth, logger: logger}
}

func (l *linker) link() {
	linkAll(l, "schema", l.d.order, l.d.schemas,
		func(s *Schema) string { return s.Ref },
		func(s, target *Schema) { s.Reference = target })
	linkAll(l, "parameter", l.d.parameterOrder, l.d.parameters,
		func(p *Parameter) string { return p.Ref },
		func(p, target *Parameter) { p.Reference = target })
	linkAll(l, "request body", l.d.requestBodyOrder, l.d.requestBodies,
		func(rb *RequestBody) string { return rb.Ref },
		func(rb, target *RequestBody) { rb.Reference = target })
	linkAll(l, "response", l.d.responseOrder, l.d.responses,
		func(r *Response) string { return r.Ref },
		func(r, target *Response) { r.Reference = target })
	linkAll(l, "path item", l.d.pathItemOrder, l.d.pathItems,
		func(item *PathItem) string { return item.Ref },
		func(item, target *PathItem) { item.Reference = target })

	l.checkSchemaChains()
}

// linkAll links every object in objs that carries a $ref to the decoded
// object at the pointer's target node.
func linkAll[T any](l *linker, kind string, objs []*T, decoded map[*yaml.Node]*T, ref func(*T) string, set func(obj, target *T)) {
	for _, obj := range objs {
		r := ref(obj)
		if r == "" {
			continue
		}
		node := l.lookup(r, kind)
		if node == nil {
			continue
		}
		target, ok := decoded[node]
		if !ok {
			l.d.warn((&oaserrors.ReferenceError{Ref: r, Message: "target is not a " + kind}).Error())
			continue
		}
		set(obj, target)
		l.logger.Debug("linked reference", "ref", r, "kind", kind)
	}
}

// lookup resolves a local JSON pointer to its node, recording a warning and
// returning nil when it cannot.
func (l *linker) lookup(ref, kind string) *yaml.Node {
	fragment, ok := strings.CutPrefix(ref, "#")
	if !ok {
		l.d.warn((&oaserrors.ReferenceError{Ref: ref, IsExternal: true}).Error())
		return nil
	}
	tokens, err := pointerTokens(fragment)
	if err != nil {
		l.d.warn((&oaserrors.ReferenceError{Ref: ref, Message: "invalid JSON pointer", Cause: err}).Error())
		return nil
	}

	node := l.d.root
	for _, token := range tokens {
		node = child(node, token)
		if node == nil {
			l.d.warn((&oaserrors.ReferenceError{Ref: ref, Message: kind + " not found"}).Error())
			return nil
		}
	}
	return node
}

// checkSchemaChains reports $ref loops that never reach a concrete schema
// and chains longer than maxRefDepth. Links are kept; ActualSchema stops
// before revisiting a node.
func (l *linker) checkSchemaChains() {
	for _, s := range l.d.order {
		if s.Reference == nil {
			continue
		}
		seen := map[*Schema]struct{}{s: {}}
		depth := 0
		for current := s; current.Reference != nil; current = current.Reference {
			depth++
			if _, loop := seen[current.Reference]; loop {
				l.d.warn((&oaserrors.ReferenceError{Ref: s.Ref, IsCircular: true}).Error())
				break
			}
			seen[current.Reference] = struct{}{}
			if depth > l.maxRefDepth {
				l.d.warn((&oaserrors.ResourceLimitError{
					ResourceType: "ref_depth",
					Limit:        int64(l.maxRefDepth),
					Message:      "reference chain starting at " + s.Ref + " is too deep",
				}).Error())
				s.Reference = nil
				break
			}
		}
	}
}

// pointerTokens splits a URI fragment into unescaped JSON pointer tokens.
func pointerTokens(fragment string) ([]string, error) {
	unescaped, err := url.PathUnescape(fragment)
	if err != nil {
		return nil, err
	}
	if unescaped == "" {
		return nil, nil
	}
	if !strings.HasPrefix(unescaped, "/") {
		return nil, fmt.Errorf("pointer %q must start with /", unescaped)
	}
	tokens := strings.Split(unescaped[1:], "/")
	for i, token := range tokens {
		tokens[i] = strings.ReplaceAll(strings.ReplaceAll(token, "~1", "/"), "~0", "~")
	}
	return tokens, nil
}

// child returns the value under key in a mapping or the element at index
// key in a sequence.
func child(node *yaml.Node, key string) *yaml.Node {
	node = resolveAlias(node)
	if node == nil {
		return nil
	}
	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == key {
				return resolveAlias(node.Content[i+1])
			}
		}
	case yaml.SequenceNode:
		idx, err := strconv.Atoi(key)
		if err == nil && idx >= 0 && idx < len(node.Content) {
			return resolveAlias(node.Content[idx])
		}
	}
	return nil
}
