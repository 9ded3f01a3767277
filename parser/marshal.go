package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strconv"

	"go.yaml.in/yaml/v4"
)

// Marshal writes the document back in the given format, preserving the
// source's key order, comments (YAML output) and every field the model does
// not cover. Enum and enum-name lists are first synced from the model, so
// changes made by the fixer appear in the output.
//
// An empty or unknown format selects the source format.
func (pr *ParseResult) Marshal(format SourceFormat) ([]byte, error) {
	if pr == nil || pr.root == nil {
		return nil, fmt.Errorf("parser: result has no source document to marshal")
	}
	if err := pr.Document.syncNodes(); err != nil {
		return nil, fmt.Errorf("parser: failed to sync document: %w", err)
	}

	if format != SourceFormatJSON && format != SourceFormatYAML {
		format = pr.SourceFormat
	}
	if format == SourceFormatJSON {
		return marshalJSON(pr.root)
	}
	return marshalYAML(pr.root, pr.SourceFormat == SourceFormatJSON)
}

func marshalYAML(root *yaml.Node, fromJSON bool) ([]byte, error) {
	if fromJSON {
		clearStyle(root)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("parser: failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("parser: failed to encode YAML: %w", err)
	}
	return buf.Bytes(), nil
}

// clearStyle drops the flow and quoting styles a JSON source leaves on
// every node, so YAML output uses block style.
func clearStyle(node *yaml.Node) {
	if node == nil {
		return
	}
	node.Style = 0
	for _, c := range node.Content {
		clearStyle(c)
	}
}

func marshalJSON(root *yaml.Node) ([]byte, error) {
	var compact bytes.Buffer
	if err := marshalNodeAsJSON(&compact, root); err != nil {
		return nil, fmt.Errorf("parser: failed to encode JSON: %w", err)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("parser: failed to encode JSON: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// marshalNodeAsJSON writes a yaml.Node to buf as compact JSON, keeping
// mapping keys in node order.
func marshalNodeAsJSON(buf *bytes.Buffer, node *yaml.Node) error {
	node = resolveAlias(node)
	if node == nil {
		buf.WriteString("null")
		return nil
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return marshalNodeAsJSON(buf, node.Content[0])

	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(node.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, node.Content[i].Value); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := marshalNodeAsJSON(buf, node.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil

	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, item := range node.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := marshalNodeAsJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	default:
		var v any
		if err := node.Decode(&v); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		return writeJSON(buf, v)
	}
}

func writeJSON(buf *bytes.Buffer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(data)
	return nil
}

// syncNodes writes every schema's Enum and EnumNames back into its node.
func (d *Document) syncNodes() error {
	if d == nil {
		return nil
	}
	for _, s := range d.schemas {
		if s.node == nil || s.node.Kind != yaml.MappingNode {
			continue
		}
		var err error
		s.enumNode, err = syncSequence(s.node, "enum", s.enumNode, s.Enum)
		if err != nil {
			return fmt.Errorf("enum at line %d: %w", s.node.Line, err)
		}
		names := make([]any, len(s.EnumNames))
		for i, n := range s.EnumNames {
			names[i] = n
		}
		s.namesNode, err = syncSequence(s.node, s.EnumNamesKey(), s.namesNode, names)
		if err != nil {
			return fmt.Errorf("%s at line %d: %w", s.EnumNamesKey(), s.node.Line, err)
		}
		if s.namesNode != nil {
			s.namesKey = s.EnumNamesKey()
		}
	}
	return nil
}

// syncSequence makes the sequence under key in mapping hold values. Nodes
// of values that are still present are reused, so their style and comments
// survive. An empty values list removes the key. It returns the sequence
// node now in the mapping, or nil.
func syncSequence(mapping *yaml.Node, key string, seq *yaml.Node, values []any) (*yaml.Node, error) {
	if len(values) == 0 {
		if seq != nil {
			removeKey(mapping, key)
		}
		return nil, nil
	}

	if seq == nil {
		seq = &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		if mapping.Style&yaml.FlowStyle != 0 {
			seq.Style = yaml.FlowStyle
		}
		mapping.Content = append(mapping.Content, scalarNode("!!str", key), seq)
	}

	current := make([]any, len(seq.Content))
	for i, n := range seq.Content {
		if err := resolveAlias(n).Decode(&current[i]); err != nil {
			return nil, err
		}
	}
	if reflect.DeepEqual(current, values) {
		return seq, nil
	}

	content := make([]*yaml.Node, 0, len(values))
	cursor := 0
	for _, v := range values {
		if idx := slices.IndexFunc(current[cursor:], func(c any) bool { return reflect.DeepEqual(c, v) }); idx >= 0 {
			content = append(content, seq.Content[cursor+idx])
			cursor += idx + 1
			continue
		}
		n, err := valueToNode(v)
		if err != nil {
			return nil, err
		}
		content = append(content, n)
	}
	seq.Content = content
	return seq, nil
}

func removeKey(mapping *yaml.Node, key string) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			mapping.Content = slices.Delete(mapping.Content, i, i+2)
			return
		}
	}
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// valueToNode converts a decoded value to a node.
func valueToNode(v any) (*yaml.Node, error) {
	switch val := v.(type) {
	case nil:
		return scalarNode("!!null", "null"), nil
	case string:
		return scalarNode("!!str", val), nil
	case bool:
		return scalarNode("!!bool", strconv.FormatBool(val)), nil
	case int:
		return scalarNode("!!int", strconv.Itoa(val)), nil
	case float64:
		return scalarNode("!!float", strconv.FormatFloat(val, 'g', -1, 64)), nil
	}
	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return nil, err
	}
	return n, nil
}
