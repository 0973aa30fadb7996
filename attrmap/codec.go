package attrmap

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/viant/attrmap/internal/conv"
	"gopkg.in/yaml.v3"
)

var (
	errNotObject    = errors.New("document is not an object")
	errTrailingData = errors.New("unexpected data after top-level value")
)

// MarshalJSON encodes m as a JSON object with keys in insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	i := 0
	for key, value := range m.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("marshal %q: %w", key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		i++
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the entries of m with the members of a JSON object,
// keeping their document order. Nested objects become map[string]any.
func (m *Map) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return expectEOF(dec)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return &SourceError{Index: -1, Err: errNotObject}
	}
	var pairs []Pair
	for dec.More() {
		if tok, err = dec.Token(); err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return &SourceError{Index: -1, Err: fmt.Errorf("unexpected object key %v", tok)}
		}
		var value any
		if err = dec.Decode(&value); err != nil {
			return fmt.Errorf("decode %q: %w", key, err)
		}
		pairs = append(pairs, Pair{Key: key, Value: value})
	}
	if _, err = dec.Token(); err != nil {
		return err
	}
	if err = expectEOF(dec); err != nil {
		return err
	}
	m.Clear()
	return m.Update(pairs)
}

func expectEOF(dec *json.Decoder) error {
	if _, err := dec.Token(); err != io.EOF {
		return &SourceError{Index: -1, Err: errTrailingData}
	}
	return nil
}

// MarshalYAML encodes m as a YAML mapping with keys in insertion order.
func (m *Map) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for key, value := range m.All() {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(key); err != nil {
			return nil, err
		}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(value); err != nil {
			return nil, fmt.Errorf("marshal %q: %w", key, err)
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}

// UnmarshalYAML replaces the entries of m with a YAML mapping, keeping its
// document order. Nested mappings become map[string]any.
func (m *Map) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return &SourceError{Index: -1, Err: errNotObject}
	}
	pairs := make([]Pair, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return &SourceError{Index: -1, Err: fmt.Errorf("line %d: %w", node.Content[i].Line, err)}
		}
		var value any
		if err := node.Content[i+1].Decode(&value); err != nil {
			return fmt.Errorf("decode %q: %w", key, err)
		}
		pairs = append(pairs, Pair{Key: key, Value: value})
	}
	m.Clear()
	return m.Update(pairs)
}

// Decode converts the entries into the value pointed to by outPtr, typically a
// struct, through a JSON round-trip.
func (m *Map) Decode(outPtr any) error {
	return conv.Convert(m, outPtr)
}
