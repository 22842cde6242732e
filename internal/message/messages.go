package message

import (
	"bytes"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Messages holds resolved messages grouped by field key and reason code.
//
// Both keys and reasons keep their first-insertion order. Re-recording an
// existing (key, reason) pair replaces the text in place.
//
// The zero value is an empty, usable Messages.
type Messages struct {
	keys   []string
	fields map[string]*fieldMessages
}

type fieldMessages struct {
	reasons []string
	text    map[string]string
}

// set stores text for (key, reason), appending key and reason to the
// ordering if they are new.
func (m *Messages) set(key, reason, text string) {
	if m.fields == nil {
		m.fields = make(map[string]*fieldMessages)
	}

	f, ok := m.fields[key]
	if !ok {
		f = &fieldMessages{text: make(map[string]string)}
		m.fields[key] = f
		m.keys = append(m.keys, key)
	}

	if _, exists := f.text[reason]; !exists {
		f.reasons = append(f.reasons, reason)
	}
	f.text[reason] = text
}

// clone returns a deep copy of m.
func (m *Messages) clone() Messages {
	out := Messages{
		keys:   append([]string(nil), m.keys...),
		fields: make(map[string]*fieldMessages, len(m.fields)),
	}
	for key, f := range m.fields {
		text := make(map[string]string, len(f.text))
		for reason, t := range f.text {
			text[reason] = t
		}
		out.fields[key] = &fieldMessages{
			reasons: append([]string(nil), f.reasons...),
			text:    text,
		}
	}
	return out
}

// Keys returns the field keys that have at least one message, in the order
// they were first recorded.
func (m Messages) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Reasons returns the reason codes recorded for key, in recording order.
// It returns nil if key has no messages.
func (m Messages) Reasons(key string) []string {
	f, ok := m.fields[key]
	if !ok {
		return nil
	}
	return append([]string(nil), f.reasons...)
}

// Lookup returns the resolved message for (key, reason).
func (m Messages) Lookup(key, reason string) (string, bool) {
	f, ok := m.fields[key]
	if !ok {
		return "", false
	}
	text, ok := f.text[reason]
	return text, ok
}

// Len returns the number of field keys with messages.
func (m Messages) Len() int {
	return len(m.keys)
}

// Count returns the total number of (key, reason) messages.
func (m Messages) Count() int {
	n := 0
	for _, f := range m.fields {
		n += len(f.reasons)
	}
	return n
}

// Map returns the messages as nested maps. Ordering is lost.
func (m Messages) Map() map[string]map[string]string {
	out := make(map[string]map[string]string, len(m.fields))
	for key, f := range m.fields {
		inner := make(map[string]string, len(f.text))
		for reason, text := range f.text {
			inner[reason] = text
		}
		out[key] = inner
	}
	return out
}

// MarshalJSON encodes the messages as a nested JSON object, preserving
// key and reason order.
func (m Messages) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, key); err != nil {
			return nil, err
		}
		buf.WriteString(":{")
		f := m.fields[key]
		for j, reason := range f.reasons {
			if j > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(&buf, reason); err != nil {
				return nil, err
			}
			buf.WriteByte(':')
			if err := writeJSONString(&buf, f.text[reason]); err != nil {
				return nil, err
			}
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "encoding JSON string")
	}
	buf.Write(b)
	return nil
}

// MarshalYAML encodes the messages as a nested YAML mapping, preserving
// key and reason order.
func (m Messages) MarshalYAML() (any, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range m.keys {
		inner := &yaml.Node{Kind: yaml.MappingNode}
		f := m.fields[key]
		for _, reason := range f.reasons {
			inner.Content = append(inner.Content, stringNode(reason), stringNode(f.text[reason]))
		}
		root.Content = append(root.Content, stringNode(key), inner)
	}
	return root, nil
}

func stringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
