package schema

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// fieldDoc is the wire form of one field: {"key": ..., "type": "float64"}.
type fieldDoc[K comparable] struct {
	Key  K      `json:"key" yaml:"key"`
	Type string `json:"type" yaml:"type"`
}

func (s *Schema[K]) docs() ([]fieldDoc[K], error) {
	out := make([]fieldDoc[K], len(s.fields))
	for i, f := range s.fields {
		if f.Type == nil {
			return nil, fmt.Errorf("field %v: type is nil", f.Key)
		}
		name := f.Type.Name()
		if parsed, err := ParseType(name); err != nil || parsed.Reflect() != f.Type.Reflect() {
			return nil, fmt.Errorf("field %v: type %s has no serialized form", f.Key, name)
		}
		out[i] = fieldDoc[K]{Key: f.Key, Type: name}
	}
	return out, nil
}

func fromDocs[K comparable](docs []fieldDoc[K]) (*Schema[K], error) {
	fields := make([]Field[K], 0, len(docs))
	for _, d := range docs {
		t, err := ParseType(d.Type)
		if err != nil {
			return nil, fmt.Errorf("field %v: %w", d.Key, err)
		}
		fields = append(fields, Key(d.Key, t))
	}
	return New(fields...)
}

// MarshalJSON serializes the schema as an ordered list of key/type pairs.
// Only types ParseType can read back are serializable; custom types fail.
func (s *Schema[K]) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	docs, err := s.docs()
	if err != nil {
		return nil, err
	}
	return json.Marshal(docs)
}

// UnmarshalJSON deserializes the schema from an ordered list of key/type pairs.
func (s *Schema[K]) UnmarshalJSON(data []byte) error {
	if s == nil {
		return fmt.Errorf("schema: UnmarshalJSON on nil pointer")
	}

	var docs []fieldDoc[K]
	if err := json.Unmarshal(data, &docs); err != nil {
		return err
	}

	parsed, err := fromDocs(docs)
	if err != nil {
		return err
	}
	*s = *parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s *Schema[K]) MarshalYAML() (any, error) {
	if s == nil {
		return nil, nil
	}
	return s.docs()
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Schema[K]) UnmarshalYAML(value *yaml.Node) error {
	var docs []fieldDoc[K]
	if err := value.Decode(&docs); err != nil {
		return err
	}

	parsed, err := fromDocs(docs)
	if err != nil {
		return err
	}
	*s = *parsed
	return nil
}
