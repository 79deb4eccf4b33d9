package schema

import (
	"reflect"
	"strings"

	"github.com/aretw0/structdict/internal/repr"
)

// Field binds one key to its expected type.
type Field[K comparable] struct {
	Key  K
	Type Type
}

// Key declares a field of a schema.
func Key[K comparable](key K, t Type) Field[K] {
	return Field[K]{Key: key, Type: t}
}

// Schema is an immutable, ordered mapping of keys to their expected types.
// Declaration order is preserved and drives iteration and diagnostics.
type Schema[K comparable] struct {
	fields []Field[K]
	index  map[K]Type
}

// New builds a schema from fields in declaration order.
// Duplicate keys, nil types and interface types are reported together as an
// *AggregateError of *DefinitionError values.
func New[K comparable](fields ...Field[K]) (*Schema[K], error) {
	s := &Schema[K]{
		fields: make([]Field[K], 0, len(fields)),
		index:  make(map[K]Type, len(fields)),
	}

	var errs []error
	for _, f := range fields {
		if reason := checkFieldType(f.Type); reason != "" {
			errs = append(errs, &DefinitionError{Key: f.Key, Reason: reason})
			continue
		}
		if _, dup := s.index[f.Key]; dup {
			errs = append(errs, &DefinitionError{Key: f.Key, Reason: "declared more than once"})
			continue
		}
		s.fields = append(s.fields, f)
		s.index[f.Key] = f.Type
	}

	if len(errs) > 0 {
		return nil, &AggregateError{Errors: errs}
	}
	return s, nil
}

// MustNew is like New but panics if the schema is invalid.
// It is meant for package-level variant declarations.
func MustNew[K comparable](fields ...Field[K]) *Schema[K] {
	s, err := New(fields...)
	if err != nil {
		panic("schema: " + err.Error())
	}
	return s
}

func checkFieldType(t Type) string {
	if t == nil {
		return "type is nil"
	}
	rt := t.Reflect()
	if rt == nil {
		return "type has no runtime representation"
	}
	if rt.Kind() == reflect.Interface {
		return "interface type " + rt.String() + " can never match exactly"
	}
	return ""
}

// Len returns the number of declared keys.
func (s *Schema[K]) Len() int { return len(s.fields) }

// Keys returns the declared keys in declaration order.
func (s *Schema[K]) Keys() []K {
	keys := make([]K, len(s.fields))
	for i, f := range s.fields {
		keys[i] = f.Key
	}
	return keys
}

// Fields returns a copy of the declared fields.
func (s *Schema[K]) Fields() []Field[K] {
	out := make([]Field[K], len(s.fields))
	copy(out, s.fields)
	return out
}

// Has reports whether key is declared.
func (s *Schema[K]) Has(key K) bool {
	_, ok := s.index[key]
	return ok
}

// TypeOf returns the expected type for key.
func (s *Schema[K]) TypeOf(key K) (Type, bool) {
	t, ok := s.index[key]
	return t, ok
}

// String renders the schema as {'len1': float64, 'len2': float64}.
func (s *Schema[K]) String() string {
	parts := make([]string, len(s.fields))
	for i, f := range s.fields {
		parts[i] = repr.Value(f.Key) + ": " + f.Type.Name()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
