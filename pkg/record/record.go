package record

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/aretw0/structdict/internal/repr"
	"github.com/aretw0/structdict/pkg/schema"
)

// Record is a closed mapping: its keys are exactly the keys of its schema and
// every value has exactly the declared type. Values can be replaced; keys can
// never be added or removed.
//
// A Record is not safe for concurrent use. Callers sharing one across
// goroutines must serialize Set calls themselves.
type Record[K comparable] struct {
	variant *Variant[K]
	values  *orderedmap.OrderedMap[K, any]
}

// New validates initial against s and builds an unnamed record.
func New[K comparable](s *schema.Schema[K], initial map[K]any, opts ...Option[K]) (*Record[K], error) {
	return NewVariant("", s, opts...).New(initial)
}

func newRecord[K comparable](v *Variant[K], initial map[K]any) *Record[K] {
	values := orderedmap.New[K, any]()
	for _, key := range v.schema.Keys() {
		values.Set(key, initial[key])
	}
	return &Record[K]{variant: v, values: values}
}

// Variant returns the variant the record was built from.
func (r *Record[K]) Variant() *Variant[K] { return r.variant }

// Schema returns the record schema.
func (r *Record[K]) Schema() *schema.Schema[K] { return r.variant.schema }

// Get returns the value stored under key, or a *KeyNotFoundError when key is
// not part of the schema.
func (r *Record[K]) Get(key K) (any, error) {
	value, ok := r.values.Get(key)
	if !ok {
		return nil, &KeyNotFoundError{Key: key}
	}
	return value, nil
}

// Lookup is the comma-ok form of Get.
func (r *Record[K]) Lookup(key K) (any, bool) {
	return r.values.Get(key)
}

// Contains reports whether key is part of the record.
func (r *Record[K]) Contains(key K) bool {
	_, ok := r.values.Get(key)
	return ok
}

// Len returns the number of keys, which always equals the schema size.
func (r *Record[K]) Len() int {
	return r.values.Len()
}

// Keys yields the keys in schema order. Each call starts a fresh iteration.
func (r *Record[K]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for pair := r.values.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key) {
				return
			}
		}
	}
}

// All yields key/value pairs in schema order.
func (r *Record[K]) All() iter.Seq2[K, any] {
	return func(yield func(K, any) bool) {
		for pair := r.values.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// ToMap returns a copy of the record contents.
func (r *Record[K]) ToMap() map[K]any {
	out := make(map[K]any, r.values.Len())
	for k, v := range r.All() {
		out[k] = v
	}
	return out
}

// Set replaces the value stored under key.
// A value whose dynamic type differs from the declared type yields an
// *UpdateValueError and a key outside the schema yields a *KeyNotFoundError;
// in both cases the record is left untouched.
func (r *Record[K]) Set(key K, value any) error {
	v := r.variant

	expected, ok := v.schema.TypeOf(key)
	if !ok {
		err := &KeyNotFoundError{Key: key}
		v.hooks.emit(v.hooks.OnReject, v.name, OpUpdate, key, err)
		return err
	}

	if expected.Validate(value) != nil {
		err := &UpdateValueError{Key: key, Value: value, Expected: expected}
		v.hooks.emit(v.hooks.OnReject, v.name, OpUpdate, key, err)
		return err
	}

	r.values.Set(key, value)
	v.hooks.emit(v.hooks.OnUpdate, v.name, OpUpdate, key, nil)
	return nil
}

// Delete always fails with a *DeleteError: the key set of a record is closed.
func (r *Record[K]) Delete(key K) error {
	err := &DeleteError{Key: key}
	r.variant.hooks.emit(r.variant.hooks.OnReject, r.variant.name, OpDelete, key, err)
	return err
}

// String returns the concise rendering: the variant formatter when one is
// set, otherwise the mapping as {'len1': 2.0, 'len2': 4.0}.
func (r *Record[K]) String() string {
	if r.variant.format != nil {
		return r.variant.format(r)
	}
	parts := make([]string, 0, r.values.Len())
	for k, v := range r.All() {
		parts = append(parts, repr.Value(k)+": "+repr.Value(v))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// GoString returns the literal rendering used by %#v:
// Rectangle{"len1":2, "len2":4}.
func (r *Record[K]) GoString() string {
	name := r.variant.name
	if name == "" {
		name = "Record"
	}
	parts := make([]string, 0, r.values.Len())
	for k, v := range r.All() {
		parts = append(parts, fmt.Sprintf("%#v:%#v", k, v))
	}
	return name + "{" + strings.Join(parts, ", ") + "}"
}

// Value returns the value stored under key as a T.
func Value[T any, K comparable](r *Record[K], key K) (T, error) {
	var zero T
	v, err := r.Get(key)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("record: value for key %s is %T, not %s",
			repr.Value(key), v, reflect.TypeFor[T]())
	}
	return t, nil
}
