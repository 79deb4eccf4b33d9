package record

import "github.com/aretw0/structdict/pkg/schema"

// Variant is a named record type: a schema plus the presentation and
// observability settings shared by every record it builds.
// A Variant is immutable and safe to share between goroutines.
type Variant[K comparable] struct {
	name        string
	description string
	schema      *schema.Schema[K]
	format      func(*Record[K]) string
	hooks       Hooks
}

// Option configures a Variant.
type Option[K comparable] func(*Variant[K])

// WithFormatter overrides the concise rendering returned by Record.String.
func WithFormatter[K comparable](fn func(*Record[K]) string) Option[K] {
	return func(v *Variant[K]) {
		v.format = fn
	}
}

// WithDescription sets a human-readable summary of the variant.
func WithDescription[K comparable](text string) Option[K] {
	return func(v *Variant[K]) {
		v.description = text
	}
}

// WithHooks attaches lifecycle hooks, chained after any already set.
func WithHooks[K comparable](h Hooks) Option[K] {
	return func(v *Variant[K]) {
		v.hooks = CombineHooks(v.hooks, h)
	}
}

// NewVariant declares a record variant named name with schema s.
func NewVariant[K comparable](name string, s *schema.Schema[K], opts ...Option[K]) *Variant[K] {
	v := &Variant[K]{name: name, schema: s}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// With returns a copy of the variant with additional options applied.
func (v *Variant[K]) With(opts ...Option[K]) *Variant[K] {
	clone := *v
	for _, opt := range opts {
		opt(&clone)
	}
	return &clone
}

// Name returns the variant name.
func (v *Variant[K]) Name() string { return v.name }

// Description returns the variant summary, if any.
func (v *Variant[K]) Description() string { return v.description }

// Schema returns the variant schema.
func (v *Variant[K]) Schema() *schema.Schema[K] { return v.schema }

// New validates initial against the variant schema and builds a record.
// On failure it returns an *InitializationError[K] and no record.
func (v *Variant[K]) New(initial map[K]any) (*Record[K], error) {
	d := v.schema.Diff(initial)
	if !d.Empty() {
		err := &InitializationError[K]{
			Input:      initial,
			Schema:     v.schema,
			Missing:    d.Missing,
			Extra:      d.Extra,
			TypeErrors: d.Mismatched,
		}
		v.hooks.emit(v.hooks.OnReject, v.name, OpCreate, nil, err)
		return nil, err
	}

	r := newRecord(v, initial)
	v.hooks.emit(v.hooks.OnCreate, v.name, OpCreate, nil, nil)
	return r, nil
}
