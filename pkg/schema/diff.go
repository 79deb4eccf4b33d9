package schema

import (
	"slices"

	"github.com/aretw0/structdict/internal/repr"
)

// Discrepancy lists how a mapping deviates from a schema.
type Discrepancy[K comparable] struct {
	Missing    []K // declared keys absent from the mapping, in declaration order
	Extra      []K // keys the schema does not declare, in natural order
	Mismatched []K // shared keys whose value has the wrong type, in declaration order
}

// Empty reports whether the mapping conforms.
func (d Discrepancy[K]) Empty() bool {
	return len(d.Missing) == 0 && len(d.Extra) == 0 && len(d.Mismatched) == 0
}

// Diff compares data against the schema.
// Keys that are only in data are reported as Extra and never type-checked.
func (s *Schema[K]) Diff(data map[K]any) Discrepancy[K] {
	var d Discrepancy[K]

	for _, f := range s.fields {
		value, exists := data[f.Key]
		if !exists {
			d.Missing = append(d.Missing, f.Key)
			continue
		}
		if err := f.Type.Validate(value); err != nil {
			d.Mismatched = append(d.Mismatched, f.Key)
		}
	}

	for key := range data {
		if !s.Has(key) {
			d.Extra = append(d.Extra, key)
		}
	}
	slices.SortFunc(d.Extra, func(a, b K) int {
		return repr.Compare(a, b)
	})

	return d
}
