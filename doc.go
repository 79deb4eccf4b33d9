/*
Package structdict provides schema-constrained records: mappings whose keys and
value types are declared once per record variant and enforced on every
construction and every update.

# Concept

A record is a closed shape. Its key set is fixed by the schema at
construction and never changes: values can be replaced, but only with values
of exactly the declared type, and deletion is always refused.

# Packages

  - pkg/schema: ordered key-to-type declarations with exact type matching.
  - pkg/record: the enforcing container, its variants and its error kinds.
  - pkg/variants: the built-in Rectangle and Student variants.
  - pkg/registry: variants addressable by name.
  - pkg/observability: Prometheus and slog lifecycle hooks.

# Usage

	rect := record.NewVariant("Rectangle", schema.MustNew(
		schema.Key("len1", schema.Float()),
		schema.Key("len2", schema.Float()),
	))

	r, err := rect.New(map[string]any{"len1": 2.0, "len2": 4.0})
	if err != nil {
		log.Fatal(err)
	}

	if err := r.Set("len1", 2); err != nil {
		var upd *record.UpdateValueError
		if errors.As(err, &upd) {
			log.Println(upd) // The type of 2 is int, but ...
		}
	}

The structdict command exposes the same variants from the terminal (demo,
validate, describe) and over HTTP (serve).
*/
package structdict
