// Package schema declares the shape of a closed record: an ordered set of
// keys, each bound to the exact Go type its value must have.
//
// Types are matched exactly. An int never satisfies a float field, a float64
// never satisfies an int field and a named type never satisfies its
// underlying type:
//
//	rect := schema.MustNew(
//	    schema.Key("len1", schema.Float()),
//	    schema.Key("len2", schema.Float()),
//	)
//
//	d := rect.Diff(map[string]any{"len1": 2, "len2": 4.0, "depth": 1.0})
//	// d.Mismatched == ["len1"], d.Extra == ["depth"]
//
// Keys may be any comparable type:
//
//	s := schema.MustNew(
//	    schema.Key(0, schema.Int()),
//	    schema.Key(1, schema.String()),
//	)
//
// Custom types are described with Of:
//
//	type Celsius float64
//	temp := schema.MustNew(schema.Key("t", schema.Of[Celsius]()))
//
// Schemas serialize to JSON and YAML as ordered lists of key/type pairs and
// can be parsed back with the built-in type names ("int", "float", "str",
// "bool" and slices such as "[int]").
package schema
