// Package record implements schema-constrained records: mappings whose key set
// and value types are fixed by a schema and enforced on construction and on
// every write.
//
// A Variant names a schema and carries the settings shared by its records:
//
//	rect := record.NewVariant("Rectangle", schema.MustNew(
//	    schema.Key("len1", schema.Float()),
//	    schema.Key("len2", schema.Float()),
//	))
//
//	r, err := rect.New(map[string]any{"len1": 2.0, "len2": 4.0})
//
// Construction fails with an *InitializationError listing missing keys, extra
// keys and keys whose values have the wrong type. Set rejects values of the
// wrong type with an *UpdateValueError, Delete always fails with a
// *DeleteError and Get reports unknown keys with a *KeyNotFoundError.
//
// The three enforcement errors match ErrStructuredDict under errors.Is, and
// each kind has its own sentinel so that callers need not know the key type
// to classify an error:
//
//	if errors.Is(err, record.ErrInitialization) { ... }
//
// Records iterate in schema declaration order and are not safe for concurrent
// mutation.
package record
