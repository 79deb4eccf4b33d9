package record

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Decode copies a string-keyed record into out, a pointer to a struct whose
// fields carry `mapstructure` tags naming the record keys. Conversions are
// strict: a scalar value only lands in a field of the same kind, so a
// float64 never decodes into an int field.
func Decode(r *Record[string], out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     out,
		TagName:    "mapstructure",
		DecodeHook: mapstructure.DecodeHookFuncType(sameScalarKind),
	})
	if err != nil {
		return fmt.Errorf("record: build decoder: %w", err)
	}
	if err := decoder.Decode(r.ToMap()); err != nil {
		return fmt.Errorf("record: decode %s: %w", r.variant.name, err)
	}
	return nil
}

// sameScalarKind rejects conversions between different scalar kinds.
func sameScalarKind(from, to reflect.Type, data any) (any, error) {
	if isScalar(from.Kind()) && isScalar(to.Kind()) && from.Kind() != to.Kind() {
		return nil, fmt.Errorf("cannot decode %s into %s", from, to)
	}
	return data, nil
}

func isScalar(k reflect.Kind) bool {
	switch k {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}
