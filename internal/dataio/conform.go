package dataio

import (
	"reflect"

	"github.com/aretw0/structdict/pkg/schema"
)

// Conform retypes decoded lists to the slice types s declares for their keys.
// A list is converted only when every element already has the exact element
// type; otherwise it is kept as decoded so validation reports the mismatch.
// Other values are copied unchanged.
func Conform(data map[string]any, s *schema.Schema[string]) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
		t, ok := s.TypeOf(k)
		if !ok || t.Kind() != schema.KindSlice {
			continue
		}
		if conv, ok := fit(v, t.Reflect()); ok {
			out[k] = conv.Interface()
		}
	}
	return out
}

func fit(v any, rt reflect.Type) (reflect.Value, bool) {
	if reflect.TypeOf(v) == rt {
		return reflect.ValueOf(v), true
	}
	list, ok := v.([]any)
	if !ok || rt.Kind() != reflect.Slice {
		return reflect.Value{}, false
	}
	out := reflect.MakeSlice(rt, len(list), len(list))
	for i, e := range list {
		ev, ok := fit(e, rt.Elem())
		if !ok {
			return reflect.Value{}, false
		}
		out.Index(i).Set(ev)
	}
	return out, true
}
