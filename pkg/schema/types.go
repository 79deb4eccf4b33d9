package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// Kind tags the family a Type belongs to.
type Kind int

const (
	KindInt Kind = iota + 1
	KindFloat
	KindString
	KindBool
	KindSlice
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindSlice:
		return "slice"
	case KindCustom:
		return "custom"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Type defines the contract for field validation.
// A value conforms only when its dynamic type is exactly the described type:
// an int never satisfies a float field and a named string type never
// satisfies a string field.
type Type interface {
	// Name returns the Go name of the type (e.g., "string", "float64").
	Name() string
	// Kind returns the family tag of the type.
	Kind() Kind
	// Reflect returns the exact runtime type values must have.
	Reflect() reflect.Type
	// Validate checks if a value conforms to this type.
	Validate(value any) error
}

// ExactType matches values whose dynamic type is identical to rtype.
type ExactType struct {
	name  string
	kind  Kind
	rtype reflect.Type
}

func (t *ExactType) Name() string { return t.name }

func (t *ExactType) Kind() Kind { return t.kind }

func (t *ExactType) Reflect() reflect.Type { return t.rtype }

func (t *ExactType) Validate(value any) error {
	if reflect.TypeOf(value) != t.rtype {
		return fmt.Errorf("expected %s, got %T", t.name, value)
	}
	return nil
}

func (t *ExactType) String() string { return t.name }

var (
	intType    = &ExactType{name: "int", kind: KindInt, rtype: reflect.TypeFor[int]()}
	floatType  = &ExactType{name: "float64", kind: KindFloat, rtype: reflect.TypeFor[float64]()}
	stringType = &ExactType{name: "string", kind: KindString, rtype: reflect.TypeFor[string]()}
	boolType   = &ExactType{name: "bool", kind: KindBool, rtype: reflect.TypeFor[bool]()}
)

// --- Factory Functions ---

// Int matches values of type int.
func Int() Type { return intType }

// Float matches values of type float64.
func Float() Type { return floatType }

// String matches values of type string.
func String() Type { return stringType }

// Bool matches values of type bool.
func Bool() Type { return boolType }

// Slice matches slices whose element type is exactly elemType.
func Slice(elemType Type) Type {
	rt := reflect.SliceOf(elemType.Reflect())
	return &ExactType{name: rt.String(), kind: KindSlice, rtype: rt}
}

// Custom matches values whose dynamic type is rt, reported under name.
func Custom(name string, rt reflect.Type) Type {
	return &ExactType{name: name, kind: KindCustom, rtype: rt}
}

// Of returns the Type describing T. Built-in kinds map to their shared
// descriptors; anything else becomes a custom type named after T.
func Of[T any]() Type {
	rt := reflect.TypeFor[T]()
	for _, builtin := range []Type{intType, floatType, stringType, boolType} {
		if builtin.Reflect() == rt {
			return builtin
		}
	}
	if rt.Kind() == reflect.Slice && rt.Name() == "" {
		return &ExactType{name: rt.String(), kind: KindSlice, rtype: rt}
	}
	return Custom(rt.String(), rt)
}

// ParseType converts a type name to a Type.
// Supports "int", "float"/"float64", "str"/"string", "bool" and slices of
// those written as "[int]" or "[]int".
func ParseType(typeStr string) (Type, error) {
	typeStr = strings.TrimSpace(typeStr)

	// Handle slice types: [string], []string, etc.
	if elem, ok := strings.CutPrefix(typeStr, "[]"); ok && elem != "" {
		elemType, err := ParseType(elem)
		if err != nil {
			return nil, err
		}
		return Slice(elemType), nil
	}
	if len(typeStr) > 2 && typeStr[0] == '[' && typeStr[len(typeStr)-1] == ']' {
		elemType, err := ParseType(typeStr[1 : len(typeStr)-1])
		if err != nil {
			return nil, err
		}
		return Slice(elemType), nil
	}

	switch typeStr {
	case "int":
		return Int(), nil
	case "float", "float64":
		return Float(), nil
	case "str", "string":
		return String(), nil
	case "bool":
		return Bool(), nil
	default:
		return nil, fmt.Errorf("unsupported type: %s", typeStr)
	}
}
