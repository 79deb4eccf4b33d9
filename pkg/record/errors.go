package record

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/structdict/internal/repr"
	"github.com/aretw0/structdict/pkg/schema"
)

// ErrStructuredDict is matched by every schema enforcement failure:
// InitializationError, UpdateValueError and DeleteError.
var ErrStructuredDict = errors.New("structured dict violation")

// Kind sentinels, matched with errors.Is regardless of the record's key type.
var (
	ErrInitialization = errors.New("initialization failed")
	ErrUpdateValue    = errors.New("update value rejected")
	ErrDelete         = errors.New("delete rejected")
	ErrKeyNotFound    = errors.New("key not found")
)

// InitializationError reports an initial mapping that does not conform to the
// schema. It carries the input and the three discrepancy sets so callers can
// build diagnostics without recomputing them.
type InitializationError[K comparable] struct {
	Input      map[K]any
	Schema     *schema.Schema[K]
	Missing    []K
	Extra      []K
	TypeErrors []K
}

func (e *InitializationError[K]) Error() string {
	var b strings.Builder
	if len(e.Missing) > 0 {
		b.WriteString("the following keys are missing from d: " + repr.Set(e.Missing) + ";\n")
	}
	if len(e.Extra) > 0 {
		b.WriteString("the following keys were supplied in error: " + repr.Set(e.Extra) + ";\n")
	}
	for _, key := range e.TypeErrors {
		expected := "<undeclared>"
		if t, ok := e.Schema.TypeOf(key); ok {
			expected = t.Name()
		}
		fmt.Fprintf(&b, "the type of d[%s] is %s, but it should be %s;\n",
			repr.Value(key), repr.TypeName(e.Input[key]), expected)
	}
	return strings.TrimSuffix(b.String(), ";\n")
}

func (e *InitializationError[K]) Is(target error) bool {
	return target == ErrStructuredDict || target == ErrInitialization
}

// UpdateValueError reports a write whose value does not have the declared type.
type UpdateValueError struct {
	Key      any
	Value    any
	Expected schema.Type
}

func (e *UpdateValueError) Error() string {
	return fmt.Sprintf("The type of %s is %s, but the value corresponding to the key %s should have type %s",
		repr.Value(e.Value), repr.TypeName(e.Value), repr.Value(e.Key), e.Expected.Name())
}

func (e *UpdateValueError) Is(target error) bool {
	return target == ErrStructuredDict || target == ErrUpdateValue
}

// DeleteError is returned by every Delete call: the key set of a record is closed.
type DeleteError struct {
	Key any
}

func (e *DeleteError) Error() string {
	return "You cannot delete from a StructuredDict"
}

func (e *DeleteError) Is(target error) bool {
	return target == ErrStructuredDict || target == ErrDelete
}

// KeyNotFoundError is an ordinary lookup miss for a key outside the schema.
type KeyNotFoundError struct {
	Key any
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %s is not part of the schema", repr.Value(e.Key))
}

func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}

// KindOf names the kind of a record error, or returns "" for foreign errors.
func KindOf(err error) string {
	switch {
	case errors.Is(err, ErrInitialization):
		return "InitializationError"
	case errors.Is(err, ErrUpdateValue):
		return "UpdateValueError"
	case errors.Is(err, ErrDelete):
		return "DeleteError"
	case errors.Is(err, ErrKeyNotFound):
		return "KeyNotFoundError"
	default:
		return ""
	}
}
