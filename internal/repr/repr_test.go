package repr

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "None"},
		{"string", "len1", "'len1'"},
		{"string with quote", "it's", `"it's"`},
		{"string with both quotes", `it's "x"`, `'it\'s "x"'`},
		{"newline", "a\nb", `'a\nb'`},
		{"backslash", `a\b`, `'a\\b'`},
		{"control", "\x01", `'\x01'`},
		{"true", true, "True"},
		{"false", false, "False"},
		{"int", 2, "2"},
		{"negative int64", int64(-7), "-7"},
		{"whole float", 2.0, "2.0"},
		{"fraction", 3.14, "3.14"},
		{"negative zero", negZero(), "-0.0"},
		{"small", 0.0001, "0.0001"},
		{"tiny", 0.00001, "1e-05"},
		{"large", 1e16, "1e+16"},
		{"below large", 1234567890123456.0, "1234567890123456.0"},
		{"float32", float32(0.1), "0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Value(tt.in))
		})
	}
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "int", TypeName(2))
	assert.Equal(t, "float64", TypeName(2.0))
	assert.Equal(t, "string", TypeName("4"))
	assert.Equal(t, "<nil>", TypeName(nil))
}

func TestSet(t *testing.T) {
	assert.Equal(t, "{0, 1}", Set([]int{0, 1}))
	assert.Equal(t, "{'a', 'b'}", Set([]any{"a", "b"}))
	assert.Equal(t, "{}", Set([]string{}))
}

func TestCompare(t *testing.T) {
	keys := []any{6, "b", 5, 2.5, "a", true}
	slices.SortFunc(keys, Compare)
	assert.Equal(t, []any{true, 2.5, 5, 6, "a", "b"}, keys)
}

func negZero() float64 {
	z := 0.0
	return -z
}
