package record_test

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/structdict/pkg/record"
	"github.com/aretw0/structdict/pkg/schema"
)

var rectangle = record.NewVariant("Rectangle", schema.MustNew(
	schema.Key("len1", schema.Float()),
	schema.Key("len2", schema.Float()),
))

var numbered = schema.MustNew(
	schema.Key(0, schema.Int()),
	schema.Key(1, schema.Int()),
	schema.Key(2, schema.Int()),
	schema.Key(3, schema.Float()),
	schema.Key(4, schema.String()),
)

func newRect(t *testing.T, len1, len2 any) *record.Record[string] {
	t.Helper()
	r, err := rectangle.New(map[string]any{"len1": len1, "len2": len2})
	require.NoError(t, err)
	return r
}

func TestNew_Success(t *testing.T) {
	r := newRect(t, 2.0, 4.0)

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"len1", "len2"}, slices.Collect(r.Keys()))
	assert.True(t, r.Contains("len1"))
	assert.False(t, r.Contains("len3"))

	v, err := r.Get("len2")
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
}

func TestNew_CopiesInput(t *testing.T) {
	input := map[string]any{"len1": 1.0, "len2": 1.0}
	r, err := rectangle.New(input)
	require.NoError(t, err)

	input["len1"] = 99.0
	delete(input, "len2")

	assert.Equal(t, map[string]any{"len1": 1.0, "len2": 1.0}, r.ToMap())
}

func TestNew_Failures(t *testing.T) {
	t.Run("Wrong Types", func(t *testing.T) {
		r, err := rectangle.New(map[string]any{"len1": 2, "len2": "4"})
		assert.Nil(t, r)

		var initErr *record.InitializationError[string]
		require.ErrorAs(t, err, &initErr)
		assert.Empty(t, initErr.Missing)
		assert.Empty(t, initErr.Extra)
		assert.ElementsMatch(t, []string{"len1", "len2"}, initErr.TypeErrors)
		assert.Equal(t,
			"the type of d['len1'] is int, but it should be float64;\n"+
				"the type of d['len2'] is string, but it should be float64",
			err.Error())
	})

	t.Run("Missing Extra And Mismatched", func(t *testing.T) {
		input := map[int]any{2: 2, 3: 3, 4: 4, 5: 5, 6: 6}
		r, err := record.New(numbered, input)
		assert.Nil(t, r)

		var initErr *record.InitializationError[int]
		require.ErrorAs(t, err, &initErr)
		assert.Equal(t, []int{0, 1}, initErr.Missing)
		assert.Equal(t, []int{5, 6}, initErr.Extra)
		assert.Equal(t, []int{3, 4}, initErr.TypeErrors)
		assert.Equal(t, numbered, initErr.Schema)
		assert.Equal(t, input, initErr.Input)
		assert.Equal(t,
			"the following keys are missing from d: {0, 1};\n"+
				"the following keys were supplied in error: {5, 6};\n"+
				"the type of d[3] is int, but it should be float64;\n"+
				"the type of d[4] is int, but it should be string",
			err.Error())
	})

	t.Run("Only Structural", func(t *testing.T) {
		_, err := rectangle.New(map[string]any{"len1": 1.0, "depth": 3.0})
		assert.Equal(t,
			"the following keys are missing from d: {'len2'};\n"+
				"the following keys were supplied in error: {'depth'}",
			err.Error())
	})

	t.Run("Empty Input", func(t *testing.T) {
		_, err := rectangle.New(nil)
		var initErr *record.InitializationError[string]
		require.ErrorAs(t, err, &initErr)
		assert.Equal(t, []string{"len1", "len2"}, initErr.Missing)
	})

	t.Run("Error Kinds", func(t *testing.T) {
		_, err := rectangle.New(map[string]any{})
		assert.ErrorIs(t, err, record.ErrStructuredDict)
		assert.ErrorIs(t, err, record.ErrInitialization)
		assert.NotErrorIs(t, err, record.ErrUpdateValue)
		assert.Equal(t, "InitializationError", record.KindOf(err))
	})
}

func TestRecord_Get(t *testing.T) {
	r := newRect(t, 2.0, 4.0)

	_, err := r.Get("len3")
	var notFound *record.KeyNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "len3", notFound.Key)
	assert.NotErrorIs(t, err, record.ErrStructuredDict)
	assert.ErrorIs(t, err, record.ErrKeyNotFound)
	assert.Equal(t, "key 'len3' is not part of the schema", err.Error())

	_, ok := r.Lookup("len3")
	assert.False(t, ok)
	v, ok := r.Lookup("len1")
	assert.True(t, ok)
	assert.Equal(t, 2.0, v)
}

func TestRecord_Set(t *testing.T) {
	t.Run("Matching Type", func(t *testing.T) {
		r := newRect(t, 2.0, 4.0)
		require.NoError(t, r.Set("len1", 3.5))

		v, err := r.Get("len1")
		require.NoError(t, err)
		assert.Equal(t, 3.5, v)
		assert.Equal(t, []string{"len1", "len2"}, slices.Collect(r.Keys()), "order survives updates")
	})

	t.Run("Mismatched Type", func(t *testing.T) {
		r := newRect(t, 2.0, 4.0)
		err := r.Set("len1", 2)

		var updErr *record.UpdateValueError
		require.ErrorAs(t, err, &updErr)
		assert.Equal(t, "len1", updErr.Key)
		assert.Equal(t, 2, updErr.Value)
		assert.Equal(t, schema.Float(), updErr.Expected)
		assert.Equal(t,
			"The type of 2 is int, but the value corresponding to the key 'len1' should have type float64",
			err.Error())
		assert.ErrorIs(t, err, record.ErrStructuredDict)

		v, _ := r.Get("len1")
		assert.Equal(t, 2.0, v, "rejected write must not mutate")
	})

	t.Run("Unknown Key", func(t *testing.T) {
		r := newRect(t, 2.0, 4.0)
		err := r.Set("depth", 1.0)
		assert.ErrorIs(t, err, record.ErrKeyNotFound)
		assert.Equal(t, 2, r.Len())
		assert.False(t, r.Contains("depth"))
	})
}

func TestRecord_Delete(t *testing.T) {
	r := newRect(t, 2.0, 4.0)

	for _, key := range []string{"len1", "len2", "nope", ""} {
		err := r.Delete(key)
		var delErr *record.DeleteError
		require.ErrorAs(t, err, &delErr)
		assert.Equal(t, key, delErr.Key)
		assert.Equal(t, "You cannot delete from a StructuredDict", err.Error())
		assert.True(t, errors.Is(err, record.ErrStructuredDict))
	}

	assert.Equal(t, map[string]any{"len1": 2.0, "len2": 4.0}, r.ToMap())
}

func TestRecord_Iteration(t *testing.T) {
	r, err := record.New(numbered, map[int]any{0: 1, 1: 2, 2: 3, 3: 4.5, 4: "five"})
	require.NoError(t, err)

	first := slices.Collect(r.Keys())
	second := slices.Collect(r.Keys())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, first)
	assert.Equal(t, first, second, "iteration must restart")

	var partial []int
	for k := range r.Keys() {
		partial = append(partial, k)
		if k == 1 {
			break
		}
	}
	assert.Equal(t, []int{0, 1}, partial)

	values := make(map[int]any)
	for k, v := range r.All() {
		values[k] = v
	}
	assert.Equal(t, r.ToMap(), values)
}

func TestRecord_Rendering(t *testing.T) {
	r := newRect(t, 2.0, 4.5)
	assert.Equal(t, "{'len1': 2.0, 'len2': 4.5}", r.String())
	assert.Equal(t, `Rectangle{"len1":2, "len2":4.5}`, fmt.Sprintf("%#v", r))

	anon, err := record.New(numbered, map[int]any{0: 1, 1: 2, 2: 3, 3: 4.5, 4: "five"})
	require.NoError(t, err)
	assert.Equal(t, "{0: 1, 1: 2, 2: 3, 3: 4.5, 4: 'five'}", anon.String())
	assert.Equal(t, `Record{0:1, 1:2, 2:3, 3:4.5, 4:"five"}`, anon.GoString())

	custom := rectangle.With(record.WithFormatter(func(r *record.Record[string]) string {
		a, _ := record.Value[float64](r, "len1")
		b, _ := record.Value[float64](r, "len2")
		return fmt.Sprintf("%gx%g", a, b)
	}))
	c, err := custom.New(map[string]any{"len1": 2.0, "len2": 3.0})
	require.NoError(t, err)
	assert.Equal(t, "2x3", c.String())
	assert.Equal(t, `Rectangle{"len1":2, "len2":3}`, c.GoString())
}

func TestValue(t *testing.T) {
	r := newRect(t, 2.0, 4.0)

	f, err := record.Value[float64](r, "len1")
	require.NoError(t, err)
	assert.Equal(t, 2.0, f)

	_, err = record.Value[string](r, "len1")
	assert.ErrorContains(t, err, "is float64, not string")

	_, err = record.Value[float64](r, "len9")
	assert.ErrorIs(t, err, record.ErrKeyNotFound)
}

func TestDecode(t *testing.T) {
	type dims struct {
		Len1 float64 `mapstructure:"len1"`
		Len2 float64 `mapstructure:"len2"`
	}

	var d dims
	require.NoError(t, record.Decode(newRect(t, 2.0, 4.0), &d))
	assert.Equal(t, dims{Len1: 2.0, Len2: 4.0}, d)

	var wrong struct {
		Len1 string `mapstructure:"len1"`
	}
	assert.Error(t, record.Decode(newRect(t, 2.0, 4.0), &wrong))

	var truncated struct {
		Len1 int `mapstructure:"len1"`
	}
	err := record.Decode(newRect(t, 2.9, 4.0), &truncated)
	assert.ErrorContains(t, err, "cannot decode float64 into int")
	assert.Zero(t, truncated.Len1)
}

func TestVariant(t *testing.T) {
	assert.Equal(t, "Rectangle", rectangle.Name())
	assert.Equal(t, []string{"len1", "len2"}, rectangle.Schema().Keys())

	r := newRect(t, 1.0, 1.0)
	assert.Same(t, rectangle, r.Variant())
	assert.Same(t, rectangle.Schema(), r.Schema())
}
