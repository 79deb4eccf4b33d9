// Package demo walks through the record enforcement paths: a successful
// construction followed by one rejected delete, one rejected update and two
// rejected constructions.
package demo

import (
	"errors"
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/aretw0/structdict/internal/repr"
	"github.com/aretw0/structdict/pkg/record"
	"github.com/aretw0/structdict/pkg/variants"
)

// Options configures a demo run.
type Options struct {
	// Profile controls label colouring; termenv.Ascii prints plain text.
	Profile termenv.Profile
	// Hooks are attached to every variant the demo builds.
	Hooks record.Hooks
}

type scenario func(rect *record.Variant[string], numbered *record.Variant[int]) error

var scenarios = []scenario{
	func(rect *record.Variant[string], _ *record.Variant[int]) error {
		r, err := variants.RectangleFrom(rect, 2.0, 4.0)
		if err != nil {
			return err
		}
		return r.Delete("len1")
	},
	func(rect *record.Variant[string], _ *record.Variant[int]) error {
		r, err := variants.RectangleFrom(rect, 2.0, 4.0)
		if err != nil {
			return err
		}
		return r.Set("len1", 2)
	},
	func(rect *record.Variant[string], _ *record.Variant[int]) error {
		_, err := variants.RectangleFrom(rect, 2, "4")
		return err
	},
	func(_ *record.Variant[string], numbered *record.Variant[int]) error {
		_, err := numbered.New(map[int]any{2: 2, 3: 3, 4: 4, 5: 5, 6: 6})
		return err
	},
}

// Run prints the demo to w. It returns an error only when a scenario fails
// in a way the demo does not expect.
func Run(w io.Writer, opts Options) error {
	out := termenv.NewOutput(w, termenv.WithProfile(opts.Profile))
	rect := variants.RectangleVariant.With(record.WithHooks[string](opts.Hooks))
	numbered := variants.NumberedVariant.With(record.WithHooks[int](opts.Hooks))

	r, err := variants.RectangleFrom(rect, 2.0, 4.0)
	if err != nil {
		return fmt.Errorf("demo rectangle: %w", err)
	}
	fmt.Fprintln(w, "area =", repr.Value(r.Area()))

	for i, run := range scenarios {
		fmt.Fprintln(w)
		err := run(rect, numbered)
		if !errors.Is(err, record.ErrStructuredDict) {
			return fmt.Errorf("scenario %d: expected an enforcement error, got %v", i+1, err)
		}
		label := out.String(record.KindOf(err) + ":").Foreground(out.Color("#f87171")).Bold()
		fmt.Fprintln(w, label.String(), err.Error())
	}
	return nil
}
