package variants

import (
	"github.com/aretw0/structdict/pkg/record"
	"github.com/aretw0/structdict/pkg/schema"
)

// RectangleVariant declares {len1: float64, len2: float64}.
var RectangleVariant = record.NewVariant("Rectangle", schema.MustNew(
	schema.Key("len1", schema.Float()),
	schema.Key("len2", schema.Float()),
), record.WithDescription[string]("A rectangle given by two side lengths"))

// Dimensions is the struct view of a Rectangle.
type Dimensions struct {
	Len1 float64 `mapstructure:"len1" json:"len1"`
	Len2 float64 `mapstructure:"len2" json:"len2"`
}

// Rectangle is a record with two float side lengths.
type Rectangle struct {
	*record.Record[string]
}

// NewRectangle builds a Rectangle. The sides are untyped so that callers
// reading external input get an InitializationError rather than a compile
// error when the values are not float64.
func NewRectangle(len1, len2 any) (*Rectangle, error) {
	return RectangleFrom(RectangleVariant, len1, len2)
}

// RectangleFrom builds a Rectangle from v, typically RectangleVariant with
// hooks attached.
func RectangleFrom(v *record.Variant[string], len1, len2 any) (*Rectangle, error) {
	r, err := v.New(map[string]any{"len1": len1, "len2": len2})
	if err != nil {
		return nil, err
	}
	return &Rectangle{Record: r}, nil
}

// Area returns len1 * len2.
func (r *Rectangle) Area() float64 {
	len1, _ := record.Value[float64](r.Record, "len1")
	len2, _ := record.Value[float64](r.Record, "len2")
	return len1 * len2
}

// Dimensions decodes the rectangle into its struct view.
func (r *Rectangle) Dimensions() (Dimensions, error) {
	var d Dimensions
	err := record.Decode(r.Record, &d)
	return d, err
}
