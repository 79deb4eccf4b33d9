package variants

import (
	"github.com/aretw0/structdict/pkg/record"
	"github.com/aretw0/structdict/pkg/schema"
)

// NumberedVariant is keyed by integers: {0: int, 1: int, 2: int, 3: float64, 4: string}.
var NumberedVariant = record.NewVariant("Numbered", schema.MustNew(
	schema.Key(0, schema.Int()),
	schema.Key(1, schema.Int()),
	schema.Key(2, schema.Int()),
	schema.Key(3, schema.Float()),
	schema.Key(4, schema.String()),
))
