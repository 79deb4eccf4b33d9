package variants

import "github.com/aretw0/structdict/pkg/registry"

// RegisterBuiltins adds the string-keyed built-in variants to reg.
func RegisterBuiltins(reg *registry.Registry) {
	reg.Register(RectangleVariant)
	reg.Register(StudentVariant)
}
