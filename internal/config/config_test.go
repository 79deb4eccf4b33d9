package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/structdict/internal/testutils"
)

func writeFile(t *testing.T, name, content string) string {
	return testutils.WriteFile(t, "", name, content)
}

func TestLoadVariants_YAML(t *testing.T) {
	path := writeFile(t, "variants.yaml", `
variants:
  - name: Point
    description: A point on the plane
    fields:
      - key: x
        type: int
      - key: y
        type: int
  - name: Tagged
    fields:
      - key: tags
        type: "[str]"
`)

	variants, err := LoadVariants(path)
	require.NoError(t, err)
	require.Len(t, variants, 2)

	assert.Equal(t, "Point", variants[0].Name())
	assert.Equal(t, "A point on the plane", variants[0].Description())
	assert.Equal(t, []string{"x", "y"}, variants[0].Schema().Keys())

	r, err := variants[1].New(map[string]any{"tags": []string{"a"}})
	require.NoError(t, err)
	assert.Equal(t, 1, r.Len())
}

func TestLoadVariants_JSON(t *testing.T) {
	path := writeFile(t, "variants.json",
		`{"variants":[{"name":"Flag","fields":[{"key":"on","type":"bool"}]}]}`)

	variants, err := LoadVariants(path)
	require.NoError(t, err)
	require.Len(t, variants, 1)
	assert.Equal(t, "Flag", variants[0].Name())
}

func TestLoadVariants_Missing(t *testing.T) {
	variants, err := LoadVariants(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Empty(t, variants)
}

func TestLoadVariants_Invalid(t *testing.T) {
	tests := map[string]string{
		"no name":      "variants:\n  - fields:\n      - key: a\n        type: int\n",
		"no fields":    "variants:\n  - name: A\n",
		"bad type":     "variants:\n  - name: A\n    fields:\n      - key: a\n        type: complex\n",
		"duplicate":    "variants:\n  - name: A\n    fields: [{key: a, type: int}]\n  - name: A\n    fields: [{key: a, type: int}]\n",
		"syntax error": "variants: [",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadVariants(writeFile(t, "variants.yaml", content))
			assert.Error(t, err)
		})
	}
}
