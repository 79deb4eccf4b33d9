package tui

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/structdict/pkg/variants"
)

func TestDescribeMarkdown(t *testing.T) {
	md := DescribeMarkdown(variants.StudentVariant)

	assert.Contains(t, md, "# Student\n")
	assert.Contains(t, md, "A student's name and grade point average")
	assert.Contains(t, md, "| `'first name'` | `string` | string |")
	assert.Contains(t, md, "| `'GPA'` | `float64` | float |")

	numbered := DescribeMarkdown(variants.NumberedVariant)
	assert.Contains(t, numbered, "| `3` | `float64` | float |")
}

func TestNewRenderer(t *testing.T) {
	plain, err := NewRenderer(false)
	require.NoError(t, err)
	out, err := plain("# Title")
	require.NoError(t, err)
	assert.Equal(t, "# Title", out)

	styled, err := NewRenderer(true)
	require.NoError(t, err)
	out, err = styled("# Title\n\nbody")
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, termenv.Ascii)
	assert.Contains(t, buf.String(), "|___/")
	assert.NotContains(t, buf.String(), "\x1b[")
}
