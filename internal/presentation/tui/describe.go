package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/structdict/internal/repr"
	"github.com/aretw0/structdict/pkg/record"
)

// DescribeMarkdown renders a variant as a markdown document with one table
// row per declared key.
func DescribeMarkdown[K comparable](v *record.Variant[K]) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", v.Name())
	if d := v.Description(); d != "" {
		sb.WriteString(d + "\n\n")
	}
	sb.WriteString("| Key | Type | Kind |\n")
	sb.WriteString("|-----|------|------|\n")
	for _, f := range v.Schema().Fields() {
		fmt.Fprintf(&sb, "| `%s` | `%s` | %s |\n", repr.Value(f.Key), f.Type.Name(), f.Type.Kind())
	}
	return sb.String()
}
