package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/structdict/pkg/record"
)

// GenerateMermaid produces a Mermaid class diagram with one class per
// variant and one member per declared key, typed with the Go type name.
// Variants listed in highlight are styled so they stand out.
func GenerateMermaid(variants []*record.Variant[string], highlight ...string) string {
	var sb strings.Builder
	sb.WriteString("classDiagram\n")

	for _, v := range variants {
		safeID := sanitizeMermaidID(v.Name())
		sb.WriteString(fmt.Sprintf("    class %s {\n", safeID))
		for _, f := range v.Schema().Fields() {
			sb.WriteString(fmt.Sprintf("        +%s %s\n", sanitizeMermaidType(f.Type.Name()), sanitizeMermaidID(f.Key)))
		}
		sb.WriteString("    }\n")
	}

	if len(highlight) > 0 {
		// Force black text (color:#000) for high-contrast on light backgrounds
		sb.WriteString("    classDef selected fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		for _, name := range highlight {
			sb.WriteString(fmt.Sprintf("    class %s:::selected\n", sanitizeMermaidID(name)))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

// sanitizeMermaidType swaps slice brackets for Mermaid's generic tildes.
func sanitizeMermaidType(name string) string {
	if elem, ok := strings.CutPrefix(name, "[]"); ok {
		return "List~" + sanitizeMermaidType(elem) + "~"
	}
	return strings.ReplaceAll(name, ".", "_")
}
