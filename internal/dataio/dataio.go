// Package dataio decodes record input documents from JSON or YAML.
//
// Numbers keep the kind their literal syntax implies: 2 decodes to int and
// 2.0 to float64, so exact type matching behaves the same for both formats.
package dataio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the document syntax.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatFor picks the format from a file extension, defaulting to YAML.
func FormatFor(path string) Format {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return JSON
	}
	return YAML
}

// ReadFile decodes the object stored at path.
func ReadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}
	return Decode(data, FormatFor(path))
}

// Decode parses a single object document.
func Decode(data []byte, format Format) (map[string]any, error) {
	var raw map[string]any

	switch format {
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case YAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	if raw == nil {
		return nil, fmt.Errorf("document is empty or not an object")
	}

	out := make(map[string]any, len(raw))
	for k, v := range raw {
		out[k] = normalize(v)
	}
	return out, nil
}

func normalize(v any) any {
	switch x := v.(type) {
	case json.Number:
		s := x.String()
		if !strings.ContainsAny(s, ".eE") {
			if i, err := strconv.Atoi(s); err == nil {
				return i
			}
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return s
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = normalize(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = normalize(e)
		}
		return out
	default:
		return v
	}
}
