// Package config loads user-defined record variants from a definitions file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/structdict/pkg/record"
	"github.com/aretw0/structdict/pkg/schema"
)

// DefaultPath is the definitions file looked up when none is given.
const DefaultPath = "variants.yaml"

// VariantConfig declares one string-keyed variant.
type VariantConfig struct {
	Name        string                 `yaml:"name" json:"name"`
	Description string                 `yaml:"description" json:"description"`
	Fields      *schema.Schema[string] `yaml:"fields" json:"fields"`
}

// ConfigFile represents the structure of variants.yaml
type ConfigFile struct {
	Variants []VariantConfig `yaml:"variants" json:"variants"`
}

// LoadVariants reads a definitions file (YAML or JSON) and returns the
// declared variants in file order. A missing file yields no variants.
func LoadVariants(path string) ([]*record.Variant[string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read variants config: %w", err)
	}

	var cfg ConfigFile
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	seen := make(map[string]bool, len(cfg.Variants))
	out := make([]*record.Variant[string], 0, len(cfg.Variants))
	for i, vc := range cfg.Variants {
		if vc.Name == "" {
			return nil, fmt.Errorf("variant #%d: name is required", i+1)
		}
		if seen[vc.Name] {
			return nil, fmt.Errorf("variant %s: declared more than once", vc.Name)
		}
		if vc.Fields == nil || vc.Fields.Len() == 0 {
			return nil, fmt.Errorf("variant %s: at least one field is required", vc.Name)
		}
		seen[vc.Name] = true
		out = append(out, record.NewVariant(vc.Name, vc.Fields, record.WithDescription[string](vc.Description)))
	}
	return out, nil
}
