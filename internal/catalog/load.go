package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/sizing"
)

// File is the on-disk catalog document.
type File struct {
	// SKULadder overrides the default SKU strength order, weakest first.
	SKULadder []string `yaml:"sku_ladder,omitempty"`
	// StrictStageOrder rejects dependencies on later-stage kinds.
	StrictStageOrder bool           `yaml:"strict_stage_order,omitempty"`
	Resources        []ResourceSpec `yaml:"resources"`
}

//go:embed workshop.yaml
var workshopYAML []byte

// Builtin returns the workshop catalog embedded in the binary.
func Builtin(opts ...Option) (*Catalog, error) {
	return Parse(workshopYAML, opts...)
}

// BuiltinSource returns the raw YAML of the embedded catalog.
func BuiltinSource() []byte {
	return append([]byte(nil), workshopYAML...)
}

// LoadFile reads and validates a catalog from a YAML file.
func LoadFile(path string, opts ...Option) (*Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided catalog location
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	cat, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes a YAML catalog and validates it with New. Unknown fields are
// rejected.
func Parse(data []byte, opts ...Option) (*Catalog, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ConfigurationError{Problems: []string{"catalog is empty"}}
		}
		return nil, Configuration(fmt.Errorf("failed to parse catalog YAML: %w", err))
	}

	var fileOpts []Option
	if len(f.SKULadder) > 0 {
		fileOpts = append(fileOpts, WithLadder(sizing.LadderFromNames(f.SKULadder)))
	}
	if f.StrictStageOrder {
		fileOpts = append(fileOpts, WithStrictStageOrder())
	}
	// Caller options win over the document.
	return New(f.Resources, append(fileOpts, opts...)...)
}
