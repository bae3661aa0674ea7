package catalog

import (
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/sizing"
)

// ResourceKind identifies a kind of cloud resource, e.g. "search-index".
type ResourceKind string

// NameStyle selects how name components are joined.
type NameStyle string

const (
	// StyleHyphenated joins components with '-' (most Azure resources).
	StyleHyphenated NameStyle = "hyphenated"
	// StyleCompact drops all separators (storage accounts, registries).
	StyleCompact NameStyle = "compact"
)

// IsValid returns true for known styles and the empty default.
func (s NameStyle) IsValid() bool {
	switch s {
	case "", StyleHyphenated, StyleCompact:
		return true
	default:
		return false
	}
}

// NamingPolicy controls how names are generated for one kind.
type NamingPolicy struct {
	// Abbreviation replaces the kind in the name, e.g. "srch".
	Abbreviation string `yaml:"abbreviation,omitempty"`
	// Style defaults to StyleHyphenated.
	Style NameStyle `yaml:"style,omitempty"`
	// MaxLength is the provider limit; 0 means the compile-wide default.
	MaxLength int `yaml:"max_length,omitempty"`
}

// OutputSpec declares the single output a kind contributes to every plan.
type OutputSpec struct {
	// Key defaults to the kind.
	Key string `yaml:"key,omitempty"`
	// Format may reference {name}, {location}, {sku}, {kind} and {environment}.
	// Defaults to "{name}".
	Format string `yaml:"format,omitempty"`
}

// ResourceSpec is one catalog entry.
type ResourceSpec struct {
	Kind        ResourceKind   `yaml:"kind"`
	Type        string         `yaml:"type,omitempty"`
	Description string         `yaml:"description,omitempty"`
	MinStage    int            `yaml:"min_stage"`
	DependsOn   []ResourceKind `yaml:"depends_on,omitempty"`
	Sizing      sizing.Rule    `yaml:"sizing"`
	Naming      NamingPolicy   `yaml:"naming,omitempty"`
	Output      OutputSpec     `yaml:"output,omitempty"`
}

// Discriminator returns the component naming uses to tell kinds apart.
func (s ResourceSpec) Discriminator() string {
	if s.Naming.Abbreviation != "" {
		return s.Naming.Abbreviation
	}
	return string(s.Kind)
}

// OutputKey returns the key of this kind's output.
func (s ResourceSpec) OutputKey() string {
	if s.Output.Key != "" {
		return s.Output.Key
	}
	return string(s.Kind)
}

// OutputFormat returns the template of this kind's output value.
func (s ResourceSpec) OutputFormat() string {
	if s.Output.Format != "" {
		return s.Output.Format
	}
	return "{name}"
}

// NameStyle returns the effective naming style.
func (s ResourceSpec) NameStyle() NameStyle {
	if s.Naming.Style == "" {
		return StyleHyphenated
	}
	return s.Naming.Style
}

func (s ResourceSpec) clone() ResourceSpec {
	out := s
	out.DependsOn = append([]ResourceKind(nil), s.DependsOn...)
	out.Sizing = s.Sizing.Clone()
	return out
}

// Warning is a non-fatal finding recorded when the catalog is loaded.
type Warning struct {
	Code    string
	Kind    ResourceKind
	Cause   ResourceKind
	Message string
}

// Warning codes.
const (
	WarningStageInversion = "stage-inversion"
	WarningSizingLint     = "sizing-lint"
)
