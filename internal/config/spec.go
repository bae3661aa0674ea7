package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/catalog"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/compiler"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/sizing"
)

// Spec is the configuration of one workshop deployment.
type Spec struct {
	// Stage is the curriculum module whose resources should exist.
	Stage int `yaml:"stage"`

	// Environment is the sizing tier: dev, staging or prod.
	Environment sizing.Tier `yaml:"environment"`

	// BaseName prefixes every resource name.
	// Must be DNS-safe: lowercase alphanumeric and hyphens.
	BaseName string `yaml:"base_name"`

	// Suffix makes names unique per attendee, e.g. initials or a short id.
	Suffix string `yaml:"suffix,omitempty"`

	// Location is the Azure region, e.g. "eastus".
	Location string `yaml:"location"`

	// Tags are added to every resource. Reserved tierplan keys are ignored.
	Tags map[string]string `yaml:"tags,omitempty"`

	// Catalog is the path of a catalog YAML file.
	// Relative paths resolve against the config file. Empty means builtin.
	Catalog string `yaml:"catalog,omitempty"`

	// StrictStageOrder rejects catalogs where a resource depends on a kind
	// unlocked at a later stage.
	StrictStageOrder bool `yaml:"strict_stage_order,omitempty"`

	// Disabled switches off kinds the stage would otherwise create.
	Disabled []string `yaml:"disabled,omitempty"`

	// Naming tunes generated names.
	Naming NamingSpec `yaml:"naming,omitempty"`

	// Store is where compiled plans are kept: file://dir, s3://bucket/prefix
	// or mem://. Empty disables persistence.
	Store string `yaml:"store,omitempty"`

	// dir is the directory of the file the spec was loaded from.
	dir string
}

// NamingSpec mirrors compiler.NamingOptions.
type NamingSpec struct {
	MaxLength    int  `yaml:"max_length,omitempty"`
	IncludeStage bool `yaml:"include_stage,omitempty"`
}

// Default returns a spec with the wizard defaults.
func Default() *Spec {
	return &Spec{
		Stage:       0,
		Environment: sizing.TierDev,
		Location:    "eastus",
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Spec) Validate() error {
	var errs []error

	if c.Stage < 0 {
		errs = append(errs, errors.New("stage must be >= 0"))
	}

	if _, err := sizing.ParseTier(string(c.Environment)); err != nil {
		errs = append(errs, fmt.Errorf("environment must be one of: %v", sizing.ValidTiers()))
	}

	if err := validateBaseName(c.BaseName); err != nil {
		errs = append(errs, err)
	}

	if err := validateSuffix(c.Suffix); err != nil {
		errs = append(errs, err)
	}

	if err := validateLocation(c.Location); err != nil {
		errs = append(errs, err)
	}

	for k := range c.Tags {
		if strings.TrimSpace(k) == "" {
			errs = append(errs, errors.New("tags must not have empty keys"))
			break
		}
	}

	for _, d := range c.Disabled {
		if strings.TrimSpace(d) == "" {
			errs = append(errs, errors.New("disabled must not contain empty kinds"))
			break
		}
	}

	if c.Naming.MaxLength < 0 {
		errs = append(errs, errors.New("naming.max_length must not be negative"))
	}

	return errors.Join(errs...)
}

// ToInput converts the spec to a compiler input.
func (c *Spec) ToInput() compiler.Input {
	env, err := sizing.ParseTier(string(c.Environment))
	if err != nil {
		env = c.Environment
	}
	disabled := make([]catalog.ResourceKind, 0, len(c.Disabled))
	for _, d := range c.Disabled {
		disabled = append(disabled, catalog.ResourceKind(strings.TrimSpace(d)))
	}
	tags := make(map[string]string, len(c.Tags))
	for k, v := range c.Tags {
		tags[k] = v
	}
	return compiler.Input{
		Stage:       c.Stage,
		Environment: env,
		BaseName:    c.BaseName,
		Suffix:      c.Suffix,
		Location:    c.Location,
		Tags:        tags,
		Disabled:    disabled,
		Naming: compiler.NamingOptions{
			MaxLength:    c.Naming.MaxLength,
			IncludeStage: c.Naming.IncludeStage,
		},
	}
}

// CatalogOptions returns the catalog options the spec asks for.
func (c *Spec) CatalogOptions() []catalog.Option {
	if c.StrictStageOrder {
		return []catalog.Option{catalog.WithStrictStageOrder()}
	}
	return nil
}

// CatalogPath returns the resolved catalog path, or "" for the builtin one.
func (c *Spec) CatalogPath() string {
	if c.Catalog == "" || filepath.IsAbs(c.Catalog) || c.dir == "" {
		return c.Catalog
	}
	return filepath.Join(c.dir, c.Catalog)
}

// LoadCatalog loads the catalog the spec refers to.
func (c *Spec) LoadCatalog(extra ...catalog.Option) (*catalog.Catalog, error) {
	opts := append(c.CatalogOptions(), extra...)
	if path := c.CatalogPath(); path != "" {
		return catalog.LoadFile(path, opts...)
	}
	return catalog.Builtin(opts...)
}

// validateBaseName validates the base name.
func validateBaseName(s string) error {
	if s == "" {
		return errors.New("base_name is required")
	}
	if len(s) > 63 {
		return errors.New("base_name must be 63 characters or less")
	}
	for _, c := range s {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '-' {
			return errors.New("base_name can only contain lowercase letters, numbers, and hyphens")
		}
	}
	if s[0] == '-' || s[len(s)-1] == '-' {
		return errors.New("base_name cannot start or end with a hyphen")
	}
	return nil
}

// validateSuffix validates the optional suffix.
func validateSuffix(s string) error {
	if len(s) > 16 {
		return errors.New("suffix must be 16 characters or less")
	}
	for _, c := range s {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return errors.New("suffix can only contain lowercase letters and numbers")
		}
	}
	return nil
}

// validateLocation validates the region name.
func validateLocation(s string) error {
	if s == "" {
		return errors.New("location is required")
	}
	for _, c := range s {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return fmt.Errorf("location %q must be an Azure region name such as eastus", s)
		}
	}
	return nil
}
