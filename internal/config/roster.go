package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/compiler"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/sizing"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/util/ptr"
)

// Roster lists the attendees of a workshop for batch compilation.
type Roster struct {
	Attendees []Attendee `yaml:"attendees"`
}

// Attendee overrides per-person fields of the base spec.
type Attendee struct {
	BaseName    string      `yaml:"base_name"`
	Suffix      string      `yaml:"suffix,omitempty"`
	Environment sizing.Tier `yaml:"environment,omitempty"`
	Stage       *int        `yaml:"stage,omitempty"`
}

// LoadRoster reads and validates a roster file.
func LoadRoster(path string) (*Roster, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the user's roster file
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}
	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse roster YAML: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("roster validation failed: %w", err)
	}
	return &r, nil
}

// Validate checks every attendee.
func (r *Roster) Validate() error {
	if len(r.Attendees) == 0 {
		return errors.New("roster has no attendees")
	}
	var errs []error
	for i, a := range r.Attendees {
		if err := validateBaseName(a.BaseName); err != nil {
			errs = append(errs, fmt.Errorf("attendees[%d]: %w", i, err))
		}
		if err := validateSuffix(a.Suffix); err != nil {
			errs = append(errs, fmt.Errorf("attendees[%d]: %w", i, err))
		}
		if a.Environment != "" {
			if _, err := sizing.ParseTier(string(a.Environment)); err != nil {
				errs = append(errs, fmt.Errorf("attendees[%d]: %w", i, err))
			}
		}
		if a.Stage != nil && *a.Stage < 0 {
			errs = append(errs, fmt.Errorf("attendees[%d]: stage must be >= 0", i))
		}
	}
	return errors.Join(errs...)
}

// Inputs returns one compiler input per attendee, filling unset fields
// from base.
func (r *Roster) Inputs(base *Spec) []compiler.Input {
	inputs := make([]compiler.Input, 0, len(r.Attendees))
	for _, a := range r.Attendees {
		in := base.ToInput()
		in.BaseName = a.BaseName
		in.Suffix = a.Suffix
		in.Stage = ptr.Deref(a.Stage, base.Stage)
		if a.Environment != "" {
			if tier, err := sizing.ParseTier(string(a.Environment)); err == nil {
				in.Environment = tier
			}
		}
		inputs = append(inputs, in)
	}
	return inputs
}
