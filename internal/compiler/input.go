package compiler

import (
	"strings"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/catalog"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/sizing"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/stagegate"
)

// Input is everything one compilation depends on.
type Input struct {
	Stage       int
	Environment sizing.Tier
	BaseName    string
	Suffix      string
	Location    string
	Tags        map[string]string
	// Disabled switches off kinds that the stage would otherwise activate.
	// Their dependents are deactivated by cascade.
	Disabled []catalog.ResourceKind
	Naming   NamingOptions
}

// NamingOptions tune generated names.
type NamingOptions struct {
	// MaxLength caps every name. Catalog limits still apply when lower.
	MaxLength int
	// IncludeStage adds the stage to every name.
	IncludeStage bool
}

func (in Input) validate(cat *catalog.Catalog) error {
	if in.Stage < 0 {
		err := &stagegate.InvalidStageError{Stage: in.Stage}
		return &InvalidInputError{Field: "stage", Reason: err.Error(), Err: err}
	}
	if !in.Environment.IsValid() {
		return invalid("environment", "%q is not one of dev, staging, prod", in.Environment)
	}
	if !strings.ContainsFunc(in.BaseName, isAlnum) {
		return invalid("baseName", "must contain at least one letter or digit")
	}
	if in.Naming.MaxLength < 0 {
		return invalid("naming.maxLength", "must not be negative")
	}
	for _, kind := range in.Disabled {
		if _, ok := cat.Lookup(kind); !ok {
			return invalid("disabled", "unknown kind %q", kind)
		}
	}
	return nil
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
