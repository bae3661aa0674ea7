package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/sizing"
)

// Environment variables that override the config file.
const (
	EnvStage       = "TIERPLAN_STAGE"
	EnvEnvironment = "TIERPLAN_ENVIRONMENT"
	EnvSuffix      = "TIERPLAN_SUFFIX"
)

// LookupFunc reads an environment variable.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides fields from the process environment.
func (c *Spec) ApplyEnv() error {
	return c.ApplyEnvFrom(os.LookupEnv)
}

// ApplyEnvFrom overrides fields from lookup. Empty values are ignored.
func (c *Spec) ApplyEnvFrom(lookup LookupFunc) error {
	var errs []error

	if v, ok := lookupNonEmpty(lookup, EnvStage); ok {
		stage, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %q is not a number", EnvStage, v))
		} else {
			c.Stage = stage
		}
	}

	if v, ok := lookupNonEmpty(lookup, EnvEnvironment); ok {
		tier, err := sizing.ParseTier(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvEnvironment, err))
		} else {
			c.Environment = tier
		}
	}

	if v, ok := lookupNonEmpty(lookup, EnvSuffix); ok {
		c.Suffix = strings.ToLower(v)
	}

	return errors.Join(errs...)
}

func lookupNonEmpty(lookup LookupFunc, key string) (string, bool) {
	v, ok := lookup(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
