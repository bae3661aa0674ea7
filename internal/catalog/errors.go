package catalog

import (
	"errors"
	"strings"
)

// ConfigurationError is an author-time catalog defect. It blocks every
// compilation until the catalog is fixed.
type ConfigurationError struct {
	Problems []string
	Err      error
}

func (e *ConfigurationError) Error() string {
	var parts []string
	parts = append(parts, e.Problems...)
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	if len(parts) == 0 {
		return "catalog configuration error"
	}
	return "catalog configuration error: " + strings.Join(parts, "; ")
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// Configuration wraps err as a ConfigurationError.
func Configuration(err error) error {
	return &ConfigurationError{Err: err}
}

// IsConfigurationError reports whether err (or any error in its chain) is a
// ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
