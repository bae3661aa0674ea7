package compiler

import (
	"errors"
	"fmt"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/catalog"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/util/naming"
)

// InvalidInputError is a user-correctable problem with an Input.
type InvalidInputError struct {
	Field  string
	Reason string
	Err    error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Unwrap() error { return e.Err }

func invalid(field, format string, args ...any) error {
	return &InvalidInputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsInvalidInput reports whether err is an *InvalidInputError.
func IsInvalidInput(err error) bool {
	var ie *InvalidInputError
	return errors.As(err, &ie)
}

// IsCatalogConfiguration reports whether err is a catalog defect.
func IsCatalogConfiguration(err error) bool {
	return catalog.IsConfigurationError(err)
}

// IsNamingCollision reports whether err is a *naming.CollisionError.
func IsNamingCollision(err error) bool {
	var ce *naming.CollisionError
	return errors.As(err, &ce)
}

// IsTerminal reports whether err is one of the compile error classes. All of
// them are deterministic, so callers should not retry.
func IsTerminal(err error) bool {
	return IsInvalidInput(err) || IsCatalogConfiguration(err) || IsNamingCollision(err)
}
