// Package ptr provides small pointer helpers.
package ptr

// String returns a pointer to the given string value.
func String(s string) *string { return &s }

// Deref returns the value p points to, or def when p is nil.
func Deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
