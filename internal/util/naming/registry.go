package naming

import (
	"fmt"
	"sync"
)

// CollisionError reports two distinct requests that produced the same name.
type CollisionError struct {
	Name   string
	First  Request
	Second Request
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("name %q produced by both %s and %s", e.Name, describe(e.First), describe(e.Second))
}

func describe(r Request) string {
	s := fmt.Sprintf("%s(base=%q, suffix=%q, env=%s)", r.Kind, r.BaseName, r.Suffix, r.Environment)
	if r.Owner != "" {
		s = r.Owner + " " + s
	}
	return s
}

// Registry tracks claimed names. It is safe for concurrent use.
type Registry struct {
	mu    sync.Mutex
	names map[string]Request
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{names: make(map[string]Request)}
}

// Claim records name for req. Claiming the same name again for an identical
// request is a no-op; any other reuse is a *CollisionError.
func (r *Registry) Claim(name string, req Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.names[name]; ok {
		if prev == req {
			return nil
		}
		return &CollisionError{Name: name, First: prev, Second: req}
	}
	r.names[name] = req
	return nil
}

// Len returns the number of claimed names.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.names)
}
