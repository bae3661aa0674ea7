// Package stagegate decides which catalog kinds a curriculum stage unlocks.
//
// A kind is active iff stage >= its min stage, so the active set only grows as
// the stage rises.
package stagegate

import (
	"fmt"
	"sort"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/catalog"
)

// InvalidStageError reports a negative stage. Negative stages are rejected,
// never clamped.
type InvalidStageError struct {
	Stage int
}

func (e *InvalidStageError) Error() string {
	return fmt.Sprintf("stage must be >= 0, got %d", e.Stage)
}

// KindSet is an unordered set of resource kinds.
type KindSet map[catalog.ResourceKind]struct{}

// Has reports whether kind is in the set.
func (s KindSet) Has(kind catalog.ResourceKind) bool {
	_, ok := s[kind]
	return ok
}

// Len returns the number of kinds.
func (s KindSet) Len() int {
	return len(s)
}

// Sorted returns the kinds in lexical order.
func (s KindSet) Sorted() []catalog.ResourceKind {
	out := make([]catalog.ResourceKind, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Without returns a copy of the set minus kinds.
func (s KindSet) Without(kinds ...catalog.ResourceKind) KindSet {
	out := make(KindSet, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	for _, k := range kinds {
		delete(out, k)
	}
	return out
}

// SubsetOf reports whether every kind in s is also in other.
func (s KindSet) SubsetOf(other KindSet) bool {
	for k := range s {
		if !other.Has(k) {
			return false
		}
	}
	return true
}

// Resolve returns the kinds active at stage.
func Resolve(cat *catalog.Catalog, stage int) (KindSet, error) {
	if stage < 0 {
		return nil, &InvalidStageError{Stage: stage}
	}
	active := make(KindSet, cat.Len())
	for i := 0; i < cat.Len(); i++ {
		if stage >= cat.MinStage(i) {
			active[cat.At(i).Kind] = struct{}{}
		}
	}
	return active, nil
}

// Unlocked returns the kinds whose min stage is exactly stage, in catalog
// order.
func Unlocked(cat *catalog.Catalog, stage int) []catalog.ResourceKind {
	var out []catalog.ResourceKind
	for i := 0; i < cat.Len(); i++ {
		if cat.MinStage(i) == stage {
			out = append(out, cat.At(i).Kind)
		}
	}
	return out
}
