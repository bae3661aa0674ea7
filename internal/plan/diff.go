package plan

import (
	"fmt"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/catalog"
)

// ChangeType classifies a resource change between two plans.
type ChangeType string

const (
	ChangeAdded   ChangeType = "added"
	ChangeRemoved ChangeType = "removed"
	ChangeResized ChangeType = "resized"
	ChangeRenamed ChangeType = "renamed"
)

// Change is one difference between two plans.
type Change struct {
	Type ChangeType           `json:"type"`
	Kind catalog.ResourceKind `json:"kind"`
	From string               `json:"from,omitempty"`
	To   string               `json:"to,omitempty"`
}

// Changes lists differences in the order of the target plan, with removals
// last.
type Changes []Change

// Empty reports whether the plans are equivalent.
func (c Changes) Empty() bool {
	return len(c) == 0
}

// Count returns the number of changes of type t.
func (c Changes) Count(t ChangeType) int {
	n := 0
	for _, ch := range c {
		if ch.Type == t {
			n++
		}
	}
	return n
}

// Diff compares the active resources of two plans.
func Diff(from, to *Plan) Changes {
	var changes Changes
	for _, next := range to.Resources {
		if !next.Active {
			continue
		}
		prev, ok := from.Lookup(next.Kind)
		if !ok || !prev.Active {
			changes = append(changes, Change{Type: ChangeAdded, Kind: next.Kind, To: next.Name})
			continue
		}
		if prev.Name != next.Name {
			changes = append(changes, Change{Type: ChangeRenamed, Kind: next.Kind, From: prev.Name, To: next.Name})
		}
		if a, b := sizeOf(prev), sizeOf(next); a != b {
			changes = append(changes, Change{Type: ChangeResized, Kind: next.Kind, From: a, To: b})
		}
	}
	for _, prev := range from.Resources {
		if !prev.Active {
			continue
		}
		if next, ok := to.Lookup(prev.Kind); !ok || !next.Active {
			changes = append(changes, Change{Type: ChangeRemoved, Kind: prev.Kind, From: prev.Name})
		}
	}
	return changes
}

func sizeOf(r ResolvedResource) string {
	return fmt.Sprintf("%s x%s (cap %s)",
		r.Properties[PropertySKU], r.Properties[PropertyReplicas], r.Properties[PropertyCapacity])
}
