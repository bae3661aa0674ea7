// Package graph orders the active resources of a catalog.
//
// Nodes are catalog indices and edges are index pairs, so the graph never
// holds pointers into the catalog. Build first deactivates every resource
// whose dependency is inactive (cascade), then orders the rest with Kahn's
// algorithm, grouping nodes into levels that an apply engine may run in
// parallel.
package graph

import (
	"errors"
	"strings"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/catalog"
)

// ActiveSet reports which kinds passed the stage gate.
type ActiveSet interface {
	Has(kind catalog.ResourceKind) bool
}

// Cascade records a resource deactivated because a dependency is inactive.
type Cascade struct {
	Kind    catalog.ResourceKind
	Missing catalog.ResourceKind
}

// Result is the outcome of Build.
type Result struct {
	// Active is indexed by catalog index.
	Active []bool
	// Order lists active indices, dependencies first.
	Order []int
	// Levels partitions Order. No two nodes in a level share an edge.
	Levels [][]int
	// Cascades lists deactivated resources in catalog order.
	Cascades []Cascade
}

// CycleError reports a dependency cycle among active resources.
type CycleError struct {
	Path []catalog.ResourceKind
}

func (e *CycleError) Error() string {
	parts := make([]string, len(e.Path))
	for i, k := range e.Path {
		parts[i] = string(k)
	}
	return "dependency cycle among active resources: " + strings.Join(parts, " -> ")
}

// AsCycleError returns the *CycleError in err's chain, or nil.
func AsCycleError(err error) *CycleError {
	var ce *CycleError
	if errors.As(err, &ce) {
		return ce
	}
	return nil
}

// Build applies the cascade rule and orders the active resources.
func Build(cat *catalog.Catalog, active ActiveSet) (*Result, error) {
	if cat == nil {
		return nil, errors.New("graph: catalog is nil")
	}
	n := cat.Len()
	res := &Result{Active: make([]bool, n)}
	for i := 0; i < n; i++ {
		res.Active[i] = active.Has(cat.At(i).Kind)
	}

	missing := make([]int, n)
	for i := range missing {
		missing[i] = -1
	}
	for changed := true; changed; {
		changed = false
		for i := 0; i < n; i++ {
			if !res.Active[i] {
				continue
			}
			for _, dep := range cat.DependencyIndices(i) {
				if !res.Active[dep] {
					res.Active[i] = false
					missing[i] = dep
					changed = true
					break
				}
			}
		}
	}
	for i, dep := range missing {
		if dep >= 0 {
			res.Cascades = append(res.Cascades, Cascade{Kind: cat.At(i).Kind, Missing: cat.At(dep).Kind})
		}
	}

	indegree := make([]int, n)
	dependents := make([][]int, n)
	remaining := 0
	for i := 0; i < n; i++ {
		if !res.Active[i] {
			continue
		}
		remaining++
		for _, dep := range cat.DependencyIndices(i) {
			indegree[i]++
			dependents[dep] = append(dependents[dep], i)
		}
	}

	var frontier []int
	for i := 0; i < n; i++ {
		if res.Active[i] && indegree[i] == 0 {
			frontier = append(frontier, i)
		}
	}
	for len(frontier) > 0 {
		res.Levels = append(res.Levels, frontier)
		res.Order = append(res.Order, frontier...)
		remaining -= len(frontier)

		ready := make([]bool, n)
		for _, i := range frontier {
			for _, d := range dependents[i] {
				indegree[d]--
				if indegree[d] == 0 {
					ready[d] = true
				}
			}
		}
		// Scanning by index keeps ties in catalog order.
		frontier = nil
		for i, ok := range ready {
			if ok {
				frontier = append(frontier, i)
			}
		}
	}

	if remaining > 0 {
		return nil, &CycleError{Path: findCycle(cat, res.Active, indegree)}
	}
	return res, nil
}

// findCycle walks unresolved nodes until one repeats.
func findCycle(cat *catalog.Catalog, active []bool, indegree []int) []catalog.ResourceKind {
	start := -1
	for i := range indegree {
		if active[i] && indegree[i] > 0 {
			start = i
			break
		}
	}
	if start < 0 {
		return nil
	}

	seen := make(map[int]int)
	var walk []int
	for cur := start; ; {
		if pos, ok := seen[cur]; ok {
			path := make([]catalog.ResourceKind, 0, len(walk)-pos+1)
			for _, i := range walk[pos:] {
				path = append(path, cat.At(i).Kind)
			}
			return append(path, cat.At(cur).Kind)
		}
		seen[cur] = len(walk)
		walk = append(walk, cur)

		next := -1
		for _, dep := range cat.DependencyIndices(cur) {
			if active[dep] && indegree[dep] > 0 {
				next = dep
				break
			}
		}
		if next < 0 {
			return []catalog.ResourceKind{cat.At(start).Kind}
		}
		cur = next
	}
}

// Kinds maps indices to kinds.
func Kinds(cat *catalog.Catalog, indices []int) []catalog.ResourceKind {
	out := make([]catalog.ResourceKind, len(indices))
	for i, idx := range indices {
		out[i] = cat.At(idx).Kind
	}
	return out
}
