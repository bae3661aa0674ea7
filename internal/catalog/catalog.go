package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/sizing"
)

// Catalog is a validated, immutable set of resource specs.
type Catalog struct {
	specs    []ResourceSpec
	index    map[ResourceKind]int
	deps     [][]int
	topo     []int
	ladder   sizing.Ladder
	warnings []Warning
}

type options struct {
	strictStageOrder bool
	ladder           sizing.Ladder
}

// Option configures catalog validation.
type Option func(*options)

// WithStrictStageOrder rejects dependencies on kinds with a later min stage.
// Without it such inversions are recorded as warnings and resolved at compile
// time by cascade deactivation.
func WithStrictStageOrder() Option {
	return func(o *options) { o.strictStageOrder = true }
}

// WithLadder sets the SKU ladder used by the sizing lint.
func WithLadder(l sizing.Ladder) Option {
	return func(o *options) {
		if len(l) > 0 {
			o.ladder = l
		}
	}
}

// New validates specs and returns a catalog. Specs are copied; later changes
// to the argument do not affect the catalog.
func New(specs []ResourceSpec, opts ...Option) (*Catalog, error) {
	o := options{ladder: sizing.DefaultLadder()}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Catalog{
		specs:  make([]ResourceSpec, 0, len(specs)),
		index:  make(map[ResourceKind]int, len(specs)),
		ladder: o.ladder,
	}

	var problems []string
	outputKeys := make(map[string]ResourceKind, len(specs))

	for i, spec := range specs {
		spec = spec.clone()
		if spec.Kind == "" {
			problems = append(problems, fmt.Sprintf("resource %d: kind is required", i))
			continue
		}
		if _, dup := c.index[spec.Kind]; dup {
			problems = append(problems, fmt.Sprintf("%s: declared more than once", spec.Kind))
			continue
		}
		problems = append(problems, validateSpec(spec)...)

		key := spec.OutputKey()
		if owner, dup := outputKeys[key]; dup {
			problems = append(problems, fmt.Sprintf("%s: output key %q already used by %s", spec.Kind, key, owner))
		} else {
			outputKeys[key] = spec.Kind
		}

		c.index[spec.Kind] = len(c.specs)
		c.specs = append(c.specs, spec)
	}

	c.deps = make([][]int, len(c.specs))
	for i, spec := range c.specs {
		seen := make(map[int]bool, len(spec.DependsOn))
		for _, dep := range spec.DependsOn {
			j, ok := c.index[dep]
			switch {
			case !ok:
				problems = append(problems, fmt.Sprintf("%s: depends on unknown kind %q", spec.Kind, dep))
				continue
			case j == i:
				problems = append(problems, fmt.Sprintf("%s: depends on itself", spec.Kind))
				continue
			case seen[j]:
				continue
			}
			seen[j] = true
			c.deps[i] = append(c.deps[i], j)

			depSpec := c.specs[j]
			if depSpec.MinStage > spec.MinStage {
				msg := fmt.Sprintf("%s (min stage %d) depends on %s (min stage %d)",
					spec.Kind, spec.MinStage, depSpec.Kind, depSpec.MinStage)
				if o.strictStageOrder {
					problems = append(problems, msg)
				} else {
					c.warnings = append(c.warnings, Warning{
						Code:    WarningStageInversion,
						Kind:    spec.Kind,
						Cause:   depSpec.Kind,
						Message: msg,
					})
				}
			}
		}
	}

	topo, cycle := c.topoSort()
	if cycle != nil {
		problems = append(problems, "dependency cycle: "+formatPath(cycle))
	}
	c.topo = topo

	if len(problems) > 0 {
		return nil, &ConfigurationError{Problems: problems}
	}

	for _, spec := range c.specs {
		for _, v := range sizing.Lint(string(spec.Kind), spec.Sizing, c.ladder) {
			c.warnings = append(c.warnings, Warning{
				Code:    WarningSizingLint,
				Kind:    spec.Kind,
				Message: v.Message,
			})
		}
	}

	return c, nil
}

func validateSpec(spec ResourceSpec) []string {
	var problems []string
	if spec.MinStage < 0 {
		problems = append(problems, fmt.Sprintf("%s: min stage must not be negative, got %d", spec.Kind, spec.MinStage))
	}
	for tier := range spec.Sizing {
		if !tier.IsValid() {
			problems = append(problems, fmt.Sprintf("%s: sizing declares unknown tier %q", spec.Kind, tier))
		}
	}
	if missing := spec.Sizing.Missing(); len(missing) > 0 {
		problems = append(problems, fmt.Sprintf("%s: sizing is not defined for %v", spec.Kind, missing))
	}
	for _, tier := range sizing.ValidTiers() {
		s, ok := spec.Sizing[tier]
		if !ok {
			continue
		}
		if s.Capacity < 0 || s.ReplicaCount < 0 {
			problems = append(problems, fmt.Sprintf("%s: %s sizing must not be negative", spec.Kind, tier))
		}
	}
	if !spec.Naming.Style.IsValid() {
		problems = append(problems, fmt.Sprintf("%s: unknown naming style %q", spec.Kind, spec.Naming.Style))
	}
	if spec.Naming.MaxLength < 0 {
		problems = append(problems, fmt.Sprintf("%s: naming max length must not be negative", spec.Kind))
	}
	return problems
}

// topoSort orders catalog indices dependencies-first by depth-first search.
// It returns the cycle path when one exists.
func (c *Catalog) topoSort() ([]int, []ResourceKind) {
	const (
		stateNew uint8 = iota
		stateVisiting
		stateDone
	)

	state := make([]uint8, len(c.specs))
	stack := make([]int, 0, len(c.specs))
	topo := make([]int, 0, len(c.specs))
	var cycle []ResourceKind

	var visit func(i int) bool
	visit = func(i int) bool {
		switch state[i] {
		case stateDone:
			return true
		case stateVisiting:
			start := 0
			for k, n := range stack {
				if n == i {
					start = k
					break
				}
			}
			for _, n := range stack[start:] {
				cycle = append(cycle, c.specs[n].Kind)
			}
			cycle = append(cycle, c.specs[i].Kind)
			return false
		}

		state[i] = stateVisiting
		stack = append(stack, i)
		for _, dep := range c.deps[i] {
			if !visit(dep) {
				return false
			}
		}
		stack = stack[:len(stack)-1]
		state[i] = stateDone
		topo = append(topo, i)
		return true
	}

	for i := range c.specs {
		if !visit(i) {
			return nil, cycle
		}
	}
	return topo, nil
}

func formatPath(path []ResourceKind) string {
	parts := make([]string, len(path))
	for i, k := range path {
		parts[i] = string(k)
	}
	return strings.Join(parts, " -> ")
}

// Len returns the number of specs.
func (c *Catalog) Len() int {
	return len(c.specs)
}

// Specs returns a copy of all specs in declaration order.
func (c *Catalog) Specs() []ResourceSpec {
	out := make([]ResourceSpec, len(c.specs))
	for i, s := range c.specs {
		out[i] = s.clone()
	}
	return out
}

// At returns a copy of the spec at index i.
func (c *Catalog) At(i int) ResourceSpec {
	return c.specs[i].clone()
}

// Lookup returns the spec for kind.
func (c *Catalog) Lookup(kind ResourceKind) (ResourceSpec, bool) {
	i, ok := c.index[kind]
	if !ok {
		return ResourceSpec{}, false
	}
	return c.specs[i].clone(), true
}

// Index returns the declaration index of kind.
func (c *Catalog) Index(kind ResourceKind) (int, bool) {
	i, ok := c.index[kind]
	return i, ok
}

// Kinds returns all kinds in declaration order.
func (c *Catalog) Kinds() []ResourceKind {
	out := make([]ResourceKind, len(c.specs))
	for i, s := range c.specs {
		out[i] = s.Kind
	}
	return out
}

// MinStage returns the min stage of the spec at index i.
func (c *Catalog) MinStage(i int) int {
	return c.specs[i].MinStage
}

// DependencyIndices returns the indices spec i depends on.
func (c *Catalog) DependencyIndices(i int) []int {
	return append([]int(nil), c.deps[i]...)
}

// TopologicalIndices returns all indices ordered dependencies-first.
func (c *Catalog) TopologicalIndices() []int {
	return append([]int(nil), c.topo...)
}

// MaxStage returns the highest min stage in the catalog.
func (c *Catalog) MaxStage() int {
	max := 0
	for _, s := range c.specs {
		if s.MinStage > max {
			max = s.MinStage
		}
	}
	return max
}

// Stages returns the distinct min stages in ascending order.
func (c *Catalog) Stages() []int {
	seen := make(map[int]bool)
	var out []int
	for _, s := range c.specs {
		if !seen[s.MinStage] {
			seen[s.MinStage] = true
			out = append(out, s.MinStage)
		}
	}
	sort.Ints(out)
	return out
}

// Ladder returns the SKU ladder used by the sizing lint.
func (c *Catalog) Ladder() sizing.Ladder {
	return append(sizing.Ladder(nil), c.ladder...)
}

// Warnings returns the non-fatal findings recorded at load time.
func (c *Catalog) Warnings() []Warning {
	return append([]Warning(nil), c.warnings...)
}
