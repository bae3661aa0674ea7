package compiler

import (
	"fmt"
	"strconv"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/catalog"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/graph"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/outputs"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/plan"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/sizing"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/stagegate"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/util/naming"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/util/tags"
)

// Compiler compiles plans against one catalog. It holds no state between
// calls and is safe for concurrent use.
type Compiler struct {
	cat *catalog.Catalog
}

// New returns a compiler for cat.
func New(cat *catalog.Catalog) *Compiler {
	return &Compiler{cat: cat}
}

// Catalog returns the catalog the compiler was built with.
func (c *Compiler) Catalog() *catalog.Catalog {
	return c.cat
}

// Compile is shorthand for New(cat).Compile(in).
func Compile(cat *catalog.Catalog, in Input) (*plan.Plan, error) {
	return New(cat).Compile(in)
}

// Compile resolves in into a plan.
func (c *Compiler) Compile(in Input) (*plan.Plan, error) {
	return c.compile(in, naming.NewRegistry(), "")
}

func (c *Compiler) compile(in Input, registry *naming.Registry, owner string) (*plan.Plan, error) {
	cat := c.cat
	if cat == nil {
		return nil, &catalog.ConfigurationError{Problems: []string{"catalog is nil"}}
	}
	if err := in.validate(cat); err != nil {
		return nil, err
	}

	var diags []plan.Diagnostic

	active, err := stagegate.Resolve(cat, in.Stage)
	if err != nil {
		return nil, &InvalidInputError{Field: "stage", Reason: err.Error(), Err: err}
	}
	for _, kind := range in.Disabled {
		if active.Has(kind) {
			diags = append(diags, plan.Diagnostic{
				Severity: plan.SeverityInfo,
				Code:     plan.CodeOverride,
				Kind:     kind,
				Message:  fmt.Sprintf("%s disabled by override", kind),
			})
		}
	}
	active = active.Without(in.Disabled...)

	g, err := graph.Build(cat, active)
	if err != nil {
		return nil, catalog.Configuration(err)
	}
	for _, cs := range g.Cascades {
		diags = append(diags, plan.Diagnostic{
			Severity: plan.SeverityWarning,
			Code:     plan.CodeCascade,
			Kind:     cs.Kind,
			Cause:    cs.Missing,
			Message:  fmt.Sprintf("%s deactivated: depends on inactive %s", cs.Kind, cs.Missing),
		})
	}
	for _, key := range tags.Overridden(in.Tags) {
		diags = append(diags, plan.Diagnostic{
			Severity: plan.SeverityInfo,
			Code:     plan.CodeOverride,
			Message:  fmt.Sprintf("tag %q is reserved and was ignored", key),
		})
	}
	for _, w := range cat.Warnings() {
		diags = append(diags, plan.Diagnostic{
			Severity: plan.SeverityWarning,
			Code:     w.Code,
			Kind:     w.Kind,
			Cause:    w.Cause,
			Message:  w.Message,
		})
	}

	names, err := c.names(in, registry, owner)
	if err != nil {
		return nil, err
	}

	level := make(map[int]int, len(g.Order))
	for l, nodes := range g.Levels {
		for _, i := range nodes {
			level[i] = l
		}
	}

	resources := make([]plan.ResolvedResource, 0, cat.Len())
	for _, i := range g.Order {
		r, err := c.resolve(in, i, names, level[i])
		if err != nil {
			return nil, err
		}
		resources = append(resources, r)
	}
	for i := 0; i < cat.Len(); i++ {
		if g.Active[i] {
			continue
		}
		spec := cat.At(i)
		resources = append(resources, plan.ResolvedResource{
			Kind:           spec.Kind,
			Type:           spec.Type,
			Name:           names[i],
			Level:          -1,
			Properties:     map[string]string{},
			DependsOnNames: []string{},
		})
	}

	levels := make([][]catalog.ResourceKind, len(g.Levels))
	for l, nodes := range g.Levels {
		levels[l] = graph.Kinds(cat, nodes)
	}

	return &plan.Plan{
		Stage:       in.Stage,
		Environment: in.Environment,
		BaseName:    in.BaseName,
		Suffix:      in.Suffix,
		Location:    in.Location,
		Resources:   resources,
		Levels:      levels,
		Outputs: outputs.Aggregate(cat, resources, outputs.Context{
			Location:    in.Location,
			Environment: string(in.Environment),
		}),
		Diagnostics: diags,
	}, nil
}

// names generates and claims a name for every catalog kind, active or not,
// so that names do not change as the stage rises.
func (c *Compiler) names(in Input, registry *naming.Registry, owner string) ([]string, error) {
	names := make([]string, c.cat.Len())
	for i := range names {
		spec := c.cat.At(i)
		req := naming.Request{
			Kind:        spec.Discriminator(),
			Stage:       in.Stage,
			Environment: in.Environment.Short(),
			BaseName:    in.BaseName,
			Suffix:      in.Suffix,
			Owner:       owner,
		}
		name, err := naming.Name(req, naming.Options{
			MaxLength:    maxLength(spec.Naming.MaxLength, in.Naming.MaxLength),
			Style:        naming.Style(spec.NameStyle()),
			IncludeStage: in.Naming.IncludeStage,
		})
		if err != nil {
			return nil, catalog.Configuration(fmt.Errorf("%s: %w", spec.Kind, err))
		}
		if err := registry.Claim(name, req); err != nil {
			return nil, err
		}
		names[i] = name
	}
	return names, nil
}

func (c *Compiler) resolve(in Input, i int, names []string, level int) (plan.ResolvedResource, error) {
	spec := c.cat.At(i)
	size, err := sizing.Resolve(spec.Sizing, in.Environment)
	if err != nil {
		return plan.ResolvedResource{}, catalog.Configuration(fmt.Errorf("%s: %w", spec.Kind, err))
	}

	props := map[string]string{
		plan.PropertySKU:      size.SKU,
		plan.PropertyCapacity: strconv.Itoa(size.Capacity),
		plan.PropertyReplicas: strconv.Itoa(size.ReplicaCount),
	}
	if spec.Type != "" {
		props[plan.PropertyType] = spec.Type
	}
	if in.Location != "" {
		props[plan.PropertyLocation] = in.Location
	}

	deps := c.cat.DependencyIndices(i)
	depNames := make([]string, len(deps))
	for k, d := range deps {
		depNames[k] = names[d]
	}

	return plan.ResolvedResource{
		Kind:       spec.Kind,
		Type:       spec.Type,
		Name:       names[i],
		Active:     true,
		Level:      level,
		Properties: props,
		Tags: tags.NewBuilder(in.BaseName).
			WithEnvironment(string(in.Environment)).
			WithStage(spec.MinStage).
			WithKind(string(spec.Kind)).
			Merge(in.Tags).
			Build(),
		DependsOnNames: depNames,
	}, nil
}

// maxLength picks the tighter of two limits, treating zero as unset.
func maxLength(catalogLimit, inputLimit int) int {
	switch {
	case catalogLimit == 0:
		return inputLimit
	case inputLimit == 0:
		return catalogLimit
	case inputLimit < catalogLimit:
		return inputLimit
	default:
		return catalogLimit
	}
}
