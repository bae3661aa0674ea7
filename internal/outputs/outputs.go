// Package outputs builds the total output map of a plan.
package outputs

import (
	"strings"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/catalog"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/plan"
)

// Context carries plan-wide values for output templates.
type Context struct {
	Location    string
	Environment string
}

// Aggregate returns one output per catalog spec. Active resources yield the
// spec's output format with {name}, {location}, {sku}, {kind} and
// {environment} replaced; everything else is absent.
func Aggregate(cat *catalog.Catalog, resources []plan.ResolvedResource, ctx Context) map[string]plan.OutputValue {
	byKind := make(map[catalog.ResourceKind]plan.ResolvedResource, len(resources))
	for _, r := range resources {
		byKind[r.Kind] = r
	}

	out := make(map[string]plan.OutputValue, cat.Len())
	for _, spec := range cat.Specs() {
		r, ok := byKind[spec.Kind]
		if !ok || !r.Active {
			out[spec.OutputKey()] = plan.Absent()
			continue
		}
		out[spec.OutputKey()] = plan.Present(Render(spec.OutputFormat(), r, ctx))
	}
	return out
}

// Render expands an output format for r.
func Render(format string, r plan.ResolvedResource, ctx Context) string {
	location := r.Properties[plan.PropertyLocation]
	if location == "" {
		location = ctx.Location
	}
	return strings.NewReplacer(
		"{name}", r.Name,
		"{location}", location,
		"{sku}", r.Properties[plan.PropertySKU],
		"{kind}", string(r.Kind),
		"{environment}", ctx.Environment,
	).Replace(format)
}
