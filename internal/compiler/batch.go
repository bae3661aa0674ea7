package compiler

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/catalog"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/plan"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/util/naming"
)

// DefaultBatchLimit bounds concurrent compilations when limit <= 0.
const DefaultBatchLimit = 8

// CompileBatch compiles every input and checks that no two plans share a
// resource name. Plans are returned in input order. The first error wins;
// a name shared between two plans is a *naming.CollisionError naming both
// inputs.
func CompileBatch(ctx context.Context, cat *catalog.Catalog, inputs []Input, limit int) ([]*plan.Plan, error) {
	if limit <= 0 {
		limit = DefaultBatchLimit
	}
	c := New(cat)
	plans := make([]*plan.Plan, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, in := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p, err := c.compile(in, naming.NewRegistry(), owner(i))
			if err != nil {
				return fmt.Errorf("%s: %w", owner(i), err)
			}
			plans[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Claims run in input order so the reported pair is deterministic.
	shared := naming.NewRegistry()
	for i, p := range plans {
		for _, r := range p.Resources {
			spec, _ := cat.Lookup(r.Kind)
			req := naming.Request{
				Kind:        spec.Discriminator(),
				Stage:       p.Stage,
				Environment: p.Environment.Short(),
				BaseName:    p.BaseName,
				Suffix:      p.Suffix,
				Owner:       owner(i),
			}
			if err := shared.Claim(r.Name, req); err != nil {
				return nil, err
			}
		}
	}
	return plans, nil
}

func owner(i int) string {
	return fmt.Sprintf("input %d", i)
}
