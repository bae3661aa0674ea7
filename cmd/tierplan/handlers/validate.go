package handlers

import (
	"context"
	"fmt"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/catalog"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/plan"
)

// Validate checks the configuration, the catalog and that the configured
// stage compiles. With strict set, stage inversions are errors and any
// warning fails validation.
func Validate(ctx context.Context, opts Options, strict bool) error {
	spec, err := loadSpec(opts.ConfigPath)
	if err != nil {
		return err
	}

	var extra []catalog.Option
	if strict {
		extra = append(extra, catalog.WithStrictStageOrder())
	}
	cat, err := loadCatalog(ctx, spec, extra...)
	if err != nil {
		return err
	}

	p, err := compileTimed(ctx, nil, cat, spec.ToInput())
	if err != nil {
		return fmt.Errorf("compilation failed: %w", err)
	}

	warnings := 0
	for _, d := range p.Diagnostics {
		if d.Severity == plan.SeverityWarning {
			warnings++
			fmt.Printf("  warning: %s\n", d.Message)
		}
	}
	if strict && warnings > 0 {
		return fmt.Errorf("%d warnings in strict mode", warnings)
	}

	fmt.Printf("Configuration valid: %d kinds in catalog, %d active at stage %d (%s)\n",
		cat.Len(), len(p.Active()), p.Stage, p.Environment)
	return nil
}
