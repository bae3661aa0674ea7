package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/config"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/sizing"
)

// CompileFlags are the per-run overrides of the compile command.
type CompileFlags struct {
	// Stage overrides the configured stage when non-nil.
	Stage       *int
	Environment string
	Suffix      string
	Disabled    []string
	Save        bool
}

func (f CompileFlags) apply(spec *config.Spec) {
	if f.Stage != nil {
		spec.Stage = *f.Stage
	}
	if f.Environment != "" {
		// Unknown names are left for Validate to report.
		if tier, err := sizing.ParseTier(f.Environment); err == nil {
			spec.Environment = tier
		} else {
			spec.Environment = sizing.Tier(f.Environment)
		}
	}
	if f.Suffix != "" {
		spec.Suffix = strings.ToLower(f.Suffix)
	}
	spec.Disabled = append(spec.Disabled, f.Disabled...)
}

// Compile compiles the configured deployment and prints the plan.
func Compile(ctx context.Context, opts Options, flags CompileFlags) (err error) {
	spec, err := loadSpec(opts.ConfigPath, flags.apply)
	if err != nil {
		return err
	}
	if flags.Save && spec.Store == "" {
		return errors.New("--save requires 'store' in the configuration")
	}

	cat, err := loadCatalog(ctx, spec)
	if err != nil {
		return err
	}

	rec := newRecorder()
	defer func() {
		if merr := writeMetrics(opts.MetricsFile, rec); merr != nil && err == nil {
			err = merr
		}
	}()

	p, err := compileTimed(ctx, rec, cat, spec.ToInput())
	if err != nil {
		return fmt.Errorf("compilation failed: %w", err)
	}

	if flags.Save {
		if err := savePlan(ctx, spec.Store, p); err != nil {
			return fmt.Errorf("failed to save plan: %w", err)
		}
	}

	if opts.Format == "" || opts.Format == FormatText {
		fmt.Print(renderPlan(p))
		return nil
	}
	return printStructured(opts.Format, p)
}
