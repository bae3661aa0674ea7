package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/catalog"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/config"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/plan"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/sizing"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/store"
)

// DiffFlags select the two plans to compare.
type DiffFlags struct {
	FromStage int
	ToStage   int
	// FromEnv and ToEnv default to the configured environment.
	FromEnv string
	ToEnv   string
	// Stored loads the "from" plan from the configured store instead of
	// compiling it.
	Stored bool
}

type diffResult struct {
	From    string       `json:"from"`
	To      string       `json:"to"`
	Changes plan.Changes `json:"changes"`
}

// Diff compares two plans of the configured deployment.
func Diff(ctx context.Context, opts Options, flags DiffFlags) error {
	spec, err := loadSpec(opts.ConfigPath)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(ctx, spec)
	if err != nil {
		return err
	}

	fromEnv, err := tierOr(flags.FromEnv, spec.Environment)
	if err != nil {
		return err
	}
	toEnv, err := tierOr(flags.ToEnv, spec.Environment)
	if err != nil {
		return err
	}

	var from *plan.Plan
	if flags.Stored {
		from, err = storedPlan(ctx, spec, fromEnv, flags.FromStage)
	} else {
		from, err = compileAt(ctx, spec, fromEnv, flags.FromStage, cat)
	}
	if err != nil {
		return err
	}
	to, err := compileAt(ctx, spec, toEnv, flags.ToStage, cat)
	if err != nil {
		return err
	}

	res := diffResult{
		From:    label(from),
		To:      label(to),
		Changes: plan.Diff(from, to),
	}
	if res.Changes == nil {
		res.Changes = plan.Changes{}
	}
	if opts.Format != "" && opts.Format != FormatText {
		return printStructured(opts.Format, res)
	}
	fmt.Print(renderChanges(res.From, res.To, res.Changes))
	return nil
}

func tierOr(name string, def sizing.Tier) (sizing.Tier, error) {
	if name == "" {
		return def, nil
	}
	return sizing.ParseTier(name)
}

func label(p *plan.Plan) string {
	return fmt.Sprintf("%s stage %d", p.Environment, p.Stage)
}

func compileAt(ctx context.Context, spec *config.Spec, env sizing.Tier, stage int, cat *catalog.Catalog) (*plan.Plan, error) {
	in := spec.ToInput()
	in.Environment = env
	in.Stage = stage
	p, err := compileTimed(ctx, nil, cat, in)
	if err != nil {
		return nil, fmt.Errorf("compilation of %s stage %d failed: %w", env, stage, err)
	}
	return p, nil
}

func storedPlan(ctx context.Context, spec *config.Spec, env sizing.Tier, stage int) (*plan.Plan, error) {
	if spec.Store == "" {
		return nil, errors.New("--stored requires 'store' in the configuration")
	}
	s, err := openStore(ctx, spec.Store)
	if err != nil {
		return nil, err
	}
	p, err := s.Get(ctx, store.StageKey(spec.BaseName, string(env), stage))
	if err != nil {
		return nil, fmt.Errorf("failed to load stored plan: %w", err)
	}
	return p, nil
}
