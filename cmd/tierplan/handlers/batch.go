package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/compiler"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/config"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/report"
)

// loadRoster reads a roster file. Replaced in tests.
var loadRoster = config.LoadRoster

// BatchFlags configure a roster compilation.
type BatchFlags struct {
	RosterPath string
	Parallel   int
	Save       bool
}

// Batch compiles one plan per roster attendee and fails when any two
// plans share a resource name.
func Batch(ctx context.Context, opts Options, flags BatchFlags) (err error) {
	spec, err := loadSpec(opts.ConfigPath)
	if err != nil {
		return err
	}
	if flags.Save && spec.Store == "" {
		return errors.New("--save requires 'store' in the configuration")
	}
	roster, err := loadRoster(flags.RosterPath)
	if err != nil {
		return err
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

	inputs := roster.Inputs(spec)
	start := now()
	plans, err := compiler.CompileBatch(ctx, cat, inputs, flags.Parallel)
	elapsed := now().Sub(start)
	obs := report.FromContext(ctx)
	if err != nil {
		rec.RecordCompile(string(spec.Environment), nil, err, elapsed)
		report.Failure(obs, err)
		return fmt.Errorf("batch compilation failed: %w", err)
	}

	labels := make([]string, len(plans))
	for i, p := range plans {
		labels[i] = attendeeLabel(inputs[i])
		rec.RecordCompile(string(p.Environment), p, nil, elapsed/time.Duration(len(plans)))
		report.Plan(obs.WithFields(map[string]string{"attendee": labels[i]}), p)
		if flags.Save {
			if err := savePlan(ctx, spec.Store, p); err != nil {
				return fmt.Errorf("failed to save plan for %s: %w", labels[i], err)
			}
		}
	}

	if opts.Format != "" && opts.Format != FormatText {
		return printStructured(opts.Format, plans)
	}
	fmt.Print(renderBatch(labels, plans))
	return nil
}

func attendeeLabel(in compiler.Input) string {
	if in.Suffix == "" {
		return in.BaseName
	}
	return in.BaseName + "-" + in.Suffix
}
