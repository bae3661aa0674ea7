package handlers

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/catalog"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/sizing"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/stagegate"
)

// catalogRow is the structured view of one catalog entry.
type catalogRow struct {
	Kind      string            `json:"kind"`
	Type      string            `json:"type,omitempty"`
	MinStage  int               `json:"minStage"`
	DependsOn []string          `json:"dependsOn,omitempty"`
	OutputKey string            `json:"outputKey"`
	SKUs      map[string]string `json:"skus"`
}

// Catalog lists the catalog kinds, optionally only those unlocked at stage.
// A negative stage lists every kind. With source set the raw builtin YAML
// is printed instead.
func Catalog(ctx context.Context, opts Options, stage int, source bool) error {
	if source {
		_, err := os.Stdout.Write(catalog.BuiltinSource())
		return err
	}

	cat, err := catalogForCommand(ctx, opts)
	if err != nil {
		return err
	}

	keep := func(catalog.ResourceKind) bool { return true }
	if stage >= 0 {
		unlocked, err := stagegate.Resolve(cat, stage)
		if err != nil {
			return err
		}
		keep = unlocked.Has
	}

	var rows []catalogRow
	for _, spec := range cat.Specs() {
		if !keep(spec.Kind) {
			continue
		}
		row := catalogRow{
			Kind:      string(spec.Kind),
			Type:      spec.Type,
			MinStage:  spec.MinStage,
			OutputKey: spec.OutputKey(),
			SKUs:      make(map[string]string, len(spec.Sizing)),
		}
		for _, d := range spec.DependsOn {
			row.DependsOn = append(row.DependsOn, string(d))
		}
		for tier, s := range spec.Sizing {
			row.SKUs[string(tier)] = s.SKU
		}
		rows = append(rows, row)
	}

	if opts.Format != "" && opts.Format != FormatText {
		return printStructured(opts.Format, rows)
	}
	fmt.Println(renderCatalogTable(rows))
	return nil
}

// catalogForCommand uses the configured catalog when a config file exists
// and the builtin one otherwise.
func catalogForCommand(ctx context.Context, opts Options) (*catalog.Catalog, error) {
	if opts.ConfigPath == "" {
		if _, err := findConfigFile(); err != nil {
			return catalog.Builtin()
		}
	}
	spec, err := loadSpec(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	return loadCatalog(ctx, spec)
}

func renderCatalogTable(rows []catalogRow) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Kind", "Stage", "Depends on", "Output", "Dev", "Staging", "Prod"})
	for _, r := range rows {
		t.AppendRow(table.Row{
			r.Kind,
			r.MinStage,
			strings.Join(r.DependsOn, ", "),
			r.OutputKey,
			r.SKUs[string(sizing.TierDev)],
			r.SKUs[string(sizing.TierStaging)],
			r.SKUs[string(sizing.TierProd)],
		})
	}
	t.AppendFooter(table.Row{fmt.Sprintf("%d kinds", len(rows))})
	return t.Render()
}
