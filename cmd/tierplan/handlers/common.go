package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"sigs.k8s.io/yaml"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/catalog"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/compiler"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/config"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/metrics"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/plan"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/report"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/store"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Options carries the persistent flags shared by all commands.
type Options struct {
	ConfigPath  string
	Format      string
	MetricsFile string
}

// Validate checks the output format.
func (o Options) Validate() error {
	switch o.Format {
	case "", FormatText, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q: must be text, json or yaml", o.Format)
	}
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// findConfigFile locates tierplan.yaml when --config is not given.
	findConfigFile = config.FindConfigFile

	// loadSpecFile loads a deployment configuration without validating it;
	// environment overrides are applied before validation.
	loadSpecFile = config.LoadSpecWithoutValidation

	// openStore opens a plan store by URL.
	openStore = store.Open

	// newRecorder creates the metrics recorder for one run.
	newRecorder = metrics.New

	// now is the clock used for compile durations.
	now = time.Now
)

// loadSpec resolves, loads, overrides and validates the configuration.
// Environment variables are applied first, then the overrides in order.
func loadSpec(path string, overrides ...func(*config.Spec)) (*config.Spec, error) {
	if path == "" {
		found, err := findConfigFile()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("no %s found; run 'tierplan init' or pass --config", config.DefaultConfigFilename)
			}
			return nil, err
		}
		path = found
	}

	spec, err := loadSpecFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := spec.ApplyEnv(); err != nil {
		return nil, fmt.Errorf("invalid environment override: %w", err)
	}
	for _, override := range overrides {
		override(spec)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return spec, nil
}

// loadCatalog loads the spec's catalog and reports it.
func loadCatalog(ctx context.Context, spec *config.Spec, extra ...catalog.Option) (*catalog.Catalog, error) {
	cat, err := spec.LoadCatalog(extra...)
	if err != nil {
		return nil, err
	}
	source := spec.CatalogPath()
	if source == "" {
		source = "builtin"
	}
	report.Catalog(report.FromContext(ctx), source, cat)
	return cat, nil
}

// compileTimed compiles in and records the attempt on rec.
func compileTimed(ctx context.Context, rec *metrics.Recorder, cat *catalog.Catalog, in compiler.Input) (*plan.Plan, error) {
	start := now()
	p, err := compiler.Compile(cat, in)
	rec.RecordCompile(string(in.Environment), p, err, now().Sub(start))

	obs := report.FromContext(ctx)
	if err != nil {
		report.Failure(obs, err)
		return nil, err
	}
	report.Plan(obs, p)
	return p, nil
}

// savePlan writes p to the store named by url. An empty url is a no-op.
func savePlan(ctx context.Context, url string, p *plan.Plan) error {
	if url == "" {
		return nil
	}
	s, err := openStore(ctx, url)
	if err != nil {
		return err
	}
	key := store.Key(p)
	if err := s.Put(ctx, key, p); err != nil {
		return err
	}
	report.FromContext(ctx).Event(report.Event{
		Type:    report.EventPlanStored,
		Message: "plan stored",
		Fields:  map[string]string{"key": key, "store": url},
	})
	return nil
}

// writeMetrics dumps rec to path when one is configured.
func writeMetrics(path string, rec *metrics.Recorder) error {
	if path == "" {
		return nil
	}
	return rec.WriteTextfile(path)
}

// printStructured prints v as JSON or YAML. YAML honours json tags.
func printStructured(format string, v any) error {
	var (
		out []byte
		err error
	)
	switch format {
	case FormatJSON:
		out, err = json.MarshalIndent(v, "", "  ")
		if err == nil {
			out = append(out, '\n')
		}
	case FormatYAML:
		out, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	_, err = os.Stdout.Write(out)
	return err
}

func isInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
