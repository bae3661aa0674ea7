package handlers

import (
	"context"
	"fmt"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/catalog"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/mcp"
)

// serveMCP blocks serving the server on stdio. Replaced in tests.
var serveMCP = func(s *mcp.Server) error {
	return s.ServeStdio()
}

// MCPServer serves the compiler to MCP clients on stdin and stdout.
func MCPServer(ctx context.Context, opts Options, version string, save bool) (err error) {
	var (
		cat       *catalog.Catalog
		storeURL  string
		serverOpt []mcp.Option
	)

	if opts.ConfigPath == "" {
		if _, ferr := findConfigFile(); ferr != nil {
			cat, err = catalog.Builtin()
			if err != nil {
				return err
			}
		}
	}
	if cat == nil {
		spec, err := loadSpec(opts.ConfigPath)
		if err != nil {
			return err
		}
		if cat, err = loadCatalog(ctx, spec); err != nil {
			return err
		}
		storeURL = spec.Store
	}

	if save {
		if storeURL == "" {
			return fmt.Errorf("--save requires 'store' in the configuration")
		}
		s, err := openStore(ctx, storeURL)
		if err != nil {
			return err
		}
		serverOpt = append(serverOpt, mcp.WithStore(s))
	}

	rec := newRecorder()
	serverOpt = append(serverOpt, mcp.WithMetrics(rec))
	defer func() {
		if merr := writeMetrics(opts.MetricsFile, rec); merr != nil && err == nil {
			err = merr
		}
	}()

	return serveMCP(mcp.NewServer(cat, version, serverOpt...))
}
