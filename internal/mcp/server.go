// Package mcp exposes the plan compiler to MCP clients over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/catalog"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/compiler"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/metrics"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/sizing"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/stagegate"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/store"
)

// CatalogURI is the resource URI of the loaded catalog.
const CatalogURI = "tierplan://catalog"

// Option configures a Server.
type Option func(*Server)

// WithStore saves every compiled plan to s.
func WithStore(s store.PlanStore) Option {
	return func(srv *Server) { srv.store = s }
}

// WithMetrics records compilations on r.
func WithMetrics(r *metrics.Recorder) Option {
	return func(srv *Server) { srv.metrics = r }
}

// Server serves compile_plan, list_catalog and the catalog resource.
type Server struct {
	server   *server.MCPServer
	compiler *compiler.Compiler
	store    store.PlanStore
	metrics  *metrics.Recorder
}

// NewServer creates an MCP server for cat.
func NewServer(cat *catalog.Catalog, version string, opts ...Option) *Server {
	srv := server.NewMCPServer(
		"tierplan",
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
	)

	s := &Server{server: srv, compiler: compiler.New(cat)}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio serves requests on stdin and stdout until the client exits.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.server)
}

func (s *Server) registerTools() {
	compile := mcp.NewTool("compile_plan",
		mcp.WithDescription("Compile the deployment plan for a workshop stage and environment tier"),
		mcp.WithNumber("stage",
			mcp.Description("Workshop stage (module number), 0 or greater"),
			mcp.Required(),
		),
		mcp.WithString("environment",
			mcp.Description("Environment tier"),
			mcp.Enum("dev", "staging", "prod"),
			mcp.Required(),
		),
		mcp.WithString("base_name",
			mcp.Description("Project base name used in every resource name"),
			mcp.Required(),
		),
		mcp.WithString("suffix",
			mcp.Description("Attendee discriminator appended to names"),
		),
		mcp.WithString("location",
			mcp.Description("Azure region, e.g. eastus"),
		),
		mcp.WithString("disabled",
			mcp.Description("Comma-separated kinds to switch off"),
		),
	)
	s.server.AddTool(compile, s.compilePlanHandler)

	list := mcp.NewTool("list_catalog",
		mcp.WithDescription("List catalog kinds with their unlock stage and dependencies"),
		mcp.WithNumber("stage",
			mcp.Description("Only list kinds unlocked at this stage"),
		),
	)
	s.server.AddTool(list, s.listCatalogHandler)
}

func (s *Server) registerResources() {
	resource := mcp.NewResource(CatalogURI, "Resource catalog",
		mcp.WithResourceDescription("Every resource kind the compiler knows about"),
		mcp.WithMIMEType("application/json"),
	)
	s.server.AddResource(resource, s.catalogHandler)
}

func (s *Server) compilePlanHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stage, err := request.RequireInt("stage")
	if err != nil {
		return mcp.NewToolResultError("stage argument is required"), nil
	}
	envName, err := request.RequireString("environment")
	if err != nil {
		return mcp.NewToolResultError("environment argument is required"), nil
	}
	base, err := request.RequireString("base_name")
	if err != nil {
		return mcp.NewToolResultError("base_name argument is required"), nil
	}
	env, err := sizing.ParseTier(envName)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	in := compiler.Input{
		Stage:       stage,
		Environment: env,
		BaseName:    base,
		Suffix:      request.GetString("suffix", ""),
		Location:    request.GetString("location", ""),
	}
	for _, k := range strings.Split(request.GetString("disabled", ""), ",") {
		if k = strings.TrimSpace(k); k != "" {
			in.Disabled = append(in.Disabled, catalog.ResourceKind(k))
		}
	}

	start := time.Now()
	p, err := s.compiler.Compile(in)
	s.metrics.RecordCompile(string(env), p, err, time.Since(start))
	if err != nil {
		return mcp.NewToolResultError(describe(err)), nil
	}

	if s.store != nil {
		if err := s.store.Put(ctx, store.Key(p), p); err != nil {
			return nil, fmt.Errorf("failed to store plan: %w", err)
		}
	}

	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode plan: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// describe prefixes collision and catalog errors with their category.
// Input errors already carry one.
func describe(err error) string {
	switch {
	case compiler.IsNamingCollision(err):
		return "naming collision: " + err.Error()
	case compiler.IsCatalogConfiguration(err):
		return "catalog configuration: " + err.Error()
	}
	return err.Error()
}

// catalogEntry is the JSON view of one catalog kind.
type catalogEntry struct {
	Kind      string   `json:"kind"`
	Type      string   `json:"type,omitempty"`
	MinStage  int      `json:"minStage"`
	DependsOn []string `json:"dependsOn"`
	OutputKey string   `json:"outputKey"`
}

func entries(cat *catalog.Catalog, keep func(catalog.ResourceSpec) bool) []catalogEntry {
	out := []catalogEntry{}
	for _, spec := range cat.Specs() {
		if !keep(spec) {
			continue
		}
		deps := make([]string, 0, len(spec.DependsOn))
		for _, d := range spec.DependsOn {
			deps = append(deps, string(d))
		}
		out = append(out, catalogEntry{
			Kind:      string(spec.Kind),
			Type:      spec.Type,
			MinStage:  spec.MinStage,
			DependsOn: deps,
			OutputKey: spec.OutputKey(),
		})
	}
	return out
}

func (s *Server) listCatalogHandler(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cat := s.compiler.Catalog()
	keep := func(catalog.ResourceSpec) bool { return true }

	if _, ok := request.GetArguments()["stage"]; ok {
		stage := request.GetInt("stage", 0)
		unlocked, err := stagegate.Resolve(cat, stage)
		if err != nil {
			var ise *stagegate.InvalidStageError
			if errors.As(err, &ise) {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return nil, err
		}
		keep = func(spec catalog.ResourceSpec) bool { return unlocked.Has(spec.Kind) }
	}

	data, err := json.Marshal(map[string]any{
		"maxStage": cat.MaxStage(),
		"kinds":    entries(cat, keep),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) catalogHandler(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	cat := s.compiler.Catalog()
	data, err := json.Marshal(map[string]any{
		"count":  cat.Len(),
		"stages": cat.Stages(),
		"kinds":  entries(cat, func(catalog.ResourceSpec) bool { return true }),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      CatalogURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
