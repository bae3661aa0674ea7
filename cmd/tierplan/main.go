// Package main is the entry point for the tierplan CLI.
//
// tierplan compiles a catalog of cloud resources, a workshop stage and an
// environment tier into a deterministic deployment plan: which resources
// exist, what they are called, how they are sized and what they output.
//
// Commands: init, compile, validate, diff, batch, catalog, mcp-server.
//
// For detailed usage information, run:
//
//	tierplan --help
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/cmd/tierplan/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
