package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/config"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard runs the interactive form.
	runWizard = config.RunWizard

	// writeSpec writes the config to a file.
	writeSpec = config.SaveSpec
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	spec := result.ToSpec()
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := writeSpec(spec, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, spec)
	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("tierplan - staged workshop infrastructure plans")
	fmt.Println("===============================================")
	fmt.Println()
	fmt.Println("This wizard creates a tierplan.yaml for one deployment.")
	fmt.Println("Per-attendee values can later be listed in a roster file.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, spec *config.Spec) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	fmt.Println("Deployment Summary")
	fmt.Println("------------------")
	fmt.Printf("  Base name:   %s\n", spec.BaseName)
	if spec.Suffix != "" {
		fmt.Printf("  Suffix:      %s\n", spec.Suffix)
	}
	fmt.Printf("  Environment: %s\n", spec.Environment)
	fmt.Printf("  Stage:       %d\n", spec.Stage)
	fmt.Printf("  Location:    %s\n", spec.Location)
	fmt.Println()

	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Println("  1. Review the plan:")
	fmt.Printf("     tierplan compile --config %s\n", outputPath)
	fmt.Println()
	fmt.Println("  2. Preview the next module:")
	fmt.Printf("     tierplan diff --config %s --from %d --to %d\n", outputPath, spec.Stage, spec.Stage+1)
	fmt.Println()
}
