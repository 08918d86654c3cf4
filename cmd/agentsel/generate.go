package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/agentsel-dev/agentsel/internal/project"
	"github.com/agentsel-dev/agentsel/internal/resolve"
	"github.com/agentsel-dev/agentsel/internal/synth"
	"github.com/agentsel-dev/agentsel/internal/writer"
)

var generateDir string

// generateCmd resolves profiles and synthesizes the three artifacts.
var generateCmd = &cobra.Command{
	Use:   "generate <project.yaml>",
	Short: "Generate rules, context, and prompt artifacts for a project",
	Long: `Resolve the active agent profiles for a project description and
synthesize the derived artifacts: the combined rules document, the project
context summary, and the prompt collection. With --output the artifacts are
written to a directory; otherwise they are printed to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runGenerate(args[0])
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateDir, "output", "o", "", "Directory to write artifacts into (default: print to stdout)")
}

func runGenerate(descPath string) error {
	desc, err := project.Load(descPath)
	if err != nil {
		return err
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	sel, err := resolve.Resolve(cat, desc)
	if err != nil {
		return err
	}
	slog.Info("profiles resolved", "count", len(sel.Active))

	artifacts, err := synth.All(sel, cat, desc)
	if err != nil {
		return err
	}

	if generateDir == "" {
		for i, a := range artifacts {
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("=== %s ===\n%s", a.Name, a.Content)
		}
		return nil
	}

	if err := writer.Write(generateDir, artifacts); err != nil {
		return err
	}
	slog.Info("artifacts written", "dir", generateDir, "count", len(artifacts))
	return nil
}
