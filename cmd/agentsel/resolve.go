package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentsel-dev/agentsel/internal/output"
	"github.com/agentsel-dev/agentsel/internal/project"
	"github.com/agentsel-dev/agentsel/internal/resolve"
)

var (
	resolveFormat string
	resolveOut    string
)

// resolveCmd computes the active profile set for a project description.
var resolveCmd = &cobra.Command{
	Use:   "resolve <project.yaml>",
	Short: "Resolve which agent profiles apply to a project",
	Long: `Load a project description and compute the set of active agent
profiles against the catalog. The output lists every selected profile with
the rules that activated it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runResolve(args[0])
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVar(&resolveFormat, "format", "table", "Output format: table, json, yaml")
	resolveCmd.Flags().StringVarP(&resolveOut, "output", "o", "", "Output file path (default: stdout)")
}

func runResolve(descPath string) error {
	desc, err := project.Load(descPath)
	if err != nil {
		return err
	}
	slog.Debug("project description loaded", "type", desc.Type)

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	sel, err := resolve.Resolve(cat, desc)
	if err != nil {
		return err
	}
	slog.Info("profiles resolved", "count", len(sel.Active))

	w := os.Stdout
	if resolveOut != "" {
		file, err := os.Create(resolveOut)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer func() {
			_ = file.Close() // Best-effort cleanup
		}()
		w = file
	}

	formatter, err := output.NewFormatter(resolveFormat, w)
	if err != nil {
		return err
	}
	return formatter.Format(sel)
}
