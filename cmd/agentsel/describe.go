package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/agentsel-dev/agentsel/internal/project"
)

var describeOut string

// describeCmd walks the user through describing their project and writes
// the resulting description file. The resolution core never runs this flow;
// it only ever consumes the file it produces.
var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Interactively describe a project",
	Long: `Answer a short series of questions about the project and write a
project description file that resolve and generate can consume.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runDescribe()
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)

	describeCmd.Flags().StringVarP(&describeOut, "output", "o", "project.yaml", "Where to write the project description")
}

func runDescribe() error {
	var (
		projectType string
		frontend    string
		backend     string
		mobile      string
		database    string
		deployment  string
		features    []string
		notes       string
	)

	err := huh.NewSelect[string]().
		Title("Project type").
		Options(
			huh.NewOption("Web application", "web"),
			huh.NewOption("Mobile application", "mobile"),
			huh.NewOption("Fullstack (web + API)", "fullstack"),
			huh.NewOption("API / backend service", "api"),
			huh.NewOption("Desktop application", "desktop"),
			huh.NewOption("Command-line tool", "cli"),
			huh.NewOption("Something else", "other"),
		).
		Value(&projectType).
		Run()
	if err != nil {
		return err
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Frontend framework").
				Options(
					huh.NewOption("None", "none"),
					huh.NewOption("React", "react"),
					huh.NewOption("Next.js", "nextjs"),
					huh.NewOption("Vue", "vue"),
				).
				Value(&frontend),
			huh.NewSelect[string]().
				Title("Backend provider").
				Options(
					huh.NewOption("None", "none"),
					huh.NewOption("Supabase", "supabase"),
					huh.NewOption("Firebase", "firebase"),
					huh.NewOption("AWS", "aws"),
					huh.NewOption("Custom server", "custom"),
				).
				Value(&backend),
			huh.NewSelect[string]().
				Title("Mobile platform").
				Options(
					huh.NewOption("None", "none"),
					huh.NewOption("Flutter", "flutter"),
					huh.NewOption("React Native", "react-native"),
					huh.NewOption("Native iOS", "ios-native"),
				).
				Value(&mobile),
			huh.NewSelect[string]().
				Title("Database").
				Options(
					huh.NewOption("None", "none"),
					huh.NewOption("PostgreSQL", "postgres"),
					huh.NewOption("MySQL", "mysql"),
					huh.NewOption("MongoDB", "mongodb"),
					huh.NewOption("SQLite", "sqlite"),
				).
				Value(&database),
			huh.NewSelect[string]().
				Title("Deployment target").
				Options(
					huh.NewOption("None", "none"),
					huh.NewOption("Vercel", "vercel"),
					huh.NewOption("Netlify", "netlify"),
					huh.NewOption("AWS", "aws"),
					huh.NewOption("Docker", "docker"),
				).
				Value(&deployment),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Features").
				Options(
					huh.NewOption("Authentication", "authentication"),
					huh.NewOption("Payments", "payments"),
					huh.NewOption("Realtime updates", "realtime"),
					huh.NewOption("Transactional email", "email"),
					huh.NewOption("Internationalization", "i18n"),
					huh.NewOption("Progressive web app", "pwa"),
					huh.NewOption("Analytics", "analytics"),
				).
				Value(&features),
			huh.NewInput().
				Title("Anything else about the project? (optional)").
				Value(&notes),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	desc := project.Description{
		Type: project.Type(projectType),
		Dimensions: map[string]string{
			project.DimFrontend:   frontend,
			project.DimBackend:    backend,
			project.DimMobile:     mobile,
			project.DimDatabase:   database,
			project.DimDeployment: deployment,
		},
		Features: make(map[string]bool, len(features)),
		Notes:    notes,
	}
	for _, f := range features {
		desc.Features[f] = true
	}

	raw, err := yaml.Marshal(desc)
	if err != nil {
		return fmt.Errorf("encoding project description: %w", err)
	}
	if err := os.WriteFile(describeOut, raw, 0o644); err != nil {
		return fmt.Errorf("writing project description: %w", err)
	}

	fmt.Printf("Wrote %s\n", describeOut)
	return nil
}
