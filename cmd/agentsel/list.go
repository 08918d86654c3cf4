package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// listCmd prints every profile the catalog provides.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the profiles available in the catalog",
	RunE: func(_ *cobra.Command, _ []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		for _, d := range cat.Descriptors() {
			line := fmt.Sprintf("%-24s %s", d.ID, d.DisplayName)
			if d.MutexGroup != "" {
				line += fmt.Sprintf("  [group: %s]", d.MutexGroup)
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
