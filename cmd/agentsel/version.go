package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentsel-dev/agentsel/internal/version"
)

// versionCmd implements the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of agentsel",
	Run: func(_ *cobra.Command, _ []string) {
		info := version.Get()
		fmt.Printf("agentsel version %s\n", info.Full())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
