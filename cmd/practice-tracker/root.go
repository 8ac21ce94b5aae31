package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version    = "dev"
	configPath string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "practice-tracker",
	Short: "Practice Tracker - an API for tracking practice sessions",
	Long: `Practice Tracker records practice sessions (a task, a duration, an
optional date and time, an optional owning user) and serves listing,
search and per-user statistical summaries over HTTP.`,
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default to the serve command when no subcommand is provided.
		return runServe(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
