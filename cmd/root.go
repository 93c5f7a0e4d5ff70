// Package cmd is the portfolio command line: the web server plus a few
// maintenance commands that work on the configured storage.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio site with a built-in content editor",
	Long: `portfolio serves a single-page portfolio and an admin editor that rewrites
its sections. Content and the admin password live in the configured storage
driver (sqlite, redis or memory).

Configuration comes from the environment and an optional .env file.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command. Without a subcommand it serves the site.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(serveCmd, resetCmd, passwdCmd, exportCmd)
}
