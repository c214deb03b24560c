// Package main is the entry point for the audiovibe server CLI: serve the
// API, run migrations, or reseed the catalog.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "audiovibe",
	Short: "Audiobook catalog and recommendation service",
	Long: `audiovibe serves an audiobook catalog with onboarding preferences,
favorites, listening history, ratings and a personalized recommendation
feed. Run with no arguments to start the HTTP server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
