package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "snippetgen",
	Short: "Highlight matched terms in text and extract the best snippets",
	Long: `snippetgen reads text and a set of match terms and prints the
best-matching highlighted snippets, the way a search result listing
would render them.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
