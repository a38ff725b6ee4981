// Package main implements the imcreator CLI for slide-deck document
// assembly: plan resolution, layout analysis, change impact and usage
// reporting.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/IamPrat15/im-creator/internal/logging"
	"github.com/IamPrat15/im-creator/internal/resolver"
)

var rootCmd = &cobra.Command{
	Use:   "imcreator",
	Short: "Investment document generator",
	Long:  "imcreator assembles investor-facing slide documents (teasers, management presentations, CIMs) from structured company data, with data-aware layout recommendations.",
}

var rootVerbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		logging.Init(rootVerbose)
	}
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := resolver.ValidateCatalog(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid document catalog: %v\n", err)
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
