package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IamPrat15/im-creator/internal/observability"
	"github.com/IamPrat15/im-creator/internal/resolver"
	"github.com/IamPrat15/im-creator/internal/types"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the slide plan for a document type and data file",
	Long:  "Resolves the ordered slide plan for a document type against a JSON form-data file, applying inclusion predicates, case-study fan-out and appendix rules.",
	RunE:  runResolve,
}

var (
	resolveDataPath string
	resolveDocType  string
	resolveAsJSON   bool
)

func init() {
	resolveCmd.Flags().StringVarP(&resolveDataPath, "data", "d", "", "Path to JSON form-data file")
	resolveCmd.Flags().StringVarP(&resolveDocType, "type", "t", "", "Document type (management-presentation, cim, teaser)")
	resolveCmd.Flags().BoolVar(&resolveAsJSON, "json", false, "Emit the plan as JSON")

	rootCmd.AddCommand(resolveCmd)
}

func runResolve(_ *cobra.Command, _ []string) error {
	record := types.NewInputRecord(nil)
	if resolveDataPath != "" {
		var err error
		record, err = loadRecord(resolveDataPath)
		if err != nil {
			return err
		}
	}

	plan := resolver.Resolve(resolveDocType, record)

	if resolveAsJSON {
		data, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode plan: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintPlan(plan)
	return nil
}
