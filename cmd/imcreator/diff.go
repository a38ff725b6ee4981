package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IamPrat15/im-creator/internal/observability"
	"github.com/IamPrat15/im-creator/internal/statediff"
)

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Show which slides a data change invalidates",
	Long:  "Compares two JSON form-data snapshots and reports the changed fields plus the set of slides that must be rebuilt.",
	RunE:  runDiff,
}

var (
	diffBeforePath string
	diffAfterPath  string
	diffAsJSON     bool
)

func init() {
	diffCmd.Flags().StringVar(&diffBeforePath, "before", "", "Path to the previous JSON snapshot (required)")
	diffCmd.Flags().StringVar(&diffAfterPath, "after", "", "Path to the current JSON snapshot (required)")
	diffCmd.Flags().BoolVar(&diffAsJSON, "json", false, "Emit the impact as JSON")

	for _, flag := range []string{"before", "after"} {
		if err := diffCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(diffCmd)
}

func runDiff(_ *cobra.Command, _ []string) error {
	before, err := loadRecord(diffBeforePath)
	if err != nil {
		return err
	}
	after, err := loadRecord(diffAfterPath)
	if err != nil {
		return err
	}

	changed := statediff.Diff(before, after)
	impact := statediff.Affected(changed)

	if diffAsJSON {
		payload := map[string]any{
			"changed_fields": changed,
			"rebuild_all":    impact.All,
			"slides":         impact.Slides,
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode impact: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintImpact(changed, impact)
	return nil
}
