package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/IamPrat15/im-creator/internal/pipeline"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Re-render only the slides a data change invalidates",
	Long:  "Diffs two JSON form-data snapshots and regenerates the affected slides. A change that touches document-wide fields triggers a full run.",
	RunE:  runUpdate,
}

var (
	updateBeforePath string
	updateAfterPath  string
	updateDocType    string
	updateConfigPath string
	updateOutPath    string
)

func init() {
	updateCmd.Flags().StringVar(&updateBeforePath, "before", "", "Path to the previous JSON snapshot (required)")
	updateCmd.Flags().StringVar(&updateAfterPath, "after", "", "Path to the current JSON snapshot (required)")
	updateCmd.Flags().StringVarP(&updateDocType, "type", "t", "", "Document type (management-presentation, cim, teaser)")
	updateCmd.Flags().StringVarP(&updateConfigPath, "config", "c", "", "Path to a JSON config file")
	updateCmd.Flags().StringVarP(&updateOutPath, "out", "o", "", "Write the rebuilt outline to the given path")

	for _, flag := range []string{"before", "after"} {
		if err := updateCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(updateConfigPath)
	if err != nil {
		return err
	}
	previous, err := loadRecord(updateBeforePath)
	if err != nil {
		return err
	}
	current, err := loadRecord(updateAfterPath)
	if err != nil {
		return err
	}

	usageLedger := openLedger(cfg)
	engine, closeEngine, err := buildEngine(cmd.Context(), cfg, usageLedger)
	if err != nil {
		return err
	}
	defer closeEngine()

	result, err := pipeline.Update(cmd.Context(), pipeline.UpdateOptions{
		RunOptions: pipeline.RunOptions{
			DocumentType: updateDocType,
			Record:       current,
			Engine:       engine,
			Theme:        cfg.Theme,
			Verbose:      true,
		},
		Previous: previous,
	})
	if err != nil {
		return err
	}

	if result.Impact.Empty() {
		fmt.Println("✅ No slides affected, nothing to rebuild")
		return nil
	}
	if result.Result == nil || result.Result.Output == "" {
		return nil
	}

	if updateOutPath != "" {
		if dir := filepath.Dir(updateOutPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		if err := os.WriteFile(updateOutPath, []byte(result.Result.Output), 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Printf("✅ Rebuilt %d slides, wrote %s\n", len(result.Rebuilt), updateOutPath)
		return nil
	}

	fmt.Println(result.Result.Output)
	return nil
}
