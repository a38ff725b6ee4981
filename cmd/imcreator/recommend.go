package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IamPrat15/im-creator/internal/observability"
	"github.com/IamPrat15/im-creator/internal/types"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend the layout treatment for one slide",
	Long:  "Analyzes the data shape for a single slide and prints the recommended chart type, layout variant, density and emphasis. Falls back to deterministic heuristics when no model is configured.",
	RunE:  runRecommend,
}

var (
	recommendDataPath   string
	recommendSlide      string
	recommendConfigPath string
	recommendAsJSON     bool
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendDataPath, "data", "d", "", "Path to JSON form-data file")
	recommendCmd.Flags().StringVarP(&recommendSlide, "slide", "s", "", "Slide identifier (e.g. financials, clients) (required)")
	recommendCmd.Flags().StringVarP(&recommendConfigPath, "config", "c", "", "Path to config JSON file")
	recommendCmd.Flags().BoolVar(&recommendAsJSON, "json", false, "Emit the recommendation as JSON")

	if err := recommendCmd.MarkFlagRequired("slide"); err != nil {
		panic(fmt.Sprintf("failed to mark slide flag as required: %v", err))
	}

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(recommendConfigPath)
	if err != nil {
		return err
	}
	cfg.Verbose = cfg.Verbose || rootVerbose

	record := types.NewInputRecord(nil)
	if recommendDataPath != "" {
		record, err = loadRecord(recommendDataPath)
		if err != nil {
			return err
		}
	}

	ctx := context.Background()
	usage := openLedger(cfg)
	engine, closeEngine, err := buildEngine(ctx, cfg, usage)
	if err != nil {
		return err
	}
	defer closeEngine()

	slideID := types.SlideID(recommendSlide)
	rec := engine.Recommend(ctx, slideID, record)

	if recommendAsJSON {
		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode recommendation: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintRecommendation(slideID, rec)
	return nil
}
