package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/IamPrat15/im-creator/internal/logging"
	"github.com/IamPrat15/im-creator/internal/pipeline"
	"github.com/IamPrat15/im-creator/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a full document outline from a data file",
	Long:  "Runs the full pipeline: resolves the slide plan, analyzes layout for every slide, renders the document outline and optionally persists the run and draft to PostgreSQL.",
	RunE:  runGenerate,
}

var (
	generateDataPath   string
	generateDocType    string
	generateConfigPath string
	generateOutPath    string
	generateProjectID  string
)

func init() {
	generateCmd.Flags().StringVarP(&generateDataPath, "data", "d", "", "Path to JSON form-data file (required)")
	generateCmd.Flags().StringVarP(&generateDocType, "type", "t", "", "Document type (defaults to the data file's documentType)")
	generateCmd.Flags().StringVarP(&generateConfigPath, "config", "c", "", "Path to config JSON file")
	generateCmd.Flags().StringVarP(&generateOutPath, "out", "o", "", "Write the outline to this file instead of stdout")
	generateCmd.Flags().StringVar(&generateProjectID, "project", "", "Project ID for draft persistence")

	if err := generateCmd.MarkFlagRequired("data"); err != nil {
		panic(fmt.Sprintf("failed to mark data flag as required: %v", err))
	}

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(generateConfigPath)
	if err != nil {
		return err
	}
	cfg.Verbose = cfg.Verbose || rootVerbose

	record, err := loadRecord(generateDataPath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	usage := openLedger(cfg)
	engine, closeEngine, err := buildEngine(ctx, cfg, usage)
	if err != nil {
		return err
	}
	defer closeEngine()

	var st *store.Store
	if cfg.DatabaseURL != "" {
		st, err = store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			logging.Warn().Err(err).Msg("database unavailable, continuing without persistence")
			st = nil
		} else {
			defer st.Close()
		}
	}

	result, err := pipeline.Run(ctx, pipeline.RunOptions{
		DocumentType: generateDocType,
		Record:       record,
		Engine:       engine,
		Store:        st,
		ProjectID:    generateProjectID,
		Theme:        cfg.Theme,
		Verbose:      cfg.Verbose,
	})
	if err != nil {
		return err
	}

	outPath := generateOutPath
	if outPath == "" && cfg.OutputDir != "" {
		outPath = filepath.Join(cfg.OutputDir, result.Plan.DocumentType+"-outline.txt")
	}
	if outPath != "" {
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(outPath, []byte(result.Output), 0o644); err != nil {
			return fmt.Errorf("failed to write outline: %w", err)
		}
		fmt.Printf("✅ Wrote %d slides to %s\n", result.Plan.PhysicalCount(), outPath)
		return nil
	}

	fmt.Println(result.Output)
	return nil
}
