package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/IamPrat15/im-creator/internal/observability"
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Inspect accumulated model usage and cost",
	Long:  "Shows session totals, cost breakdowns, and the recent call log from the usage ledger, or exports a full CSV report.",
	RunE:  runUsage,
}

var (
	usageConfigPath string
	usageExportPath string
	usageRecent     int
	usageReset      bool
	usageAsJSON     bool
)

func init() {
	usageCmd.Flags().StringVarP(&usageConfigPath, "config", "c", "", "Path to a JSON config file")
	usageCmd.Flags().StringVar(&usageExportPath, "export", "", "Write a CSV usage report to the given path")
	usageCmd.Flags().IntVar(&usageRecent, "recent", 0, "Show the last N calls instead of session totals")
	usageCmd.Flags().BoolVar(&usageReset, "reset", false, "Clear the ledger and start a fresh session")
	usageCmd.Flags().BoolVar(&usageAsJSON, "json", false, "Emit stats as JSON")

	rootCmd.AddCommand(usageCmd)
}

func runUsage(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(usageConfigPath)
	if err != nil {
		return err
	}
	usageLedger := openLedger(cfg)

	if usageReset {
		usageLedger.Reset()
		fmt.Println("✅ Usage ledger reset")
		return nil
	}

	if usageExportPath != "" {
		report, err := usageLedger.ExportCSV()
		if err != nil {
			return fmt.Errorf("failed to build CSV report: %w", err)
		}
		if dir := filepath.Dir(usageExportPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create export directory: %w", err)
			}
		}
		if err := os.WriteFile(usageExportPath, []byte(report), 0o644); err != nil {
			return fmt.Errorf("failed to write CSV report: %w", err)
		}
		fmt.Printf("✅ Wrote usage report to %s\n", usageExportPath)
		return nil
	}

	if usageRecent > 0 {
		calls := usageLedger.RecentCalls(usageRecent)
		if usageAsJSON {
			data, err := json.MarshalIndent(calls, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode calls: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}
		if len(calls) == 0 {
			fmt.Println("No recorded calls")
			return nil
		}
		for _, call := range calls {
			fmt.Printf("%s  %-28s %-32s in=%d out=%d $%.6f\n",
				call.Timestamp.Format("2006-01-02 15:04:05"),
				call.ModelName, call.Purpose,
				call.InputTokens, call.OutputTokens, call.CostUSD)
		}
		return nil
	}

	stats := usageLedger.Stats()
	if usageAsJSON {
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode stats: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintUsage(stats)
	return nil
}
