package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/IamPrat15/im-creator/internal/config"
	"github.com/IamPrat15/im-creator/internal/layout"
	"github.com/IamPrat15/im-creator/internal/ledger"
	"github.com/IamPrat15/im-creator/internal/llm"
	"github.com/IamPrat15/im-creator/internal/types"
)

// defaultLedgerPath is where usage accounting persists unless configured.
const defaultLedgerPath = ".imcreator/usage.json"

// loadRecord reads a JSON form-data file into a canonical record.
func loadRecord(path string) (*types.InputRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file %s: %w", path, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse data file %s: %w", path, err)
	}
	return types.NewInputRecord(raw), nil
}

// loadConfig merges the optional config file with environment overrides.
func loadConfig(path string) (config.Config, error) {
	cfg := config.Config{}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}
	cfg.ApplyEnv()
	cfg = cfg.MergeWithDefaults(config.Config{LedgerPath: defaultLedgerPath})
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// openLedger opens the persistent usage ledger for a config.
func openLedger(cfg config.Config) *ledger.Ledger {
	return ledger.New(ledger.NewFileStore(cfg.LedgerPath))
}

// buildEngine wires the layout engine from config. Without an API key the
// engine is heuristic-only; the returned closer releases the model client.
func buildEngine(ctx context.Context, cfg config.Config, usage *ledger.Ledger) (*layout.Engine, func(), error) {
	if cfg.DisableAILayout || cfg.APIKey == "" {
		return layout.NewEngine(nil, true), func() {}, nil
	}

	llmConfig := llm.DefaultConfig()
	if cfg.Model != "" {
		llmConfig = llmConfig.WithModel(llm.TierLite, cfg.Model)
	}

	client, err := llm.NewClient(ctx, llmConfig, cfg.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create model client: %w", err)
	}

	external := layout.NewExternal(client, llm.TierLite, usage)
	return layout.NewEngine(external, false), func() { _ = client.Close() }, nil
}
