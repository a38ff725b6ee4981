package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"api_key": "test-key",
		"model": "gemini-2.5-flash",
		"disable_ai_layout": true,
		"ledger_path": "usage.json",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.True(t, cfg.DisableAILayout)
	assert.Equal(t, "usage.json", cfg.LedgerPath)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestApplyEnv_OverridesFileValues(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("DISABLE_AI_LAYOUT", "TRUE")
	t.Setenv("IM_CREATOR_LEDGER", "/tmp/ledger.json")

	cfg := Config{APIKey: "file-key", LedgerPath: "file.json"}
	cfg.ApplyEnv()

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.True(t, cfg.DisableAILayout)
	assert.Equal(t, "/tmp/ledger.json", cfg.LedgerPath)
}

func TestApplyEnv_EmptyEnvLeavesConfig(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("DISABLE_AI_LAYOUT", "")

	cfg := Config{APIKey: "file-key"}
	cfg.ApplyEnv()

	assert.Equal(t, "file-key", cfg.APIKey)
	assert.False(t, cfg.DisableAILayout)
}

func TestValidate_LedgerPathIsDirectory(t *testing.T) {
	cfg := Config{LedgerPath: t.TempDir()}
	assert.Error(t, cfg.Validate())
}

func TestValidate_EmptyConfig(t *testing.T) {
	cfg := Config{}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{APIKey: "mine"}
	merged := cfg.MergeWithDefaults(Config{
		APIKey:     "default",
		Model:      "gemini-2.5-flash-lite",
		LedgerPath: "usage.json",
	})

	assert.Equal(t, "mine", merged.APIKey)
	assert.Equal(t, "gemini-2.5-flash-lite", merged.Model)
	assert.Equal(t, "usage.json", merged.LedgerPath)
}
