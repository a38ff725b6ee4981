// Package llm wraps the generation service behind a tiered client so
// callers pick a capability level instead of a model name.
package llm

// ModelTier is the capability level requested for a call.
type ModelTier string

const (
	// TierLite handles cheap structured tasks such as per-slide layout
	// analysis.
	TierLite ModelTier = "lite"
	// TierStandard handles moderate reasoning over larger inputs.
	TierStandard ModelTier = "standard"
	// TierAdvanced handles the heaviest prompts.
	TierAdvanced ModelTier = "advanced"
)

// Config maps tiers to concrete model names.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the Gemini tier mapping used by the CLI.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel resolves a tier to a model name, degrading through standard and
// lite before giving up with an empty string.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a copy of the config with one tier overridden. The
// receiver is not mutated.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	models := make(map[ModelTier]string, len(c.Models)+1)
	for k, v := range c.Models {
		models[k] = v
	}
	models[tier] = model
	return &Config{Models: models}
}
