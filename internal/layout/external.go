package layout

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/IamPrat15/im-creator/internal/ledger"
	"github.com/IamPrat15/im-creator/internal/llm"
	"github.com/IamPrat15/im-creator/internal/prompts"
	"github.com/IamPrat15/im-creator/internal/schemas"
	"github.com/IamPrat15/im-creator/internal/types"
)

// External asks a model to pick the treatment for a slide. Every call is
// recorded against the usage ledger; any failure surfaces as an error so
// the engine can fall back to the heuristic.
type External struct {
	Client llm.Client
	Tier   llm.ModelTier
	Ledger *ledger.Ledger
}

// NewExternal wires an LLM-backed strategy. A nil ledger disables cost
// accounting but not the calls themselves.
func NewExternal(client llm.Client, tier llm.ModelTier, usage *ledger.Ledger) *External {
	if tier == "" {
		tier = llm.TierLite
	}
	return &External{Client: client, Tier: tier, Ledger: usage}
}

// Recommend requests, validates and decodes one recommendation.
func (e *External) Recommend(ctx context.Context, slideID types.SlideID, preview Preview) (types.LayoutRecommendation, error) {
	if e.Client == nil {
		return types.LayoutRecommendation{}, fmt.Errorf("no model client configured")
	}

	prompt := prompts.AnalyzeLayout(string(slideID), preview.JSON())

	raw, usage, err := e.Client.GenerateJSON(ctx, prompt, e.Tier)
	if e.Ledger != nil && (usage.InputTokens > 0 || usage.OutputTokens > 0) {
		e.Ledger.Record(e.Client.GetModel(e.Tier), usage.InputTokens, usage.OutputTokens, "analyze_layout_"+string(slideID))
	}
	if err != nil {
		return types.LayoutRecommendation{}, fmt.Errorf("layout analysis call failed: %w", err)
	}

	doc, err := extractJSONObject(raw)
	if err != nil {
		return types.LayoutRecommendation{}, err
	}

	if err := schemas.ValidateLayoutRecommendation(doc); err != nil {
		return types.LayoutRecommendation{}, fmt.Errorf("model returned invalid recommendation: %w", err)
	}

	var rec types.LayoutRecommendation
	if err := json.Unmarshal([]byte(doc), &rec); err != nil {
		return types.LayoutRecommendation{}, fmt.Errorf("failed to decode recommendation: %w", err)
	}
	if err := rec.Validate(); err != nil {
		return types.LayoutRecommendation{}, fmt.Errorf("model returned out-of-range recommendation: %w", err)
	}
	return rec, nil
}

// extractJSONObject pulls the first balanced JSON object out of model
// output, tolerating prose before or after it.
func extractJSONObject(text string) (string, error) {
	start := strings.Index(text, "{")
	if start < 0 {
		return "", fmt.Errorf("no JSON object in model output")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}
	return "", fmt.Errorf("unbalanced JSON object in model output")
}
