package ledger

// ModelPricing holds per-1K-token rates and a display name for one model.
type ModelPricing struct {
	InputPer1K  float64 `json:"input"`
	OutputPer1K float64 `json:"output"`
	Name        string  `json:"name"`
}

// fallbackModel is the cheapest tier; unknown models price against it so
// costs are never overstated by a bad model string.
const fallbackModel = "gemini-2.5-flash-lite"

var pricing = map[string]ModelPricing{
	"gemini-2.5-pro": {
		InputPer1K:  0.00125,
		OutputPer1K: 0.01,
		Name:        "Gemini 2.5 Pro",
	},
	"gemini-2.5-flash": {
		InputPer1K:  0.0003,
		OutputPer1K: 0.0025,
		Name:        "Gemini 2.5 Flash",
	},
	"gemini-2.5-flash-lite": {
		InputPer1K:  0.0001,
		OutputPer1K: 0.0004,
		Name:        "Gemini 2.5 Flash-Lite",
	},
}

// PricingFor returns the pricing entry for a model, falling back to the
// cheapest known tier for unrecognized identifiers.
func PricingFor(model string) ModelPricing {
	if p, ok := pricing[model]; ok {
		return p
	}
	p := pricing[fallbackModel]
	p.Name = model
	return p
}

// Cost computes the USD cost of one call at per-1K-token rates.
func Cost(model string, inputTokens, outputTokens int) float64 {
	p := PricingFor(model)
	return (float64(inputTokens)/1000)*p.InputPer1K + (float64(outputTokens)/1000)*p.OutputPer1K
}
