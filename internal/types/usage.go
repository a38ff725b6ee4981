package types

import "time"

// UsageRecord captures one external-service call for cost accounting.
type UsageRecord struct {
	Timestamp    time.Time `json:"timestamp"`
	Model        string    `json:"model"`
	ModelName    string    `json:"model_name"`
	Purpose      string    `json:"purpose"`
	InputTokens  int       `json:"input_tokens"`
	OutputTokens int       `json:"output_tokens"`
	TotalTokens  int       `json:"total_tokens"`
	CostUSD      float64   `json:"cost_usd"`
}

// UsageBreakdown aggregates calls along one dimension (purpose or model).
type UsageBreakdown struct {
	Calls   int     `json:"calls"`
	Tokens  int     `json:"tokens"`
	CostUSD float64 `json:"cost"`
}

// UsageStats is a consistent snapshot of the ledger's running totals plus
// derived averages. Averages are zero on a fresh or reset ledger.
type UsageStats struct {
	TotalCalls           int                       `json:"total_calls"`
	TotalInputTokens     int                       `json:"total_input_tokens"`
	TotalOutputTokens    int                       `json:"total_output_tokens"`
	TotalCostUSD         float64                   `json:"total_cost_usd"`
	SessionStart         time.Time                 `json:"session_start"`
	SessionDurationHours float64                   `json:"session_duration_hours"`
	AverageCostPerCall   float64                   `json:"average_cost_per_call"`
	AverageTokensPerCall float64                   `json:"average_tokens_per_call"`
	ByPurpose            map[string]UsageBreakdown `json:"by_purpose"`
	ByModel              map[string]UsageBreakdown `json:"by_model"`
}
