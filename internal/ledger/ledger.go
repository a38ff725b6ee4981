// Package ledger accounts for external model usage: token counts, USD
// cost, and per-purpose / per-model breakdowns, with optional persistence.
package ledger

import (
	"encoding/json"
	"math"
	"sync"
	"time"

	"github.com/IamPrat15/im-creator/internal/logging"
	"github.com/IamPrat15/im-creator/internal/types"
)

// maxCallLog bounds the retained per-call history.
const maxCallLog = 1000

// Store persists ledger state between sessions. Load returning
// (nil, nil) means no prior state exists.
type Store interface {
	Save(data []byte) error
	Load() ([]byte, error)
}

// Ledger is a concurrency-safe usage accumulator. A nil store keeps the
// ledger in-memory only; persistence failures are logged and never block
// the pipeline.
type Ledger struct {
	mu    sync.Mutex
	state state
	store Store
}

// state is the serialized form shared by persistence and snapshots.
type state struct {
	TotalCalls        int                             `json:"total_calls"`
	TotalInputTokens  int                             `json:"total_input_tokens"`
	TotalOutputTokens int                             `json:"total_output_tokens"`
	TotalCostUSD      float64                         `json:"total_cost_usd"`
	SessionStart      time.Time                       `json:"session_start"`
	Calls             []types.UsageRecord             `json:"calls"`
	ByPurpose         map[string]types.UsageBreakdown `json:"by_purpose"`
	ByModel           map[string]types.UsageBreakdown `json:"by_model"`
}

func freshState() state {
	return state{
		SessionStart: time.Now(),
		ByPurpose:    make(map[string]types.UsageBreakdown),
		ByModel:      make(map[string]types.UsageBreakdown),
	}
}

// New creates a ledger, restoring prior state from the store when present.
// A corrupt or unreadable snapshot degrades to a fresh ledger.
func New(store Store) *Ledger {
	l := &Ledger{state: freshState(), store: store}
	if store == nil {
		return l
	}

	data, err := store.Load()
	if err != nil {
		logging.Warn().Err(err).Msg("could not load usage ledger, starting fresh")
		return l
	}
	if len(data) == 0 {
		return l
	}

	var restored state
	if err := json.Unmarshal(data, &restored); err != nil {
		logging.Warn().Err(err).Msg("corrupt usage ledger snapshot, starting fresh")
		return l
	}
	if restored.ByPurpose == nil {
		restored.ByPurpose = make(map[string]types.UsageBreakdown)
	}
	if restored.ByModel == nil {
		restored.ByModel = make(map[string]types.UsageBreakdown)
	}
	if restored.SessionStart.IsZero() {
		restored.SessionStart = time.Now()
	}
	l.state = restored
	return l
}

// Record accounts for one model call and returns the priced record.
func (l *Ledger) Record(model string, inputTokens, outputTokens int, purpose string) types.UsageRecord {
	if purpose == "" {
		purpose = "general"
	}
	p := PricingFor(model)
	cost := round6(Cost(model, inputTokens, outputTokens))

	record := types.UsageRecord{
		Timestamp:    time.Now(),
		Model:        model,
		ModelName:    p.Name,
		Purpose:      purpose,
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		TotalTokens:  inputTokens + outputTokens,
		CostUSD:      cost,
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.state.TotalCalls++
	l.state.TotalInputTokens += inputTokens
	l.state.TotalOutputTokens += outputTokens
	l.state.TotalCostUSD = round6(l.state.TotalCostUSD + cost)

	bump(l.state.ByPurpose, purpose, record)
	bump(l.state.ByModel, p.Name, record)

	l.state.Calls = append(l.state.Calls, record)
	if len(l.state.Calls) > maxCallLog {
		l.state.Calls = l.state.Calls[len(l.state.Calls)-maxCallLog:]
	}

	l.persistLocked()
	return record
}

// Stats returns a consistent snapshot with derived averages.
func (l *Ledger) Stats() types.UsageStats {
	l.mu.Lock()
	defer l.mu.Unlock()

	calls := l.state.TotalCalls
	divisor := calls
	if divisor < 1 {
		divisor = 1
	}
	totalTokens := l.state.TotalInputTokens + l.state.TotalOutputTokens

	return types.UsageStats{
		TotalCalls:           calls,
		TotalInputTokens:     l.state.TotalInputTokens,
		TotalOutputTokens:    l.state.TotalOutputTokens,
		TotalCostUSD:         l.state.TotalCostUSD,
		SessionStart:         l.state.SessionStart,
		SessionDurationHours: round2(time.Since(l.state.SessionStart).Hours()),
		AverageCostPerCall:   round6(l.state.TotalCostUSD / float64(divisor)),
		AverageTokensPerCall: math.Round(float64(totalTokens) / float64(divisor)),
		ByPurpose:            copyBreakdowns(l.state.ByPurpose),
		ByModel:              copyBreakdowns(l.state.ByModel),
	}
}

// RecentCalls returns up to limit most recent call records, oldest first.
func (l *Ledger) RecentCalls(limit int) []types.UsageRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	if limit <= 0 || limit > len(l.state.Calls) {
		limit = len(l.state.Calls)
	}
	out := make([]types.UsageRecord, limit)
	copy(out, l.state.Calls[len(l.state.Calls)-limit:])
	return out
}

// Reset zeroes every counter and starts a new session.
func (l *Ledger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.state = freshState()
	l.persistLocked()
}

func (l *Ledger) persistLocked() {
	if l.store == nil {
		return
	}
	data, err := json.MarshalIndent(l.state, "", "  ")
	if err != nil {
		logging.Warn().Err(err).Msg("could not serialize usage ledger")
		return
	}
	if err := l.store.Save(data); err != nil {
		logging.Warn().Err(err).Msg("could not persist usage ledger")
	}
}

func bump(m map[string]types.UsageBreakdown, key string, record types.UsageRecord) {
	b := m[key]
	b.Calls++
	b.Tokens += record.TotalTokens
	b.CostUSD = round6(b.CostUSD + record.CostUSD)
	m[key] = b
}

func copyBreakdowns(m map[string]types.UsageBreakdown) map[string]types.UsageBreakdown {
	out := make(map[string]types.UsageBreakdown, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
