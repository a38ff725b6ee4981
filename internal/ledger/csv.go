package ledger

import (
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/IamPrat15/im-creator/internal/types"
)

// recentExportLimit caps the per-call section of a CSV export.
const recentExportLimit = 100

// ExportCSV renders the ledger as a multi-section CSV report: summary,
// per-purpose and per-model breakdowns, then the most recent calls.
// Breakdown rows are sorted by key so exports are diffable.
func (l *Ledger) ExportCSV() (string, error) {
	stats := l.Stats()
	recent := l.RecentCalls(recentExportLimit)

	var sb strings.Builder
	w := csv.NewWriter(&sb)

	rows := [][]string{
		{"IM Creator - Model Usage Report"},
		{"Generated", time.Now().Format("2006-01-02 15:04:05")},
		{},
		{"SUMMARY"},
		{"Total API Calls", strconv.Itoa(stats.TotalCalls)},
		{"Total Input Tokens", strconv.Itoa(stats.TotalInputTokens)},
		{"Total Output Tokens", strconv.Itoa(stats.TotalOutputTokens)},
		{"Total Tokens", strconv.Itoa(stats.TotalInputTokens + stats.TotalOutputTokens)},
		{"Total Cost (USD)", fmt.Sprintf("$%.6f", stats.TotalCostUSD)},
		{"Session Start", stats.SessionStart.Format(time.RFC3339)},
		{"Session Duration (hours)", fmt.Sprintf("%.2f", stats.SessionDurationHours)},
		{},
		{"BREAKDOWN BY PURPOSE"},
		{"Purpose", "Calls", "Tokens", "Cost (USD)"},
	}
	rows = append(rows, breakdownRows(stats.ByPurpose)...)
	rows = append(rows,
		[]string{},
		[]string{"BREAKDOWN BY MODEL"},
		[]string{"Model", "Calls", "Tokens", "Cost (USD)"},
	)
	rows = append(rows, breakdownRows(stats.ByModel)...)
	rows = append(rows,
		[]string{},
		[]string{fmt.Sprintf("RECENT CALLS (Last %d)", recentExportLimit)},
		[]string{"Timestamp", "Model", "Purpose", "Input Tokens", "Output Tokens", "Total Tokens", "Cost (USD)"},
	)
	for _, call := range recent {
		rows = append(rows, []string{
			call.Timestamp.Format(time.RFC3339),
			call.ModelName,
			call.Purpose,
			strconv.Itoa(call.InputTokens),
			strconv.Itoa(call.OutputTokens),
			strconv.Itoa(call.TotalTokens),
			fmt.Sprintf("$%.6f", call.CostUSD),
		})
	}

	if err := w.WriteAll(rows); err != nil {
		return "", fmt.Errorf("failed to write usage CSV: %w", err)
	}
	w.Flush()
	return sb.String(), w.Error()
}

func breakdownRows(m map[string]types.UsageBreakdown) [][]string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		b := m[k]
		rows = append(rows, []string{
			k,
			strconv.Itoa(b.Calls),
			strconv.Itoa(b.Tokens),
			fmt.Sprintf("$%.6f", b.CostUSD),
		})
	}
	return rows
}
