// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/IamPrat15/im-creator/internal/statediff"
	"github.com/IamPrat15/im-creator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPlan outputs the resolved slide plan with fan-out counts.
func (p *Printer) PrintPlan(plan types.SlidePlan) {
	if len(plan.Entries) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Document type: %s\n", plan.DocumentType))
	sb.WriteString(fmt.Sprintf("Physical slides: %d\n\n", plan.PhysicalCount()))

	count := min(len(plan.Entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := plan.Entries[i]
		sb.WriteString(fmt.Sprintf("%2d. %s", i+1, entry.ID))
		if entry.Repeat > 1 {
			sb.WriteString(fmt.Sprintf(" ×%d", entry.Repeat))
		}
		sb.WriteString("\n")
	}
	if len(plan.Entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more slides\n", len(plan.Entries)-maxItemsToShow))
	}

	p.printBox("SLIDE PLAN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendation outputs one slide's layout treatment.
func (p *Printer) PrintRecommendation(slideID types.SlideID, rec types.LayoutRecommendation) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Chart:     %s\n", rec.ChartType))
	sb.WriteString(fmt.Sprintf("Layout:    %s\n", rec.Layout))
	sb.WriteString(fmt.Sprintf("Density:   %s\n", rec.ContentDensity))
	sb.WriteString(fmt.Sprintf("Emphasis:  %s\n", rec.PrimaryEmphasis))
	if rec.FontAdjustment != 0 {
		sb.WriteString(fmt.Sprintf("Font:      %+d\n", rec.FontAdjustment))
	}

	if len(rec.Recommendations) > 0 {
		sb.WriteString("\nSuggestions:\n")
		count := min(len(rec.Recommendations), 3)
		for i := 0; i < count; i++ {
			suggestion := rec.Recommendations[i]
			if len(suggestion) > 50 {
				suggestion = suggestion[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", suggestion))
		}
		if len(rec.Recommendations) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(rec.Recommendations)-3))
		}
	}

	p.printBox(fmt.Sprintf("LAYOUT: %s", strings.ToUpper(string(slideID))), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintImpact outputs which slides a record change invalidates.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintImpact(changed []string, impact statediff.Impact) {
	if impact.Empty() {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO SLIDES AFFECTED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Changed fields: %d\n", len(changed)))
	count := min(len(changed), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", changed[i]))
	}
	if len(changed) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(changed)-maxItemsToShow))
	}
	sb.WriteString("\n")

	if impact.All {
		sb.WriteString("⚠ Full document rebuild required")
	} else {
		sb.WriteString(fmt.Sprintf("Slides to rebuild (%d):\n", len(impact.Slides)))
		for _, id := range impact.Slides {
			sb.WriteString(fmt.Sprintf("  • %s\n", id))
		}
	}

	p.printBox("CHANGE IMPACT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintUsage outputs the usage ledger summary.
func (p *Printer) PrintUsage(stats types.UsageStats) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Calls:          %d\n", stats.TotalCalls))
	sb.WriteString(fmt.Sprintf("Input tokens:   %d\n", stats.TotalInputTokens))
	sb.WriteString(fmt.Sprintf("Output tokens:  %d\n", stats.TotalOutputTokens))
	sb.WriteString(fmt.Sprintf("Total cost:     $%.6f\n", stats.TotalCostUSD))
	sb.WriteString(fmt.Sprintf("Session hours:  %.2f\n", stats.SessionDurationHours))

	if len(stats.ByPurpose) > 0 {
		sb.WriteString("\nBy purpose:\n")
		shown := 0
		for purpose, b := range stats.ByPurpose {
			if shown == maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(stats.ByPurpose)-shown))
				break
			}
			sb.WriteString(fmt.Sprintf("  %s: %d calls, $%.6f\n", purpose, b.Calls, b.CostUSD))
			shown++
		}
	}

	p.printBox("MODEL USAGE", strings.TrimSuffix(sb.String(), "\n"))
}
