package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/IamPrat15/im-creator/internal/statediff"
	"github.com/IamPrat15/im-creator/internal/types"
)

func TestPrintPlan(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	plan := types.SlidePlan{
		DocumentType: "teaser",
		Entries: []types.SlideEntry{
			{ID: types.SlideTitle, Repeat: 1},
			{ID: types.SlideCaseStudy, Repeat: 2},
			{ID: types.SlideThankYou, Repeat: 1},
		},
	}

	p.PrintPlan(plan)
	output := buf.String()

	assert.Contains(t, output, "SLIDE PLAN")
	assert.Contains(t, output, "teaser")
	assert.Contains(t, output, "case-study ×2")
	assert.Contains(t, output, "thank-you")
}

func TestPrintPlan_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPlan(types.SlidePlan{})

	assert.Empty(t, buf.String())
}

func TestPrintRecommendation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecommendation(types.SlideClients, types.LayoutRecommendation{
		ChartType:       types.ChartDonut,
		Layout:          types.LayoutTwoColumnWideRight,
		FontAdjustment:  -1,
		ContentDensity:  types.DensityHigh,
		PrimaryEmphasis: types.EmphasisMixed,
		Recommendations: []string{"group minor clients"},
	})
	output := buf.String()

	assert.Contains(t, output, "LAYOUT: CLIENTS")
	assert.Contains(t, output, "donut")
	assert.Contains(t, output, "-1")
	assert.Contains(t, output, "group minor clients")
}

func TestPrintImpact_NoChanges(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintImpact(nil, statediff.Impact{})

	assert.Contains(t, buf.String(), "NO SLIDES AFFECTED")
}

func TestPrintImpact_SlideList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintImpact([]string{"revenueFY25"}, statediff.Impact{
		Slides: []types.SlideID{types.SlideFinancials, types.SlideExecutiveSummary},
	})
	output := buf.String()

	assert.Contains(t, output, "CHANGE IMPACT")
	assert.Contains(t, output, "revenueFY25")
	assert.Contains(t, output, "financials")
}

func TestPrintImpact_FullRebuild(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintImpact([]string{"documentType"}, statediff.Impact{All: true})

	assert.Contains(t, buf.String(), "Full document rebuild")
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintUsage(types.UsageStats{
		TotalCalls:        3,
		TotalInputTokens:  900,
		TotalOutputTokens: 240,
		TotalCostUSD:      0.00087,
		ByPurpose: map[string]types.UsageBreakdown{
			"analyze_layout_services": {Calls: 3, Tokens: 1140, CostUSD: 0.00087},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "MODEL USAGE")
	assert.Contains(t, output, "900")
	assert.Contains(t, output, "analyze_layout_services")
}
