package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IamPrat15/im-creator/internal/types"
)

func testContext() Context {
	record := types.NewInputRecord(map[string]any{
		"companyName":  "Acme Services",
		"tagline":      "Managed IT at scale",
		"serviceLines": "Managed IT\nCloud Migration",
		"revenueFY23":  "80",
		"revenueFY25":  "125",
		"ebitdaMargin": "22%",
		"caseStudies": []any{
			map[string]any{"client": "Globex", "challenge": "legacy stack", "results": "40% cost cut"},
			map[string]any{"client": "Initech", "challenge": "compliance gap"},
		},
	})

	return Context{
		Plan: types.SlidePlan{
			DocumentType: "teaser",
			Entries: []types.SlideEntry{
				{ID: types.SlideTitle, Repeat: 1},
				{ID: types.SlideServices, Repeat: 1},
				{ID: types.SlideFinancials, Repeat: 1},
				{ID: types.SlideCaseStudy, Repeat: 2},
				{ID: types.SlideThankYou, Repeat: 1},
			},
		},
		Record: record,
		Recommendations: map[types.SlideID]types.LayoutRecommendation{
			types.SlideServices: {
				ChartType:       types.ChartDonut,
				Layout:          types.LayoutTwoColumn,
				FontAdjustment:  -1,
				ContentDensity:  types.DensityMedium,
				PrimaryEmphasis: types.EmphasisMixed,
			},
		},
		Theme: "midnight",
	}
}

func TestOutline_RendersEveryPhysicalSlide(t *testing.T) {
	out, err := Outline{}.Render(testContext())
	require.NoError(t, err)

	assert.Contains(t, out, "Acme Services — teaser")
	assert.Contains(t, out, "Theme: midnight")
	assert.Contains(t, out, "Slides: 6")
	assert.Contains(t, out, "[1] title")
	assert.Contains(t, out, "[4] case-study")
	assert.Contains(t, out, "[5] case-study")
	assert.Contains(t, out, "[6] thank-you")
}

func TestOutline_AppliesFontAdjustment(t *testing.T) {
	out, err := Outline{}.Render(testContext())
	require.NoError(t, err)

	assert.Contains(t, out, "layout=two-column chart=donut density=medium font=13pt")
}

func TestOutline_CaseStudyFanOutUsesDistinctStudies(t *testing.T) {
	out, err := Outline{}.Render(testContext())
	require.NoError(t, err)

	assert.Contains(t, out, "Globex")
	assert.Contains(t, out, "Initech")
	assert.Contains(t, out, "40% cost cut")
}

func TestOutline_FinancialSummary(t *testing.T) {
	out, err := Outline{}.Render(testContext())
	require.NoError(t, err)

	assert.Contains(t, out, "FY23")
	assert.Contains(t, out, "FY25")
	assert.Contains(t, out, "CAGR: 25%")
	assert.Contains(t, out, "EBITDA margin: 22%")
}

func TestNewContext_ResolvesIndustryAndBuyer(t *testing.T) {
	record := types.NewInputRecord(map[string]any{
		"industry":        "healthcare",
		"targetBuyerTypes": []any{"financial", "strategic"},
	})

	ctx := NewContext(types.SlidePlan{DocumentType: "cim"}, record, nil, "")

	assert.Equal(t, "cim", ctx.Config.Key)
	assert.Equal(t, "healthcare", ctx.Industry.Key)
	assert.Equal(t, "financial", ctx.Buyer.Key)
}

func TestNewContext_DefaultsUnknownIndustryAndBuyer(t *testing.T) {
	ctx := NewContext(types.SlidePlan{}, types.NewInputRecord(nil), nil, "")

	assert.Equal(t, "technology", ctx.Industry.Key)
	assert.Equal(t, "strategic", ctx.Buyer.Key)
}

func TestOutline_IndustrySlideUsesVerticalContent(t *testing.T) {
	record := types.NewInputRecord(map[string]any{
		"companyName": "Acme Services",
		"industry":    "bfsi",
	})
	plan := types.SlidePlan{
		DocumentType: "cim",
		Entries:      []types.SlideEntry{{ID: types.SlideIndustry, Repeat: 1}},
	}

	out, err := Outline{}.Render(NewContext(plan, record, nil, ""))
	require.NoError(t, err)

	assert.Contains(t, out, "Banking, Financial Services & Insurance")
	assert.Contains(t, out, "Market size: $150B+ globally")
	assert.Contains(t, out, "Digital Banking")
}

func TestOutline_SynergiesIncludeBuyerEmphasis(t *testing.T) {
	record := types.NewInputRecord(map[string]any{
		"strategicSynergies": "Cross-sell into installed base",
		"targetBuyerTypes":   "financial",
	})
	plan := types.SlidePlan{
		DocumentType: "cim",
		Entries:      []types.SlideEntry{{ID: types.SlideSynergies, Repeat: 1}},
	}

	out, err := Outline{}.Render(NewContext(plan, record, nil, ""))
	require.NoError(t, err)

	assert.Contains(t, out, "Cross-sell into installed base")
	assert.Contains(t, out, "Emphasis: EBITDA growth, Cash conversion, IRR potential")
}

func TestOutline_EmptyRecord(t *testing.T) {
	ctx := Context{
		Plan: types.SlidePlan{
			DocumentType: "teaser",
			Entries:      []types.SlideEntry{{ID: types.SlideTitle, Repeat: 1}},
		},
		Record: types.NewInputRecord(nil),
	}

	out, err := Outline{}.Render(ctx)
	require.NoError(t, err)
	assert.Contains(t, out, "Untitled Company")
}
