package layout

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IamPrat15/im-creator/internal/types"
)

func TestBuildPreview_BaseSignals(t *testing.T) {
	record := types.NewInputRecord(map[string]any{
		"revenueFY24":          "90",
		"revenueFY25":          "120",
		"serviceLines":         "Managed IT\nCloud Migration\nSecurity",
		"clients":              "Acme\nGlobex",
		"companyOverview":      "A managed services firm serving mid-market clients across three continents.",
		"investmentHighlights": "Sticky revenue\nLow churn",
		"ebitdaMargin":         "22%",
	})

	p := BuildPreview(record, types.SlideFinancials)

	assert.True(t, p.HasRevenue)
	assert.Equal(t, 2, p.RevenueYears)
	assert.Equal(t, 3, p.ServiceCount)
	assert.Equal(t, 2, p.ClientCount)
	assert.True(t, p.HasDescription)
	assert.Equal(t, 2, p.HighlightCount)
	assert.True(t, p.HasMargins)
	assert.Zero(t, p.CaseStudyCount)
}

func TestBuildPreview_EmptyRecord(t *testing.T) {
	p := BuildPreview(types.NewInputRecord(nil), types.SlideServices)

	assert.False(t, p.HasRevenue)
	assert.Zero(t, p.ServiceCount)
	assert.False(t, p.HasDescription)
	require.NotNil(t, p.HasProducts)
	assert.False(t, *p.HasProducts)
}

func TestBuildPreview_SlideSpecificSignals(t *testing.T) {
	record := types.NewInputRecord(map[string]any{
		"founderName":    "A. Rao",
		"growthDrivers":  "cloud demand",
		"shortTermGoals": "expand EU",
	})

	exec := BuildPreview(record, types.SlideExecutiveSummary)
	require.NotNil(t, exec.HasFounder)
	assert.True(t, *exec.HasFounder)
	assert.Nil(t, exec.HasDrivers)

	growth := BuildPreview(record, types.SlideGrowth)
	require.NotNil(t, growth.HasDrivers)
	assert.True(t, *growth.HasDrivers)
	require.NotNil(t, growth.HasGoals)
	assert.True(t, *growth.HasGoals)
	assert.Nil(t, growth.HasFounder)
}

func TestPreviewJSON_OmitsIrrelevantSignals(t *testing.T) {
	out := BuildPreview(types.NewInputRecord(nil), types.SlideFinancials).JSON()

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Contains(t, decoded, "has_revenue")
	assert.Contains(t, decoded, "has_service_revenue")
	assert.NotContains(t, decoded, "has_founder")
}
