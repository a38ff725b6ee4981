// Package layout recommends per-slide visual treatments from the shape of
// the underlying data: chart type, column layout, density and emphasis.
package layout

import (
	"encoding/json"

	"github.com/IamPrat15/im-creator/internal/fields"
	"github.com/IamPrat15/im-creator/internal/types"
)

// Preview is the compact data-shape summary a strategy reasons over.
// It deliberately carries counts and presence flags, never field values,
// so the model prompt stays small and free of client data.
type Preview struct {
	HasRevenue        bool  `json:"has_revenue"`
	RevenueYears      int   `json:"revenue_years"`
	ServiceCount      int   `json:"service_count"`
	ClientCount       int   `json:"client_count"`
	HasDescription    bool  `json:"has_description"`
	DescriptionLength int   `json:"description_length"`
	HighlightCount    int   `json:"highlight_count"`
	HasMargins        bool  `json:"has_margins"`
	CaseStudyCount    int   `json:"case_study_count"`
	HasFounder        *bool `json:"has_founder,omitempty"`
	HasEmployees      *bool `json:"has_employees,omitempty"`
	HasProducts       *bool `json:"has_products,omitempty"`
	HasVerticals      *bool `json:"has_verticals,omitempty"`
	HasPartners       *bool `json:"has_partners,omitempty"`
	HasServiceRevenue *bool `json:"has_service_revenue,omitempty"`
	HasDrivers        *bool `json:"has_drivers,omitempty"`
	HasGoals          *bool `json:"has_goals,omitempty"`
}

// BuildPreview derives the shape signals for one slide. The base signals
// are shared; a handful of slides add their own presence flags.
func BuildPreview(record *types.InputRecord, slideID types.SlideID) Preview {
	revenueYears := 0
	for _, key := range []string{"revenueFY23", "revenueFY24", "revenueFY25"} {
		if record.Has(key) {
			revenueYears++
		}
	}

	description := record.String("companyOverview")
	p := Preview{
		HasRevenue:        record.Has("revenueFY24") || record.Has("revenueFY25"),
		RevenueYears:      revenueYears,
		ServiceCount:      fields.CountLines(record.String("serviceLines")),
		ClientCount:       fields.CountLines(record.String("clients")),
		HasDescription:    len(description) > 50,
		DescriptionLength: len(description),
		HighlightCount:    fields.CountLines(record.String("investmentHighlights")),
		HasMargins:        record.Has("ebitdaMargin") || record.Has("grossMargin"),
		CaseStudyCount:    len(record.CaseStudies()),
	}

	switch slideID {
	case types.SlideExecutiveSummary:
		p.HasFounder = boolPtr(record.Has("founderName"))
		p.HasEmployees = boolPtr(record.Has("employeeCount"))
	case types.SlideServices:
		p.HasProducts = boolPtr(record.Has("products"))
	case types.SlideClients:
		p.HasVerticals = boolPtr(record.Has("keyVerticals"))
		p.HasPartners = boolPtr(record.Has("partners"))
	case types.SlideFinancials:
		p.HasServiceRevenue = boolPtr(record.Has("serviceRevenueMix"))
	case types.SlideGrowth:
		p.HasDrivers = boolPtr(record.Has("growthDrivers"))
		p.HasGoals = boolPtr(record.Has("shortTermGoals") || record.Has("mediumTermGoals"))
	}

	return p
}

// JSON renders the preview as indented JSON for prompt embedding.
func (p Preview) JSON() string {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}

func boolPtr(v bool) *bool {
	return &v
}
