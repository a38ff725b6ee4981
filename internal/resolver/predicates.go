package resolver

import (
	"strings"

	"github.com/IamPrat15/im-creator/internal/catalog"
	"github.com/IamPrat15/im-creator/internal/types"
)

// optionalPredicates decide whether an optional slide earns its place in a
// plan. Every slide any catalog entry lists as optional must have an entry
// here; ValidateCatalog enforces that at startup.
var optionalPredicates = map[types.SlideID]func(*types.InputRecord, catalog.DocumentTypeConfig) bool{
	types.SlideLeadership: func(r *types.InputRecord, _ catalog.DocumentTypeConfig) bool {
		return r.Has("founderName") || r.Has("leadershipTeam")
	},
	types.SlideCaseStudies: func(r *types.InputRecord, cfg catalog.DocumentTypeConfig) bool {
		return cfg.MaxCaseStudies > 0 && len(r.CaseStudies()) > 0
	},
	types.SlideGrowth: func(r *types.InputRecord, _ catalog.DocumentTypeConfig) bool {
		return r.Has("growthDrivers") || r.Has("shortTermGoals") || r.Has("mediumTermGoals")
	},
	types.SlideSynergies: func(r *types.InputRecord, _ catalog.DocumentTypeConfig) bool {
		return r.Has("strategicSynergies") || r.Has("financialSynergies")
	},
	types.SlideMarketPosition: func(r *types.InputRecord, _ catalog.DocumentTypeConfig) bool {
		return r.Has("marketSize") || r.Has("marketGrowthRate") || r.Has("competitivePositioning")
	},
	types.SlideInvestmentHighlights: func(r *types.InputRecord, _ catalog.DocumentTypeConfig) bool {
		return r.Has("investmentHighlights")
	},
	types.SlideTeamBios: func(r *types.InputRecord, _ catalog.DocumentTypeConfig) bool {
		return r.Has("leadershipTeam")
	},
	types.SlideFinancialDetail: func(r *types.InputRecord, cfg catalog.DocumentTypeConfig) bool {
		return cfg.IncludeFinancialDetail && hasRevenue(r)
	},
}

func includeOptional(id types.SlideID, record *types.InputRecord, cfg catalog.DocumentTypeConfig) bool {
	pred, ok := optionalPredicates[id]
	if !ok {
		return false
	}
	return pred(record, cfg)
}

func hasRevenue(r *types.InputRecord) bool {
	return r.Has("revenueFY23") || r.Has("revenueFY24") || r.Has("revenueFY25")
}

// appendAppendixSlides adds appendix material after the main body. Each
// appendix is strictly opt-in: the record must ask for it and the backing
// data must exist.
func appendAppendixSlides(plan *types.SlidePlan, seen map[types.SlideID]bool, record *types.InputRecord, cfg catalog.DocumentTypeConfig) {
	add := func(id types.SlideID) {
		if seen[id] {
			return
		}
		seen[id] = true
		plan.Entries = append(plan.Entries, types.SlideEntry{ID: id, Repeat: 1})
	}

	if record.Bool("includeAppendixFinancials") && cfg.IncludeFinancialDetail && hasRevenue(record) {
		add(types.SlideAppendixFinancials)
	}
	if record.Bool("includeAppendixCaseStudies") && len(record.CaseStudies()) > cfg.MaxCaseStudies {
		add(types.SlideAppendixCaseStudies)
	}
	if record.Bool("includeAppendixTeamBios") && record.Has("leadershipTeam") {
		add(types.SlideAppendixTeamBios)
	}
}

// appendVariantSlides handles content-variant requests: a record can ask
// for the synergies treatment even when the document type leaves it out.
// The slide still needs backing data; the variant flag alone never earns a
// contentless slide.
func appendVariantSlides(plan *types.SlidePlan, seen map[types.SlideID]bool, record *types.InputRecord) {
	hasSynergyData := record.Has("strategicSynergies") || record.Has("financialSynergies")
	for _, v := range record.StringList("contentVariants") {
		if strings.Contains(strings.ToLower(v), "synergy") && hasSynergyData && !seen[types.SlideSynergies] {
			seen[types.SlideSynergies] = true
			plan.Entries = append(plan.Entries, types.SlideEntry{ID: types.SlideSynergies, Repeat: 1})
		}
	}
}
