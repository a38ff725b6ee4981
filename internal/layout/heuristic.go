package layout

import "github.com/IamPrat15/im-creator/internal/types"

// Heuristic is the deterministic, zero-cost strategy. It is the fallback
// for every other strategy, so it must succeed for any slide and preview.
type Heuristic struct{}

// Recommend returns the default treatment for a slide, adjusted by item
// counts. Dense slides trade a font step for a higher density rating.
func (Heuristic) Recommend(slideID types.SlideID, preview Preview) types.LayoutRecommendation {
	switch slideID {
	case types.SlideExecutiveSummary:
		return types.LayoutRecommendation{
			ChartType:       types.ChartBar,
			Layout:          types.LayoutTwoColumn,
			ContentDensity:  types.DensityMedium,
			PrimaryEmphasis: types.EmphasisMixed,
		}
	case types.SlideInvestmentHighlights:
		rec := types.LayoutRecommendation{
			ChartType:       types.ChartNone,
			Layout:          types.LayoutGrid2x2,
			ContentDensity:  types.DensityMedium,
			PrimaryEmphasis: types.EmphasisText,
		}
		if preview.HighlightCount > 6 {
			rec.FontAdjustment = -1
			rec.ContentDensity = types.DensityHigh
		}
		return rec
	case types.SlideServices:
		chart := types.ChartDonut
		if preview.ServiceCount > 4 {
			chart = types.ChartPie
		}
		return types.LayoutRecommendation{
			ChartType:       chart,
			Layout:          types.LayoutTwoColumn,
			ContentDensity:  types.DensityMedium,
			PrimaryEmphasis: types.EmphasisMixed,
		}
	case types.SlideClients:
		rec := types.LayoutRecommendation{
			ChartType:       types.ChartDonut,
			Layout:          types.LayoutTwoColumnWideRight,
			ContentDensity:  types.DensityMedium,
			PrimaryEmphasis: types.EmphasisMixed,
		}
		if preview.ClientCount > 9 {
			rec.FontAdjustment = -1
			rec.ContentDensity = types.DensityHigh
		}
		return rec
	case types.SlideFinancials:
		return types.LayoutRecommendation{
			ChartType:       types.ChartBar,
			Layout:          types.LayoutTwoColumn,
			ContentDensity:  types.DensityMedium,
			PrimaryEmphasis: types.EmphasisChart,
		}
	case types.SlideCaseStudy:
		return types.LayoutRecommendation{
			ChartType:       types.ChartNone,
			Layout:          types.LayoutFullWidth,
			ContentDensity:  types.DensityMedium,
			PrimaryEmphasis: types.EmphasisText,
		}
	case types.SlideGrowth:
		return types.LayoutRecommendation{
			ChartType:       types.ChartTimeline,
			Layout:          types.LayoutTwoColumn,
			ContentDensity:  types.DensityMedium,
			PrimaryEmphasis: types.EmphasisMixed,
		}
	case types.SlideMarketPosition:
		return types.LayoutRecommendation{
			ChartType:       types.ChartBar,
			Layout:          types.LayoutTwoColumn,
			ContentDensity:  types.DensityMedium,
			PrimaryEmphasis: types.EmphasisMixed,
		}
	case types.SlideSynergies:
		return types.LayoutRecommendation{
			ChartType:       types.ChartNone,
			Layout:          types.LayoutTwoColumn,
			ContentDensity:  types.DensityMedium,
			PrimaryEmphasis: types.EmphasisText,
		}
	default:
		return types.LayoutRecommendation{
			ChartType:       types.ChartNone,
			Layout:          types.LayoutTwoColumn,
			ContentDensity:  types.DensityMedium,
			PrimaryEmphasis: types.EmphasisText,
		}
	}
}
