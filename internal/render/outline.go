package render

import (
	"fmt"
	"strings"

	"github.com/IamPrat15/im-creator/internal/catalog"
	"github.com/IamPrat15/im-creator/internal/fields"
	"github.com/IamPrat15/im-creator/internal/types"
)

// bodyFontBase is the slide body point size before any layout adjustment.
const bodyFontBase = 14

// Outline renders a plain-text document outline: one section per physical
// slide with the chosen treatment and the key content lines. It is the
// review surface before a deck renderer consumes the same Context.
type Outline struct{}

// Render implements Renderer. It never fails for a well-formed context;
// missing data renders as placeholders rather than errors.
func (Outline) Render(ctx Context) (string, error) {
	var sb strings.Builder

	company := ctx.Record.String("companyName")
	if company == "" {
		company = "Untitled Company"
	}
	docName := ctx.Config.Name
	if docName == "" {
		docName = ctx.Plan.DocumentType
	}
	sb.WriteString(fmt.Sprintf("%s — %s\n", company, docName))
	if ctx.Theme != "" {
		sb.WriteString(fmt.Sprintf("Theme: %s\n", ctx.Theme))
	}
	sb.WriteString(fmt.Sprintf("Slides: %d\n", ctx.Plan.PhysicalCount()))
	sb.WriteString(strings.Repeat("=", 40) + "\n")

	slideNo := 0
	for _, entry := range ctx.Plan.Entries {
		repeat := entry.Repeat
		if repeat < 1 {
			repeat = 1
		}
		for i := 0; i < repeat; i++ {
			slideNo++
			writeSlide(&sb, slideNo, entry.ID, i, ctx)
		}
	}

	return sb.String(), nil
}

func writeSlide(sb *strings.Builder, number int, id types.SlideID, index int, ctx Context) {
	sb.WriteString(fmt.Sprintf("\n[%d] %s\n", number, id))

	if rec, ok := ctx.Recommendations[id]; ok {
		sb.WriteString(fmt.Sprintf("    layout=%s chart=%s density=%s font=%dpt\n",
			rec.Layout, rec.ChartType, rec.ContentDensity,
			fields.AdjustedFont(bodyFontBase, rec.FontAdjustment)))
	}

	for _, line := range slideContent(id, index, ctx) {
		sb.WriteString("    " + line + "\n")
	}
}

// slideContent picks the few lines worth surfacing per slide type. The
// index distinguishes fanned-out case-study slides.
func slideContent(id types.SlideID, index int, ctx Context) []string {
	record := ctx.Record
	switch id {
	case types.SlideTitle:
		return compact(
			record.String("tagline"),
			fields.FormatDate(record.String("documentDate")),
		)
	case types.SlideExecutiveSummary:
		return compact(fields.TruncateDescription(record.String("companyOverview"), 160))
	case types.SlideInvestmentHighlights:
		return fields.ParseLines(record.String("investmentHighlights"), 8)
	case types.SlideServices:
		return fields.ParseLines(record.String("serviceLines"), 8)
	case types.SlideClients:
		return fields.ParseLines(record.String("clients"), 12)
	case types.SlideFinancials:
		return financialLines(record)
	case types.SlideCaseStudy:
		return caseStudyLines(record, index)
	case types.SlideGrowth:
		return compact(
			record.String("growthDrivers"),
			record.String("shortTermGoals"),
			record.String("mediumTermGoals"),
		)
	case types.SlideLeadership:
		return compact(record.String("founderName"), record.String("founderTitle"))
	case types.SlideIndustry:
		return industryLines(ctx.Industry)
	case types.SlideSynergies:
		lines := compact(record.String("strategicSynergies"), record.String("financialSynergies"))
		if len(ctx.Buyer.FinancialEmphasis) > 0 {
			lines = append(lines, "Emphasis: "+strings.Join(ctx.Buyer.FinancialEmphasis, ", "))
		}
		return lines
	case types.SlideMarketPosition:
		return compact(record.String("marketSize"), record.String("competitivePositioning"))
	case types.SlideThankYou:
		return compact(record.String("contactEmail"), record.String("websiteUrl"))
	default:
		return nil
	}
}

func industryLines(industry catalog.Industry) []string {
	lines := []string{industry.FullName}
	if size, ok := industry.Benchmarks["market_size"]; ok {
		lines = append(lines, "Market size: "+size)
	}
	if len(industry.KeyDrivers) > 0 {
		lines = append(lines, "Drivers: "+strings.Join(industry.KeyDrivers, ", "))
	}
	return lines
}

func financialLines(record *types.InputRecord) []string {
	currency := record.String("revenueCurrency")
	var lines []string
	for _, key := range []string{"revenueFY23", "revenueFY24", "revenueFY25"} {
		if record.Has(key) {
			lines = append(lines, fmt.Sprintf("%s: %s",
				strings.TrimPrefix(key, "revenue"),
				fields.FormatCurrency(record.String(key), currency)))
		}
	}

	start, okStart := fields.Number(record.String("revenueFY23"))
	end, okEnd := fields.Number(record.String("revenueFY25"))
	if okStart && okEnd {
		if cagr, ok := fields.CAGR(start, end, 2); ok {
			lines = append(lines, fmt.Sprintf("CAGR: %d%%", cagr))
		}
	}
	if record.Has("ebitdaMargin") {
		lines = append(lines, "EBITDA margin: "+record.String("ebitdaMargin"))
	}
	return lines
}

func caseStudyLines(record *types.InputRecord, index int) []string {
	studies := record.CaseStudies()
	if index >= len(studies) {
		return nil
	}
	study := studies[index]
	return compact(
		study.Client,
		fields.Truncate(study.Challenge, 80, true),
		fields.Truncate(study.Solution, 80, true),
		study.Results,
	)
}

func compact(lines ...string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}
