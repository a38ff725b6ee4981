package types

// SlideID identifies a slide's semantic role within a document.
type SlideID string

// Slide tokens known to the document catalog and the plan resolver.
const (
	SlideTitle                SlideID = "title"
	SlideDisclaimer           SlideID = "disclaimer"
	SlideTOC                  SlideID = "toc"
	SlideExecutiveSummary     SlideID = "executive-summary"
	SlideInvestmentHighlights SlideID = "investment-highlights"
	SlideCompanyOverview      SlideID = "company-overview"
	SlideLeadership           SlideID = "leadership"
	SlideIndustry             SlideID = "industry"
	SlideServices             SlideID = "services"
	SlideClients              SlideID = "clients"
	SlideCaseStudies          SlideID = "case-studies"
	SlideCaseStudy            SlideID = "case-study"
	SlideFinancials           SlideID = "financials"
	SlideFinancialDetail      SlideID = "financial-detail"
	SlideGrowth               SlideID = "growth"
	SlideMarketPosition       SlideID = "market-position"
	SlideSynergies            SlideID = "synergies"
	SlideRisks                SlideID = "risks"
	SlideTeamBios             SlideID = "team-bios"
	SlideAppendixFinancials   SlideID = "appendix-financials"
	SlideAppendixCaseStudies  SlideID = "appendix-case-studies"
	SlideAppendixTeamBios     SlideID = "appendix-team-bios"
	SlideThankYou             SlideID = "thank-you"
)

// SlideEntry is one logical entry in a slide plan. Repeat is the number of
// physical slides the entry expands into; it is 1 for everything except the
// case-study fan-out.
type SlideEntry struct {
	ID     SlideID `json:"id"`
	Repeat int     `json:"repeat"`
}

// SlidePlan is the ordered sequence of logical slide entries for one
// document. The terminal thank-you entry is always present exactly once,
// as the last element.
type SlidePlan struct {
	DocumentType string       `json:"document_type"`
	Entries      []SlideEntry `json:"entries"`
}

// Contains reports whether the plan includes the given slide.
func (p *SlidePlan) Contains(id SlideID) bool {
	for _, entry := range p.Entries {
		if entry.ID == id {
			return true
		}
	}
	return false
}

// IDs returns the logical slide identifiers in plan order.
func (p *SlidePlan) IDs() []SlideID {
	ids := make([]SlideID, 0, len(p.Entries))
	for _, entry := range p.Entries {
		ids = append(ids, entry.ID)
	}
	return ids
}

// PhysicalCount returns the number of physical slides after fan-out.
func (p *SlidePlan) PhysicalCount() int {
	count := 0
	for _, entry := range p.Entries {
		if entry.Repeat > 1 {
			count += entry.Repeat
		} else {
			count++
		}
	}
	return count
}
