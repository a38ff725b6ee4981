// Package resolver turns a document type plus an input record into the
// ordered slide plan for one document.
package resolver

import (
	"strings"

	"github.com/IamPrat15/im-creator/internal/catalog"
	"github.com/IamPrat15/im-creator/internal/types"
)

// slideOrder is the fixed, total ordering of every slide token any document
// type can require or offer optionally. Relative slide order in a plan is
// always a subsequence of this list; the terminal thank-you slide is
// appended separately and never appears here.
var slideOrder = []types.SlideID{
	types.SlideTitle,
	types.SlideDisclaimer,
	types.SlideTOC,
	types.SlideExecutiveSummary,
	types.SlideInvestmentHighlights,
	types.SlideCompanyOverview,
	types.SlideLeadership,
	types.SlideIndustry,
	types.SlideServices,
	types.SlideClients,
	types.SlideCaseStudies,
	types.SlideFinancials,
	types.SlideFinancialDetail,
	types.SlideGrowth,
	types.SlideMarketPosition,
	types.SlideSynergies,
	types.SlideRisks,
	types.SlideTeamBios,
}

// Resolve produces the slide plan for a document type and record. It is
// total: unknown document types fall back to the default type, a degenerate
// catalog entry falls back to a hard-coded minimal plan, and an empty
// record simply fails every optional predicate. The returned plan always
// ends with exactly one thank-you entry.
func Resolve(documentType string, record *types.InputRecord) types.SlidePlan {
	docType := strings.ToLower(strings.TrimSpace(documentType))
	if docType == "" {
		docType = strings.ToLower(record.String("documentType"))
	}
	if !catalog.KnownDocumentType(docType) {
		docType = catalog.DefaultDocumentType
	}

	cfg := catalog.DocumentConfig(docType)
	if len(cfg.RequiredSlides) == 0 {
		return minimalPlan(docType)
	}

	required := slideSet(cfg.RequiredSlides)
	optional := slideSet(cfg.OptionalSlides)

	plan := types.SlidePlan{DocumentType: docType}
	seen := make(map[types.SlideID]bool)
	appendEntry := func(entry types.SlideEntry) {
		if seen[entry.ID] {
			return
		}
		seen[entry.ID] = true
		plan.Entries = append(plan.Entries, entry)
	}

	// Walk the fixed ordering: required slides unconditionally, optional
	// slides through their inclusion predicate.
	for _, id := range slideOrder {
		switch {
		case required[id]:
			appendEntry(planEntry(id, record, cfg))
		case optional[id]:
			if includeOptional(id, record, cfg) {
				appendEntry(planEntry(id, record, cfg))
			}
		}
	}

	// Tokens a config names but the ordering table does not know are
	// appended here so a catalog addition can never drop a slide.
	for _, id := range cfg.RequiredSlides {
		if !seen[id] {
			appendEntry(planEntry(id, record, cfg))
		}
	}

	appendAppendixSlides(&plan, seen, record, cfg)
	appendVariantSlides(&plan, seen, record)

	// Terminal slide, always last and exactly once.
	plan.Entries = append(plan.Entries, types.SlideEntry{ID: types.SlideThankYou, Repeat: 1})
	return plan
}

// planEntry builds the plan entry for a slide token. The case-studies
// token is the only one that fans out: a single logical entry carrying the
// number of physical slides to render, capped by the document type.
func planEntry(id types.SlideID, record *types.InputRecord, cfg catalog.DocumentTypeConfig) types.SlideEntry {
	if id == types.SlideCaseStudies {
		repeat := len(record.CaseStudies())
		if repeat > cfg.MaxCaseStudies {
			repeat = cfg.MaxCaseStudies
		}
		if repeat < 1 {
			repeat = 1
		}
		return types.SlideEntry{ID: types.SlideCaseStudy, Repeat: repeat}
	}
	return types.SlideEntry{ID: id, Repeat: 1}
}

// minimalPlan is the degraded fallback when catalog data is unusable.
func minimalPlan(docType string) types.SlidePlan {
	return types.SlidePlan{
		DocumentType: docType,
		Entries: []types.SlideEntry{
			{ID: types.SlideTitle, Repeat: 1},
			{ID: types.SlideDisclaimer, Repeat: 1},
			{ID: types.SlideExecutiveSummary, Repeat: 1},
			{ID: types.SlideServices, Repeat: 1},
			{ID: types.SlideClients, Repeat: 1},
			{ID: types.SlideFinancials, Repeat: 1},
			{ID: types.SlideThankYou, Repeat: 1},
		},
	}
}

func slideSet(ids []types.SlideID) map[types.SlideID]bool {
	set := make(map[types.SlideID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
