// Package statediff computes which slides are impacted by changes between
// two snapshots of an input record.
package statediff

import (
	"encoding/json"
	"sort"

	"github.com/IamPrat15/im-creator/internal/types"
)

// allSlides is the sentinel dependency marking fields whose change
// invalidates the whole document rather than individual slides.
const allSlides = "ALL"

// fieldDependencies maps canonical field names to the slides that render
// them. Fields absent from this map fall back to a conservative
// full-document impact.
var fieldDependencies = map[string][]types.SlideID{
	"documentType": {allSlides},
	"theme":        {allSlides},

	"companyName":    {types.SlideTitle, types.SlideExecutiveSummary, types.SlideThankYou},
	"tagline":        {types.SlideTitle},
	"documentDate":   {types.SlideTitle, types.SlideDisclaimer},
	"preparedBy":     {types.SlideTitle, types.SlideDisclaimer},
	"websiteUrl":     {types.SlideTitle, types.SlideThankYou},
	"contactEmail":   {types.SlideThankYou},
	"contactPhone":   {types.SlideThankYou},
	"contactAddress": {types.SlideThankYou},

	"foundedYear":     {types.SlideExecutiveSummary, types.SlideCompanyOverview},
	"headquarters":    {types.SlideExecutiveSummary, types.SlideCompanyOverview},
	"employeeCount":   {types.SlideExecutiveSummary, types.SlideCompanyOverview},
	"companyOverview": {types.SlideExecutiveSummary, types.SlideCompanyOverview},
	"businessModel":   {types.SlideCompanyOverview},
	"industry":        {types.SlideExecutiveSummary, types.SlideIndustry},

	"founderName":    {types.SlideLeadership},
	"founderTitle":   {types.SlideLeadership},
	"founderBio":     {types.SlideLeadership},
	"leadershipTeam": {types.SlideLeadership, types.SlideTeamBios, types.SlideAppendixTeamBios},

	"services":          {types.SlideServices, types.SlideExecutiveSummary},
	"serviceLines":      {types.SlideServices},
	"serviceRevenueMix": {types.SlideServices, types.SlideFinancials},

	"clients":             {types.SlideClients},
	"clientCount":         {types.SlideClients, types.SlideExecutiveSummary},
	"clientRetentionRate": {types.SlideClients, types.SlideInvestmentHighlights},
	"keyVerticals":        {types.SlideClients, types.SlideMarketPosition},
	"partners":            {types.SlideClients},

	"revenueFY23":     {types.SlideFinancials, types.SlideFinancialDetail, types.SlideAppendixFinancials},
	"revenueFY24":     {types.SlideFinancials, types.SlideFinancialDetail, types.SlideAppendixFinancials},
	"revenueFY25":     {types.SlideFinancials, types.SlideExecutiveSummary, types.SlideFinancialDetail, types.SlideAppendixFinancials},
	"revenueCurrency": {types.SlideFinancials, types.SlideFinancialDetail, types.SlideAppendixFinancials},
	"ebitdaMargin":    {types.SlideFinancials, types.SlideInvestmentHighlights, types.SlideFinancialDetail},
	"grossMargin":     {types.SlideFinancials, types.SlideFinancialDetail},
	"recurringRevenuePercent": {
		types.SlideFinancials, types.SlideInvestmentHighlights,
	},

	"investmentHighlights": {types.SlideInvestmentHighlights, types.SlideExecutiveSummary},
	"targetBuyerTypes":     {types.SlideSynergies, types.SlideInvestmentHighlights, types.SlideExecutiveSummary},

	"growthDrivers":   {types.SlideGrowth},
	"shortTermGoals":  {types.SlideGrowth},
	"mediumTermGoals": {types.SlideGrowth},

	"marketSize":              {types.SlideMarketPosition, types.SlideIndustry},
	"marketGrowthRate":        {types.SlideMarketPosition, types.SlideIndustry},
	"competitivePositioning":  {types.SlideMarketPosition},
	"strategicSynergies":      {types.SlideSynergies},
	"financialSynergies":      {types.SlideSynergies},
	"riskFactors":             {types.SlideRisks},
	"riskMitigations":         {types.SlideRisks},
	"caseStudies":             {types.SlideCaseStudy, types.SlideAppendixCaseStudies},
	"cs1Client":               {types.SlideCaseStudy},
	"cs1Industry":             {types.SlideCaseStudy},
	"cs1Challenge":            {types.SlideCaseStudy},
	"cs1Solution":             {types.SlideCaseStudy},
	"cs1Results":              {types.SlideCaseStudy},
	"cs2Client":               {types.SlideCaseStudy},
	"cs2Industry":             {types.SlideCaseStudy},
	"cs2Challenge":            {types.SlideCaseStudy},
	"cs2Solution":             {types.SlideCaseStudy},
	"cs2Results":              {types.SlideCaseStudy},
	"disclaimerText":          {types.SlideDisclaimer},
	"confidentialityNotice":   {types.SlideDisclaimer},
	"includeAppendixTeamBios": {types.SlideAppendixTeamBios},
	"includeAppendixFinancials": {
		types.SlideAppendixFinancials,
	},
	"includeAppendixCaseStudies": {types.SlideAppendixCaseStudies},
	"contentVariants":            {allSlides},
}

// Impact is the set of slides invalidated by a record change. When All is
// set the slide list is empty and the whole document must be rebuilt.
type Impact struct {
	All    bool
	Slides []types.SlideID
}

// Empty reports whether the change touches nothing.
func (i Impact) Empty() bool {
	return !i.All && len(i.Slides) == 0
}

// Diff returns the canonical field names whose values differ between two
// record snapshots, sorted. Fields present in only one snapshot count as
// changed; composite values are compared by stable serialization.
func Diff(previous, current *types.InputRecord) []string {
	seen := make(map[string]bool)
	var changed []string

	check := func(key string) {
		if seen[key] {
			return
		}
		seen[key] = true
		if !equalValues(previous.Get(key), current.Get(key)) {
			changed = append(changed, key)
		}
	}

	for _, key := range previous.Keys() {
		check(key)
	}
	for _, key := range current.Keys() {
		check(key)
	}

	sort.Strings(changed)
	return changed
}

// Affected maps changed field names to their slide impact. Unmapped fields
// degrade to a full-document rebuild rather than a silently stale deck.
func Affected(changedFields []string) Impact {
	slides := make(map[types.SlideID]bool)
	for _, field := range changedFields {
		deps, ok := fieldDependencies[field]
		if !ok {
			return Impact{All: true}
		}
		for _, dep := range deps {
			if dep == allSlides {
				return Impact{All: true}
			}
			slides[dep] = true
		}
	}

	if len(slides) == 0 {
		return Impact{}
	}
	out := make([]types.SlideID, 0, len(slides))
	for id := range slides {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return Impact{Slides: out}
}

// ImpactOf is the composed convenience: diff two snapshots and map the
// result onto slides in one call.
func ImpactOf(previous, current *types.InputRecord) Impact {
	return Affected(Diff(previous, current))
}

// equalValues compares two raw field values. Scalars compare directly;
// lists and maps compare by their JSON form, which is stable because map
// keys serialize sorted.
func equalValues(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	aj, aerr := json.Marshal(a)
	bj, berr := json.Marshal(b)
	if aerr != nil || berr != nil {
		return false
	}
	return string(aj) == string(bj)
}
