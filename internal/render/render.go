// Package render turns a resolved slide plan plus layout recommendations
// into a reviewable document outline.
package render

import (
	"github.com/IamPrat15/im-creator/internal/catalog"
	"github.com/IamPrat15/im-creator/internal/types"
)

// Context carries everything a renderer needs for one document.
type Context struct {
	Plan            types.SlidePlan
	Record          *types.InputRecord
	Recommendations map[types.SlideID]types.LayoutRecommendation
	Theme           string
	Config          catalog.DocumentTypeConfig
	Industry        catalog.Industry
	Buyer           catalog.BuyerContent
}

// NewContext assembles a render context, resolving the record's industry
// vertical and target buyer type against the content catalog.
func NewContext(plan types.SlidePlan, record *types.InputRecord, recs map[types.SlideID]types.LayoutRecommendation, theme string) Context {
	buyerType := ""
	if buyers := record.StringList("targetBuyerTypes"); len(buyers) > 0 {
		buyerType = buyers[0]
	}
	return Context{
		Plan:            plan,
		Record:          record,
		Recommendations: recs,
		Theme:           theme,
		Config:          catalog.DocumentConfig(plan.DocumentType),
		Industry:        catalog.IndustryFor(record.String("industry")),
		Buyer:           catalog.BuyerFor(buyerType),
	}
}

// Renderer produces one output format from a render context.
type Renderer interface {
	Render(ctx Context) (string, error)
}
