package types

import (
	"github.com/go-playground/validator/v10"
)

// ChartType is the visual treatment recommended for a slide's data.
type ChartType string

// Chart types understood by the rendering collaborator.
const (
	ChartBar        ChartType = "bar"
	ChartPie        ChartType = "pie"
	ChartDonut      ChartType = "donut"
	ChartProgress   ChartType = "progress"
	ChartTimeline   ChartType = "timeline"
	ChartStackedBar ChartType = "stacked-bar"
	ChartLine       ChartType = "line"
	ChartNone       ChartType = "none"
)

// LayoutVariant is the column arrangement for a slide.
type LayoutVariant string

// Layout variants understood by the rendering collaborator.
const (
	LayoutFullWidth          LayoutVariant = "full-width"
	LayoutTwoColumn          LayoutVariant = "two-column"
	LayoutTwoColumnWideLeft  LayoutVariant = "two-column-wide-left"
	LayoutTwoColumnWideRight LayoutVariant = "two-column-wide-right"
	LayoutGrid2x2            LayoutVariant = "grid-2x2"
	LayoutGrid2x3            LayoutVariant = "grid-2x3"
)

// ContentDensity describes how much content a slide carries.
type ContentDensity string

// Content density levels.
const (
	DensityLow    ContentDensity = "low"
	DensityMedium ContentDensity = "medium"
	DensityHigh   ContentDensity = "high"
)

// Emphasis names the element a slide should lead with.
type Emphasis string

// Emphasis values.
const (
	EmphasisMetrics Emphasis = "metrics"
	EmphasisChart   Emphasis = "chart"
	EmphasisText    Emphasis = "text"
	EmphasisMixed   Emphasis = "mixed"
)

// LayoutRecommendation is the structured rendering hint produced per
// (record, slide) pair. Immutable after creation; safe to cache for the
// duration of one generation run.
type LayoutRecommendation struct {
	ChartType       ChartType      `json:"chart_type" validate:"oneof=bar pie donut progress timeline stacked-bar line none"`
	Layout          LayoutVariant  `json:"layout" validate:"oneof=full-width two-column two-column-wide-left two-column-wide-right grid-2x2 grid-2x3"`
	FontAdjustment  int            `json:"font_adjustment" validate:"gte=-4,lte=1"`
	ContentDensity  ContentDensity `json:"content_density" validate:"oneof=low medium high"`
	PrimaryEmphasis Emphasis       `json:"primary_emphasis" validate:"oneof=metrics chart text mixed"`
	Recommendations []string       `json:"recommendations,omitempty"`
}

var layoutValidator = validator.New()

// Validate checks that every enumerated field holds an allowed value and
// the font adjustment stays within the small-integer range the renderer
// supports. Used to reject garbled external-service output.
func (lr *LayoutRecommendation) Validate() error {
	return layoutValidator.Struct(lr)
}
