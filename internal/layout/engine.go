package layout

import (
	"context"
	"time"

	"github.com/IamPrat15/im-creator/internal/logging"
	"github.com/IamPrat15/im-creator/internal/types"
)

// analysisTimeout bounds one external recommendation call. The heuristic
// answer is always available, so waiting longer buys nothing.
const analysisTimeout = 20 * time.Second

// Engine produces a recommendation for every slide. Recommend is total:
// when the external strategy is absent, disabled or failing, the engine
// answers with the heuristic instead of an error.
type Engine struct {
	heuristic Heuristic
	external  *External
	disabled  bool
}

// NewEngine builds an engine. external may be nil; disabled forces
// heuristic-only answers even when a client is wired.
func NewEngine(external *External, disabled bool) *Engine {
	return &Engine{external: external, disabled: disabled}
}

// Recommend returns the layout treatment for one slide. Never fails.
func (e *Engine) Recommend(ctx context.Context, slideID types.SlideID, record *types.InputRecord) types.LayoutRecommendation {
	preview := BuildPreview(record, slideID)

	if e.disabled || e.external == nil {
		return e.heuristic.Recommend(slideID, preview)
	}

	callCtx, cancel := context.WithTimeout(ctx, analysisTimeout)
	defer cancel()

	rec, err := e.external.Recommend(callCtx, slideID, preview)
	if err != nil {
		logging.Warn().
			Err(err).
			Str("slide", string(slideID)).
			Msg("layout analysis fell back to heuristic")
		return e.heuristic.Recommend(slideID, preview)
	}

	logging.Debug().
		Str("slide", string(slideID)).
		Str("chart", string(rec.ChartType)).
		Str("layout", string(rec.Layout)).
		Msg("layout analysis")
	return rec
}

// RecommendAll maps Recommend over every distinct slide in a plan.
func (e *Engine) RecommendAll(ctx context.Context, plan types.SlidePlan, record *types.InputRecord) map[types.SlideID]types.LayoutRecommendation {
	out := make(map[types.SlideID]types.LayoutRecommendation, len(plan.Entries))
	for _, entry := range plan.Entries {
		out[entry.ID] = e.Recommend(ctx, entry.ID, record)
	}
	return out
}
