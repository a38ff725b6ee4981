// Package pipeline provides the high-level orchestration for document
// generation: resolve the plan, recommend layouts, render, persist.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/IamPrat15/im-creator/internal/layout"
	"github.com/IamPrat15/im-creator/internal/logging"
	"github.com/IamPrat15/im-creator/internal/observability"
	"github.com/IamPrat15/im-creator/internal/render"
	"github.com/IamPrat15/im-creator/internal/resolver"
	"github.com/IamPrat15/im-creator/internal/statediff"
	"github.com/IamPrat15/im-creator/internal/store"
	"github.com/IamPrat15/im-creator/internal/types"
)

// maxConcurrentAnalyses bounds parallel layout calls so a large deck does
// not burst-rate-limit the model API.
const maxConcurrentAnalyses = 4

// RunOptions holds configuration for one generation run.
type RunOptions struct {
	DocumentType string
	Record       *types.InputRecord
	Engine       *layout.Engine
	Renderer     render.Renderer
	Store        *store.Store
	ProjectID    string
	Theme        string
	Verbose      bool
}

// Result is the output of one generation run.
type Result struct {
	Plan            types.SlidePlan
	Recommendations map[types.SlideID]types.LayoutRecommendation
	Output          string
	RunID           uuid.UUID
}

// Run executes the full generation pipeline. Storage failures degrade to
// warnings; only rendering errors abort the run.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	if opts.Record == nil {
		opts.Record = types.NewInputRecord(nil)
	}
	if opts.Renderer == nil {
		opts.Renderer = render.Outline{}
	}
	if opts.Engine == nil {
		opts.Engine = layout.NewEngine(nil, true)
	}
	printer := observability.NewPrinter(os.Stdout)

	fmt.Printf("Step 1/3: Resolving slide plan for %q...\n", opts.DocumentType)
	plan := resolver.Resolve(opts.DocumentType, opts.Record)
	if opts.Verbose {
		printer.PrintPlan(plan)
	}

	var runID uuid.UUID
	if opts.Store != nil {
		var err error
		runID, err = opts.Store.CreateRun(ctx, plan.DocumentType, opts.Record.String("companyName"))
		if err != nil {
			logging.Warn().Err(err).Msg("could not create run record, continuing without persistence")
		} else if err := opts.Store.SaveArtifact(ctx, runID, store.ArtifactPlan, plan); err != nil {
			logging.Warn().Err(err).Msg("could not persist slide plan")
		}
	}

	fmt.Printf("Step 2/3: Analyzing layout for %d slides...\n", len(plan.Entries))
	recs, err := recommendConcurrently(ctx, opts.Engine, plan, opts.Record)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		for _, entry := range plan.Entries {
			printer.PrintRecommendation(entry.ID, recs[entry.ID])
		}
	}

	fmt.Printf("Step 3/3: Rendering %d slides...\n", plan.PhysicalCount())
	output, err := opts.Renderer.Render(render.NewContext(plan, opts.Record, recs, opts.Theme))
	if err != nil {
		if opts.Store != nil && runID != uuid.Nil {
			_ = opts.Store.CompleteRun(ctx, runID, store.RunStatusFailed)
		}
		return nil, fmt.Errorf("rendering failed: %w", err)
	}

	if opts.Store != nil && runID != uuid.Nil {
		if err := opts.Store.SaveArtifact(ctx, runID, store.ArtifactRecommendations, recs); err != nil {
			logging.Warn().Err(err).Msg("could not persist layout recommendations")
		}
		if err := opts.Store.SaveArtifact(ctx, runID, store.ArtifactOutline, output); err != nil {
			logging.Warn().Err(err).Msg("could not persist outline")
		}
		if err := opts.Store.CompleteRun(ctx, runID, store.RunStatusCompleted); err != nil {
			logging.Warn().Err(err).Msg("could not complete run record")
		}
		if opts.ProjectID != "" {
			if err := opts.Store.SaveDraft(ctx, opts.ProjectID, opts.Record); err != nil {
				logging.Warn().Err(err).Msg("could not save draft")
			}
		}
	}

	return &Result{
		Plan:            plan,
		Recommendations: recs,
		Output:          output,
		RunID:           runID,
	}, nil
}

// recommendConcurrently fans layout analysis out over the plan. The
// engine's Recommend never fails, so the only abort path is context
// cancellation.
func recommendConcurrently(ctx context.Context, engine *layout.Engine, plan types.SlidePlan, record *types.InputRecord) (map[types.SlideID]types.LayoutRecommendation, error) {
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentAnalyses)

	var mu sync.Mutex
	recs := make(map[types.SlideID]types.LayoutRecommendation, len(plan.Entries))

	for _, entry := range plan.Entries {
		id := entry.ID
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			rec := engine.Recommend(gCtx, id, record)
			mu.Lock()
			recs[id] = rec
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("layout analysis aborted: %w", err)
	}
	return recs, nil
}

// UpdateOptions holds configuration for an incremental update.
type UpdateOptions struct {
	RunOptions
	Previous *types.InputRecord
}

// UpdateResult reports what an incremental update did.
type UpdateResult struct {
	ChangedFields []string
	Impact        statediff.Impact
	Rebuilt       []types.SlideID
	Result        *Result
}

// Update re-renders only the slides a record change invalidates. An empty
// diff is a no-op; a full-impact change falls back to a complete run.
func Update(ctx context.Context, opts UpdateOptions) (*UpdateResult, error) {
	if opts.Previous == nil {
		opts.Previous = types.NewInputRecord(nil)
	}
	if opts.Record == nil {
		opts.Record = types.NewInputRecord(nil)
	}

	changed := statediff.Diff(opts.Previous, opts.Record)
	impact := statediff.Affected(changed)

	if opts.Verbose {
		observability.NewPrinter(os.Stdout).PrintImpact(changed, impact)
	}

	if impact.Empty() {
		return &UpdateResult{ChangedFields: changed, Impact: impact}, nil
	}

	if impact.All {
		result, err := Run(ctx, opts.RunOptions)
		if err != nil {
			return nil, err
		}
		return &UpdateResult{
			ChangedFields: changed,
			Impact:        impact,
			Rebuilt:       result.Plan.IDs(),
			Result:        result,
		}, nil
	}

	// Partial rebuild: re-render only affected slides that are actually in
	// the current plan.
	plan := resolver.Resolve(opts.DocumentType, opts.Record)
	affected := make(map[types.SlideID]bool, len(impact.Slides))
	for _, id := range impact.Slides {
		affected[id] = true
	}

	subset := types.SlidePlan{DocumentType: plan.DocumentType}
	for _, entry := range plan.Entries {
		if affected[entry.ID] {
			subset.Entries = append(subset.Entries, entry)
		}
	}
	if len(subset.Entries) == 0 {
		return &UpdateResult{ChangedFields: changed, Impact: impact}, nil
	}

	runOpts := opts.RunOptions
	result, err := runSubset(ctx, runOpts, subset)
	if err != nil {
		return nil, err
	}
	return &UpdateResult{
		ChangedFields: changed,
		Impact:        impact,
		Rebuilt:       subset.IDs(),
		Result:        result,
	}, nil
}

// runSubset renders a pre-resolved partial plan without re-running the
// resolver or persisting a new run.
func runSubset(ctx context.Context, opts RunOptions, plan types.SlidePlan) (*Result, error) {
	if opts.Renderer == nil {
		opts.Renderer = render.Outline{}
	}
	if opts.Engine == nil {
		opts.Engine = layout.NewEngine(nil, true)
	}

	recs, err := recommendConcurrently(ctx, opts.Engine, plan, opts.Record)
	if err != nil {
		return nil, err
	}

	output, err := opts.Renderer.Render(render.NewContext(plan, opts.Record, recs, opts.Theme))
	if err != nil {
		return nil, fmt.Errorf("rendering failed: %w", err)
	}

	return &Result{Plan: plan, Recommendations: recs, Output: output}, nil
}
