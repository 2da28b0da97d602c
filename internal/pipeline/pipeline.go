// Package pipeline composes the three decision stages - need analysis,
// resource scoring, and plan building - into a single synchronous run.
// A run owns all of its derived state; concurrent runs share only the
// immutable reference catalog.
package pipeline

import (
	"time"

	"go.uber.org/zap"

	"github.com/eatwell/nourish-cli/internal/analyzer"
	"github.com/eatwell/nourish-cli/internal/catalog"
	"github.com/eatwell/nourish-cli/internal/locator"
	"github.com/eatwell/nourish-cli/internal/model"
	"github.com/eatwell/nourish-cli/internal/planner"
)

// Pipeline wires the stages over one shared catalog.
type Pipeline struct {
	analyzer *analyzer.Analyzer
	locator  *locator.Locator
	planner  *planner.Planner
}

// New builds a Pipeline over the given read-only catalog.
func New(cat *catalog.Catalog) *Pipeline {
	return &Pipeline{
		analyzer: analyzer.New(cat),
		locator:  locator.New(cat),
		planner:  planner.New(cat),
	}
}

// Run executes the full pipeline for one profile. The profile is normalized
// first; malformed values default rather than fail, so Run always returns a
// complete result.
func (p *Pipeline) Run(profile model.Profile) model.PipelineResult {
	start := time.Now()
	profile.Normalize()

	needs := p.analyzer.Analyze(profile)
	resources := p.locator.Locate(profile)
	plan := p.planner.Build(profile, needs, resources)

	zap.L().Info("pipeline run complete",
		zap.String("user_id", profile.UserID),
		zap.Int("needs", len(needs.Needs)),
		zap.Int("accessible_stores", len(resources.AccessibleStores)),
		zap.Int("plan_items", len(plan.Items)),
		zap.Float64("total_cost", plan.TotalEstimatedCost),
		zap.Duration("elapsed", time.Since(start)),
	)

	return model.PipelineResult{
		Profile:   profile,
		Needs:     needs,
		Resources: resources,
		Plan:      plan,
	}
}
