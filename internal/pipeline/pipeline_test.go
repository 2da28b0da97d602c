package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eatwell/nourish-cli/internal/catalog"
	"github.com/eatwell/nourish-cli/internal/model"
)

func sampleProfile() model.Profile {
	b12 := 280.0
	vitD := 18.0
	iron := 50.0
	crp := 3.5

	return model.Profile{
		UserID: "u1",
		Name:   "Sample User",
		Financials: model.Financials{
			WeeklyBudget: 60,
			SNAPStatus:   true,
		},
		Logistics: model.Logistics{
			LocationCode:     "30312",
			HasPublicTransit: true,
			TripsPerWeek:     2,
		},
		Medical: model.Medical{
			FamilyHistory:   []string{"diabetes"},
			CurrentSymptoms: []string{"fatigue", "brain_fog"},
			KnownAllergies:  []string{"shellfish"},
		},
		LabResults: &model.LabResults{
			MTHFRVariant:    "C677T",
			VitaminB12Level: &b12,
			VitaminDLevel:   &vitD,
			IronLevel:       &iron,
			CRPLevel:        &crp,
		},
	}
}

func TestRun_EndToEnd(t *testing.T) {
	p := New(catalog.New())

	result := p.Run(sampleProfile())

	require.NotEmpty(t, result.Needs.Needs)
	require.NotEmpty(t, result.Resources.AccessibleStores)
	require.NotEmpty(t, result.Plan.Items)

	// normalization filled the derived travel radius
	assert.Equal(t, 5.0, result.Profile.Logistics.MaxTravelDistance)

	// every plan item stays inside the consolidated needs or the staple list
	sum := 0.0
	for _, item := range result.Plan.Items {
		sum += item.EstimatedCost
	}
	assert.InDelta(t, sum, result.Plan.TotalEstimatedCost, 0.001)
	assert.InDelta(t, 60-sum, result.Plan.BudgetRemaining, 0.001)
}

func TestRun_Deterministic(t *testing.T) {
	p := New(catalog.New())

	first := p.Run(sampleProfile())
	second := p.Run(sampleProfile())

	assert.Equal(t, first.Needs, second.Needs)
	assert.Equal(t, first.Plan.Items, second.Plan.Items)
	assert.Equal(t, first.Plan.ReasoningLog, second.Plan.ReasoningLog)
	assert.Equal(t, first.Resources.AccessibleStores, second.Resources.AccessibleStores)
}

func TestRun_EmptyProfileStillCompletes(t *testing.T) {
	p := New(catalog.New())

	result := p.Run(model.Profile{UserID: "empty"})

	assert.Empty(t, result.Needs.Needs)
	assert.Contains(t, result.Needs.Warnings[0], "No lab results provided")
	// zero budget buys nothing, but the run still completes
	assert.Empty(t, result.Plan.Items)
	assert.Zero(t, result.Plan.TotalEstimatedCost)
}

func TestRenderReport_Sections(t *testing.T) {
	p := New(catalog.New())
	result := p.Run(sampleProfile())

	report := RenderReport(result)

	assert.Contains(t, report, "NUTRIENT PRIORITY ANALYSIS")
	assert.Contains(t, report, "NEARBY FOOD RESOURCES")
	assert.Contains(t, report, "CURATED SHOPPING LIST")
	assert.Contains(t, report, "Transportation: MODERATE")
	assert.Contains(t, report, "SNAP benefits applied")
	assert.Contains(t, report, "Budget: $60.00")
}
