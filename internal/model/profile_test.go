package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTier_Bands(t *testing.T) {
	assert.Equal(t, BudgetVeryLow, Financials{WeeklyBudget: 40}.Tier())
	assert.Equal(t, BudgetLow, Financials{WeeklyBudget: 50}.Tier())
	assert.Equal(t, BudgetLow, Financials{WeeklyBudget: 99.99}.Tier())
	assert.Equal(t, BudgetModerate, Financials{WeeklyBudget: 100}.Tier())
	assert.Equal(t, BudgetComfortable, Financials{WeeklyBudget: 200}.Tier())
}

func TestMobility(t *testing.T) {
	assert.Equal(t, MobilityHigh, Logistics{HasVehicle: true}.Mobility())
	assert.Equal(t, MobilityHigh, Logistics{HasVehicle: true, HasPublicTransit: true}.Mobility())
	assert.Equal(t, MobilityModerate, Logistics{HasPublicTransit: true}.Mobility())
	assert.Equal(t, MobilityLimited, Logistics{}.Mobility())
}

func TestDeriveTravelDistance(t *testing.T) {
	assert.Equal(t, 15.0, DeriveTravelDistance(true, false))
	assert.Equal(t, 15.0, DeriveTravelDistance(true, true))
	assert.Equal(t, 5.0, DeriveTravelDistance(false, true))
	assert.Equal(t, 2.0, DeriveTravelDistance(false, false))
}

func TestNormalizeTag(t *testing.T) {
	assert.Equal(t, "brain_fog", NormalizeTag("Brain Fog"))
	assert.Equal(t, "fatigue", NormalizeTag("  FATIGUE  "))
	assert.Equal(t, "", NormalizeTag("   "))
}

func TestNormalizeTags_DropsEmpties(t *testing.T) {
	out := NormalizeTags([]string{"Joint Pain", "", "  ", "anxiety"})
	assert.Equal(t, []string{"joint_pain", "anxiety"}, out)
}

func TestProfileNormalize_Defaults(t *testing.T) {
	p := Profile{
		Financials: Financials{WeeklyBudget: -5},
		Logistics:  Logistics{TripsPerWeek: 0, HasPublicTransit: true},
		Medical:    Medical{CurrentSymptoms: []string{"Brain Fog"}},
	}
	p.Normalize()

	assert.Equal(t, DefaultWeeklyBudget, p.Financials.WeeklyBudget)
	assert.Equal(t, 1, p.Logistics.TripsPerWeek)
	// transit-only derives a 5-unit radius
	assert.Equal(t, 5.0, p.Logistics.MaxTravelDistance)
	assert.Equal(t, []string{"brain_fog"}, p.Medical.CurrentSymptoms)
}

func TestProfileNormalize_ClampsTrips(t *testing.T) {
	p := Profile{Logistics: Logistics{TripsPerWeek: 12, MaxTravelDistance: 3}}
	p.Normalize()
	assert.Equal(t, 7, p.Logistics.TripsPerWeek)
	// explicit travel distance survives
	assert.Equal(t, 3.0, p.Logistics.MaxTravelDistance)
}

func TestShoppingPriorityFor(t *testing.T) {
	assert.Equal(t, PriorityCritical, ShoppingPriorityFor(1))
	assert.Equal(t, PriorityHigh, ShoppingPriorityFor(2))
	assert.Equal(t, PriorityModerate, ShoppingPriorityFor(3))
	assert.Equal(t, PriorityOptional, ShoppingPriorityFor(4))
	assert.Equal(t, PriorityOptional, ShoppingPriorityFor(5))
}
