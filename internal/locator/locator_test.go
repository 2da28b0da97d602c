package locator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eatwell/nourish-cli/internal/catalog"
	"github.com/eatwell/nourish-cli/internal/model"
)

func transitLogistics() model.Logistics {
	return model.Logistics{
		HasPublicTransit:  true,
		TripsPerWeek:      2,
		MaxTravelDistance: 5.0,
	}
}

func TestTravelMinutes(t *testing.T) {
	// 1.2 units at 12/hr is 6 min, plus 10 min transit overhead
	assert.Equal(t, 16, TravelMinutes(1.2, model.TravelTransit))
	// 5 units at 25/hr is 12 min, no drive overhead
	assert.Equal(t, 12, TravelMinutes(5, model.TravelDrive))
	// 2 units at 3/hr is 40 min, plus 5 min walk overhead
	assert.Equal(t, 45, TravelMinutes(2, model.TravelWalk))
}

func TestTravelMinutes_Truncates(t *testing.T) {
	// 1.7 units at 12/hr is 8.5 min; 18.5 truncates to 18
	assert.Equal(t, 18, TravelMinutes(1.7, model.TravelTransit))
}

func TestFeasibility_TransitScore(t *testing.T) {
	store := model.Store{
		Name: "Community Food Pantry", Type: model.StoreFoodPantry,
		Distance: 0.8, InventoryLevel: model.InventoryMedium,
	}

	tf := Feasibility(store, transitLogistics())

	assert.True(t, tf.IsAccessible)
	assert.Equal(t, model.TravelTransit, tf.TravelMethod)
	assert.Equal(t, 14, tf.EstimatedMinutes)
	// 0.4*(1-0.8/8) + 0.3*(1-14/60) + 0.3*0.7 = 0.36+0.23+0.21 = 0.80
	assert.InDelta(t, 0.80, tf.AccessibilityScore, 0.001)
}

func TestFeasibility_WalkFallback(t *testing.T) {
	store := model.Store{Name: "Corner Store", Distance: 1.5, InventoryLevel: model.InventoryLow}
	logistics := model.Logistics{TripsPerWeek: 1, MaxTravelDistance: 1.0}

	tf := Feasibility(store, logistics)

	assert.True(t, tf.IsAccessible)
	assert.Equal(t, model.TravelWalk, tf.TravelMethod)
	assert.Contains(t, tf.Notes, "Walking distance")
}

func TestFeasibility_TransitFallback(t *testing.T) {
	store := model.Store{Name: "Target", Distance: 5.5, InventoryLevel: model.InventoryHigh}
	logistics := transitLogistics() // radius 5, store beyond it

	tf := Feasibility(store, logistics)

	assert.True(t, tf.IsAccessible)
	assert.Equal(t, model.TravelTransit, tf.TravelMethod)
	assert.Contains(t, tf.Notes, "Accessible via public transit")
}

func TestFeasibility_NoFallbackWithoutTransit(t *testing.T) {
	store := model.Store{Name: "Target", Distance: 5.5}
	logistics := model.Logistics{TripsPerWeek: 2, MaxTravelDistance: 2.0}

	tf := Feasibility(store, logistics)
	assert.False(t, tf.IsAccessible)
}

func TestFeasibility_ReachabilityMonotonicInRadius(t *testing.T) {
	store := model.Store{Name: "Far Foods", Distance: 4.0}

	near := Feasibility(store, model.Logistics{TripsPerWeek: 2, MaxTravelDistance: 3.0})
	far := Feasibility(store, model.Logistics{TripsPerWeek: 2, MaxTravelDistance: 5.0})

	assert.False(t, near.IsAccessible)
	assert.True(t, far.IsAccessible)
}

func TestFeasibility_LongTripNeedsTwoTrips(t *testing.T) {
	// 7.5 units by transit is 47 min, past the long-trip threshold
	store := model.Store{Name: "Edge Mart", Distance: 7.5, InventoryLevel: model.InventoryHigh}
	logistics := model.Logistics{HasPublicTransit: true, MaxTravelDistance: 8.0}

	oneTrip := logistics
	oneTrip.TripsPerWeek = 1
	tf := Feasibility(store, oneTrip)
	assert.False(t, tf.IsAccessible)
	assert.Contains(t, tf.Notes, "Long travel time")

	twoTrips := logistics
	twoTrips.TripsPerWeek = 2
	assert.True(t, Feasibility(store, twoTrips).IsAccessible)
}

func TestFeasibility_Notes(t *testing.T) {
	store := model.Store{
		Name: "Community Food Pantry", Type: model.StoreFoodPantry,
		Distance: 0.8, InventoryLevel: model.InventoryMedium,
	}

	tf := Feasibility(store, transitLogistics())
	assert.Equal(t, []string{"FREE - Food pantry", "Very close"}, tf.Notes)
}

func TestLocate_SortedByScore(t *testing.T) {
	l := New(catalog.New())
	profile := model.Profile{
		UserID:    "u1",
		Logistics: transitLogistics(),
	}
	profile.Logistics.LocationCode = "30312"

	rm := l.Locate(profile)

	require.NotEmpty(t, rm.AccessibleStores)
	// regional extension included
	assert.Len(t, rm.AllStores, 11)
	for i := 1; i < len(rm.AccessibleStores); i++ {
		assert.GreaterOrEqual(t,
			rm.AccessibleStores[i-1].AccessibilityScore,
			rm.AccessibleStores[i].AccessibilityScore)
	}
}

func TestLocate_PantryView(t *testing.T) {
	l := New(catalog.New())
	profile := model.Profile{Logistics: transitLogistics()}

	rm := l.Locate(profile)

	require.NotEmpty(t, rm.FoodPantries)
	for _, tf := range rm.FoodPantries {
		assert.Equal(t, model.StoreFoodPantry, tf.Store.Type)
	}
	assert.Equal(t, "Community Food Pantry", rm.FoodPantries[0].Store.Name)
}

func TestLocate_BenefitViewPriceSorted(t *testing.T) {
	l := New(catalog.New())
	profile := model.Profile{
		Financials: model.Financials{SNAPStatus: true},
		Logistics:  transitLogistics(),
	}

	rm := l.Locate(profile)

	require.NotEmpty(t, rm.BenefitStores)
	assert.Equal(t, "Budget Foods", rm.BenefitStores[0].Store.Name)
	for i := 1; i < len(rm.BenefitStores); i++ {
		assert.LessOrEqual(t,
			rm.BenefitStores[i-1].Store.PriceTier,
			rm.BenefitStores[i].Store.PriceTier)
	}
	for _, tf := range rm.BenefitStores {
		assert.True(t, tf.Store.SNAPAccepted)
	}
}

func TestLocate_NoAssistanceKeepsScoreOrder(t *testing.T) {
	l := New(catalog.New())
	profile := model.Profile{Logistics: transitLogistics()}

	rm := l.Locate(profile)

	// without benefits the view keeps accessibility order, so the cheapest
	// store is not necessarily first
	require.NotEmpty(t, rm.BenefitStores)
	scores := rm.BenefitStores
	for i := 1; i < len(scores); i++ {
		assert.GreaterOrEqual(t, scores[i-1].AccessibilityScore, scores[i].AccessibilityScore)
	}
}
