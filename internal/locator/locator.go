// Package locator scores nearby food resources for a user's logistics
// profile: travel mode selection, reachability with walk/transit fallbacks,
// estimated travel minutes, and a weighted accessibility score.
package locator

import (
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/eatwell/nourish-cli/internal/catalog"
	"github.com/eatwell/nourish-cli/internal/model"
)

// Mode speeds in distance-units per hour and fixed overhead minutes.
const (
	walkSpeed    = 3.0
	transitSpeed = 12.0
	driveSpeed   = 25.0

	transitOverheadMinutes = 10
	walkOverheadMinutes    = 5
)

// Practical radius per travel mode, in distance units.
const (
	driveRadius   = 15.0
	transitRadius = 8.0
	walkRadius    = 2.0
)

// Accessibility score weights: distance 0.4, time 0.3, inventory 0.3.
const (
	distanceWeight  = 0.4
	timeWeight      = 0.3
	inventoryWeight = 0.3
)

// longTripMinutes is the travel time beyond which reachability additionally
// requires at least two grocery trips per week.
const longTripMinutes = 45

// Locator evaluates the store catalog against user logistics. Safe for
// concurrent use.
type Locator struct {
	cat *catalog.Catalog
}

// New returns a Locator backed by the given catalog.
func New(cat *catalog.Catalog) *Locator {
	return &Locator{cat: cat}
}

// Locate builds the full resource map for a profile: per-store travel
// feasibility, the accessible subset sorted by score, and the pantry and
// benefit-accepting views.
func (l *Locator) Locate(profile model.Profile) model.ResourceMap {
	allStores := l.cat.StoresForLocation(profile.Logistics.LocationCode)

	var accessible []model.TravelFeasibility
	for _, store := range allStores {
		tf := Feasibility(store, profile.Logistics)
		if tf.IsAccessible {
			accessible = append(accessible, tf)
		}
	}

	sort.SliceStable(accessible, func(i, j int) bool {
		if accessible[i].AccessibilityScore != accessible[j].AccessibilityScore {
			return accessible[i].AccessibilityScore > accessible[j].AccessibilityScore
		}
		return accessible[i].Store.Distance < accessible[j].Store.Distance
	})

	var pantries []model.TravelFeasibility
	for _, tf := range accessible {
		if tf.Store.Type == model.StoreFoodPantry {
			pantries = append(pantries, tf)
		}
	}

	var benefitStores []model.TravelFeasibility
	for _, tf := range accessible {
		if tf.Store.SNAPAccepted {
			benefitStores = append(benefitStores, tf)
		}
	}

	// Benefit recipients shop price-first: re-sort the benefit view by
	// price tier, nearest first within a tier.
	if profile.Financials.HasAssistance() {
		sort.SliceStable(benefitStores, func(i, j int) bool {
			if benefitStores[i].Store.PriceTier != benefitStores[j].Store.PriceTier {
				return benefitStores[i].Store.PriceTier < benefitStores[j].Store.PriceTier
			}
			return benefitStores[i].Store.Distance < benefitStores[j].Store.Distance
		})
	}

	zap.L().Info("resource scoring complete",
		zap.String("user_id", profile.UserID),
		zap.String("location", profile.Logistics.LocationCode),
		zap.Int("stores_considered", len(allStores)),
		zap.Int("accessible", len(accessible)),
		zap.Int("food_pantries", len(pantries)),
	)

	return model.ResourceMap{
		UserLocation:     profile.Logistics.LocationCode,
		AccessibleStores: accessible,
		FoodPantries:     pantries,
		BenefitStores:    benefitStores,
		AllStores:        allStores,
	}
}

// TravelMinutes estimates travel time for a distance and mode: distance over
// mode speed, converted to minutes, plus a fixed overhead (transit wait,
// walking round-trip buffer). The result is truncated, not rounded.
func TravelMinutes(distance float64, method model.TravelMethod) int {
	speed := walkSpeed
	switch method {
	case model.TravelTransit:
		speed = transitSpeed
	case model.TravelDrive:
		speed = driveSpeed
	}

	minutes := (distance / speed) * 60
	switch method {
	case model.TravelTransit:
		minutes += transitOverheadMinutes
	case model.TravelWalk:
		minutes += walkOverheadMinutes
	}
	return int(minutes)
}

// Feasibility computes the travel pairing for one store: preferred mode from
// the transportation flags, reachability against the profile's travel
// radius with walk/transit fallbacks, minutes, and the composite score.
func Feasibility(store model.Store, logistics model.Logistics) model.TravelFeasibility {
	var notes []string

	method := model.TravelWalk
	practicalRadius := walkRadius
	switch {
	case logistics.HasVehicle:
		method = model.TravelDrive
		practicalRadius = driveRadius
	case logistics.HasPublicTransit:
		method = model.TravelTransit
		practicalRadius = transitRadius
	}

	accessible := store.Distance <= logistics.MaxTravelDistance

	// Fallbacks override an unreachable verdict: anything in walking range,
	// or in transit range when transit exists.
	if !accessible {
		if store.Distance <= walkRadius {
			method = model.TravelWalk
			accessible = true
			notes = append(notes, "Walking distance")
		} else if store.Distance <= transitRadius && logistics.HasPublicTransit {
			method = model.TravelTransit
			accessible = true
			notes = append(notes, "Accessible via public transit")
		}
	}

	minutes := TravelMinutes(store.Distance, method)

	distanceScore := math.Max(0, 1-store.Distance/practicalRadius)
	timeScore := math.Max(0, 1-float64(minutes)/60)
	inventoryScore := inventoryComponent(store.InventoryLevel)

	score := distanceWeight*distanceScore + timeWeight*timeScore + inventoryWeight*inventoryScore
	score = math.Round(score*100) / 100

	if store.Type == model.StoreFoodPantry {
		notes = append(notes, "FREE - Food pantry")
	}
	if store.Distance <= 1.0 {
		notes = append(notes, "Very close")
	}
	if minutes > longTripMinutes {
		notes = append(notes, "Long travel time")
		accessible = accessible && logistics.TripsPerWeek >= 2
	}

	return model.TravelFeasibility{
		Store:              store,
		IsAccessible:       accessible,
		TravelMethod:       method,
		EstimatedMinutes:   minutes,
		AccessibilityScore: score,
		Notes:              notes,
	}
}

func inventoryComponent(level model.InventoryLevel) float64 {
	switch level {
	case model.InventoryHigh:
		return 1.0
	case model.InventoryMedium:
		return 0.7
	default:
		return 0.4
	}
}
