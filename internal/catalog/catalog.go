// Package catalog holds the static reference tables the pipeline consumes:
// lab reference ranges, nutrient-to-food-source mappings, the store catalog
// keyed by location prefix, the food catalog, and budget-tier substitutions.
// A Catalog is built once at process start and treated as read-only; every
// pipeline run shares the same instance.
package catalog

import (
	"sort"

	"github.com/eatwell/nourish-cli/internal/model"
)

// LabRange is a three-band reference range for a biomarker. Bands below
// Low / OptimalLow are deficiency bands; Elevated / High mark the upper
// bands for inflammation- and glucose-type markers.
type LabRange struct {
	Low         float64 `json:"low,omitempty"`
	OptimalLow  float64 `json:"optimal_low,omitempty"`
	OptimalHigh float64 `json:"optimal_high,omitempty"`
	Elevated    float64 `json:"elevated,omitempty"`
	High        float64 `json:"high,omitempty"`
	Unit        string  `json:"unit"`
}

// Catalog is the full read-only reference data set.
type Catalog struct {
	LabRanges           map[string]LabRange
	NutrientFoodSources map[string][]string

	// DefaultStores always apply; RegionalStores extend them when the first
	// three characters of the location code match a key. The lists are
	// concatenated, never deduplicated.
	DefaultStores  []model.Store
	RegionalStores map[string][]model.Store

	// Foods is declaration-ordered; price-sort ties preserve this order so
	// plan output stays reproducible.
	Foods []model.FoodItem

	// BudgetAlternatives maps a food key to a cheaper nutrient-preserving
	// substitute used for low budget tiers.
	BudgetAlternatives map[string]string

	// StapleKeys is the ordered fill-in list for leftover budget.
	StapleKeys []string

	// PantryStaples are the zero-cost placeholder items matched against a
	// pantry's specialty tags.
	PantryStaples []string

	foodsByKey map[string]model.FoodItem
}

// New returns the built-in catalog.
func New() *Catalog {
	c := &Catalog{
		LabRanges:           defaultLabRanges(),
		NutrientFoodSources: defaultNutrientFoodSources(),
		DefaultStores:       defaultStores(),
		RegionalStores:      defaultRegionalStores(),
		Foods:               defaultFoods(),
		BudgetAlternatives:  defaultBudgetAlternatives(),
		StapleKeys:          []string{"oats", "brown_rice", "black_beans_canned", "bananas", "peanut_butter"},
		PantryStaples:       []string{"bread", "canned goods", "produce"},
	}
	c.reindex()
	return c
}

func (c *Catalog) reindex() {
	c.foodsByKey = make(map[string]model.FoodItem, len(c.Foods))
	for _, f := range c.Foods {
		c.foodsByKey[f.Key] = f
	}
}

// StoresForLocation returns the default stores plus any regional extension
// matching the first three characters of the location code. A store present
// in both lists appears twice.
func (c *Catalog) StoresForLocation(locationCode string) []model.Store {
	prefix := locationCode
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}

	stores := make([]model.Store, 0, len(c.DefaultStores))
	stores = append(stores, c.DefaultStores...)
	if regional, ok := c.RegionalStores[prefix]; ok {
		stores = append(stores, regional...)
	}
	return stores
}

// FoodsForNutrient returns every food supplying the nutrient, sorted
// ascending by price with catalog declaration order breaking ties.
func (c *Catalog) FoodsForNutrient(nutrient string) []model.FoodItem {
	var matches []model.FoodItem
	for _, f := range c.Foods {
		if f.Provides(nutrient) {
			matches = append(matches, f)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Price < matches[j].Price
	})
	return matches
}

// FoodByKey looks up a food by its catalog key.
func (c *Catalog) FoodByKey(key string) (model.FoodItem, bool) {
	f, ok := c.foodsByKey[key]
	return f, ok
}

// FoodKeyByName reverse-looks-up a catalog key from a display name.
func (c *Catalog) FoodKeyByName(name string) (string, bool) {
	for _, f := range c.Foods {
		if f.Name == name {
			return f.Key, true
		}
	}
	return "", false
}

// AlternativeFor returns the budget substitution for a food key, if any.
func (c *Catalog) AlternativeFor(key string) (model.FoodItem, bool) {
	altKey, ok := c.BudgetAlternatives[key]
	if !ok {
		return model.FoodItem{}, false
	}
	return c.FoodByKey(altKey)
}

// FoodSources returns the reference food-source list for a nutrient.
func (c *Catalog) FoodSources(nutrient string) []string {
	return c.NutrientFoodSources[nutrient]
}
