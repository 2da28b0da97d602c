package explain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eatwell/nourish-cli/internal/model"
)

func samplePlan() model.ShoppingPlan {
	return model.ShoppingPlan{
		Items: []model.ShoppingItem{
			{
				Food:               model.FoodItem{Name: "Spinach (fresh bunch)", Nutrients: []string{"Iron", "Methylfolate"}},
				Priority:           model.PriorityCritical,
				Reason:             "Addresses Iron: Iron level (50 mcg/dL) is low...",
				EstimatedCost:      2.50,
				NutrientsAddressed: []string{"Iron"},
			},
			{
				Food:               model.FoodItem{Name: "Sardines (canned)", Nutrients: []string{"Vitamin B12", "Omega-3 Fatty Acids"}},
				Priority:           model.PriorityHigh,
				EstimatedCost:      2.00,
				NutrientsAddressed: []string{"Vitamin B12"},
			},
		},
		PantryItems: []model.ShoppingItem{
			{Food: model.FoodItem{Name: "Pantry: Bread"}},
		},
	}
}

func sampleNeeds() model.NeedList {
	return model.NeedList{
		Needs: []model.NutrientNeed{
			{
				Nutrient:       "Iron",
				Priority:       1,
				Reason:         "Iron level (50 mcg/dL) is low - may cause fatigue and anemia",
				RelatedMarkers: []string{"serum iron", "ferritin", "symptoms: fatigue"},
				FoodSources:    []string{"spinach", "lentils", "beef"},
			},
			{
				Nutrient: "Vitamin B12",
				Priority: 2,
				Reason:   "B12 level is suboptimal",
			},
		},
	}
}

func TestPriorityLabel(t *testing.T) {
	assert.Equal(t, "CRITICAL", PriorityLabel(1))
	assert.Equal(t, "HIGH", PriorityLabel(2))
	assert.Equal(t, "SUPPORTIVE", PriorityLabel(5))
	// out-of-range clamps
	assert.Equal(t, "CRITICAL", PriorityLabel(0))
	assert.Equal(t, "SUPPORTIVE", PriorityLabel(9))
}

func TestFindItem_PartialCaseInsensitive(t *testing.T) {
	plan := samplePlan()

	item := FindItem(plan, "spin")
	require.NotNil(t, item)
	assert.Equal(t, "Spinach (fresh bunch)", item.Food.Name)

	assert.NotNil(t, FindItem(plan, "SARDINES"))
	assert.Nil(t, FindItem(plan, "kale"))
}

func TestFindNeed_PartialCaseInsensitive(t *testing.T) {
	needs := sampleNeeds()

	need := FindNeed(needs, "b12")
	require.NotNil(t, need)
	assert.Equal(t, "Vitamin B12", need.Nutrient)
	assert.Nil(t, FindNeed(needs, "zinc"))
}

func TestExplainItem_Found(t *testing.T) {
	out := ExplainItem(model.Profile{}, sampleNeeds(), samplePlan(), "spinach")

	assert.Contains(t, out, "Spinach (fresh bunch)")
	assert.Contains(t, out, "Price: $2.50")
	assert.Contains(t, out, "CRITICAL")
	assert.Contains(t, out, "may cause fatigue and anemia")
	assert.Contains(t, out, "serum iron, ferritin")
}

func TestExplainItem_NotFoundListsAvailable(t *testing.T) {
	out := ExplainItem(model.Profile{}, sampleNeeds(), samplePlan(), "quinoa")

	assert.Contains(t, out, `Item "quinoa" not found`)
	assert.Contains(t, out, "Spinach (fresh bunch), Sardines (canned)")
}

func TestExplainItem_PantryItemUsesBudgetTier(t *testing.T) {
	profile := model.Profile{Financials: model.Financials{WeeklyBudget: 40}}

	out := ExplainItem(profile, sampleNeeds(), samplePlan(), "bread")

	assert.Contains(t, out, "Pantry: Bread")
	assert.Contains(t, out, `"very_low"`)
	assert.Contains(t, out, "no cost")
}

func TestExplainNeed_Found(t *testing.T) {
	profile := model.Profile{Medical: model.Medical{CurrentSymptoms: []string{"fatigue"}}}

	out := ExplainNeed(profile, sampleNeeds(), "iron")

	assert.Contains(t, out, "Priority Level: 1 CRITICAL")
	assert.Contains(t, out, "may cause fatigue and anemia")
	// symptom connected by marker substring
	assert.Contains(t, out, "Connected to your symptoms")
	assert.Contains(t, out, "fatigue")
	assert.Contains(t, out, "spinach")
}

func TestExplainNeed_NotFoundListsPriorities(t *testing.T) {
	out := ExplainNeed(model.Profile{}, sampleNeeds(), "calcium")

	assert.Contains(t, out, `Nutrient "calcium" not found`)
	assert.Contains(t, out, "Iron, Vitamin B12")
}

func TestMatchingSymptoms_Bidirectional(t *testing.T) {
	need := model.NutrientNeed{RelatedMarkers: []string{"symptoms: fatigue", "ferritin"}}

	// symptom contained in marker
	assert.Equal(t, []string{"fatigue"}, MatchingSymptoms(need, []string{"fatigue", "anxiety"}))

	// marker contained in symptom
	need = model.NutrientNeed{RelatedMarkers: []string{"iron"}}
	assert.Equal(t, []string{"low iron levels"}, MatchingSymptoms(need, []string{"low iron levels"}))

	assert.Empty(t, MatchingSymptoms(need, []string{"brain_fog"}))
}
