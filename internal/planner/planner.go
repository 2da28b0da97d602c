// Package planner builds a budget-constrained shopping plan from a nutrient
// need list and a scored resource map. Allocation is greedy and
// single-pass: pantry-first for low budget tiers, then cheapest safe food
// per need, then staple fill-ins with whatever budget remains. All
// "cannot satisfy" conditions degrade to a skipped need plus a reasoning
// line; the builder never fails on a well-formed profile.
package planner

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/eatwell/nourish-cli/internal/catalog"
	"github.com/eatwell/nourish-cli/internal/model"
)

// maxNeedsConsidered caps how many consolidated needs get a dedicated
// selection pass.
const maxNeedsConsidered = 8

// stapleStopBudget stops staple fill-in once remaining budget drops to or
// below this amount.
const stapleStopBudget = 2.0

// Planner allocates budget against the food catalog. Safe for concurrent
// use; all per-run state lives in Build locals.
type Planner struct {
	cat *catalog.Catalog
}

// New returns a Planner backed by the given catalog.
func New(cat *catalog.Catalog) *Planner {
	return &Planner{cat: cat}
}

// Build produces the shopping plan for one pipeline run.
func (p *Planner) Build(profile model.Profile, needs model.NeedList, resources model.ResourceMap) model.ShoppingPlan {
	plan := model.ShoppingPlan{UserID: profile.UserID}

	budget := profile.Financials.WeeklyBudget
	tier := profile.Financials.Tier()
	remaining := budget

	topNeeds := needs.TopPriorities(maxNeedsConsidered)

	var reasoning []string
	reasoning = append(reasoning, fmt.Sprintf("Budget tier: %s ($%.2f/week)", tier, budget))
	reasoning = append(reasoning, fmt.Sprintf("Top %d nutrient priorities identified", len(topNeeds)))

	lowBudget := tier == model.BudgetVeryLow || tier == model.BudgetLow

	if lowBudget && len(resources.FoodPantries) > 0 {
		reasoning = append(reasoning, "LOW BUDGET: Recommending food pantry as primary resource")
		p.addPantryItems(&plan, resources.FoodPantries[0])
	}

	for _, need := range topNeeds {
		if remaining <= 0 {
			reasoning = append(reasoning, fmt.Sprintf("BUDGET EXHAUSTED: Skipping %s", need.Nutrient))
			continue
		}

		options := p.cat.FoodsForNutrient(need.Nutrient)
		if len(options) == 0 {
			reasoning = append(reasoning, fmt.Sprintf("No foods found for %s", need.Nutrient))
			continue
		}

		safe := filterAllergens(options, profile.Medical.KnownAllergies)
		if len(safe) == 0 {
			reasoning = append(reasoning, fmt.Sprintf("All foods for %s conflict with allergies", need.Nutrient))
			continue
		}

		selected, found := p.selectFood(safe, remaining, lowBudget, profile.Financials.SNAPStatus)
		if !found {
			// Cheapest safe option even if it pushes the budget negative.
			selected = safe[0]
		}

		if existing := findByFoodName(plan.Items, selected.Name); existing != nil {
			if !containsString(existing.NutrientsAddressed, need.Nutrient) {
				existing.NutrientsAddressed = append(existing.NutrientsAddressed, need.Nutrient)
			}
			continue
		}

		priority := model.ShoppingPriorityFor(need.Priority)
		plan.Items = append(plan.Items, model.ShoppingItem{
			Food:               selected,
			Quantity:           1,
			Priority:           priority,
			PriorityLabel:      priority.String(),
			Reason:             fmt.Sprintf("Addresses %s: %s...", need.Nutrient, truncate(need.Reason, 80)),
			SuggestedStore:     p.bestStore(resources, profile.Financials.SNAPStatus),
			EstimatedCost:      selected.Price,
			NutrientsAddressed: []string{need.Nutrient},
		})
		remaining -= selected.Price

		reasoning = append(reasoning, fmt.Sprintf("Added %s ($%.2f) for %s [Priority %d]",
			selected.Name, selected.Price, need.Nutrient, need.Priority))
	}

	remaining = p.fillStaples(&plan, remaining, &reasoning)

	for _, item := range plan.Items {
		plan.TotalEstimatedCost += item.EstimatedCost
	}
	plan.BudgetRemaining = remaining
	plan.ReasoningLog = append(plan.ReasoningLog, reasoning...)

	plan.StoreVisits = make(map[string][]model.ShoppingItem)
	for _, item := range plan.Items {
		store := item.SuggestedStore
		if store == "" {
			store = model.AnyStore
		}
		plan.StoreVisits[store] = append(plan.StoreVisits[store], item)
	}

	sort.SliceStable(plan.Items, func(i, j int) bool {
		return plan.Items[i].Priority < plan.Items[j].Priority
	})

	zap.L().Info("shopping plan built",
		zap.String("user_id", profile.UserID),
		zap.Int("items", len(plan.Items)),
		zap.Int("pantry_items", len(plan.PantryItems)),
		zap.Float64("total_cost", plan.TotalEstimatedCost),
		zap.Float64("budget_remaining", plan.BudgetRemaining),
	)

	return plan
}

// addPantryItems records the free-resource recommendation for the top-scored
// pantry and appends zero-cost placeholders for each pantry staple present
// in its specialty tags.
func (p *Planner) addPantryItems(plan *model.ShoppingPlan, pantry model.TravelFeasibility) {
	available := pantry.Store.SpecialtyItems
	if len(available) > 3 {
		available = available[:3]
	}
	plan.ReasoningLog = append(plan.ReasoningLog, fmt.Sprintf(
		"RECOMMENDATION: Visit %s first (FREE). Available: %s. Hours: %s",
		pantry.Store.Name, strings.Join(available, ", "), pantry.Store.Hours))

	for _, staple := range p.cat.PantryStaples {
		if !containsString(pantry.Store.SpecialtyItems, staple) {
			continue
		}
		plan.PantryItems = append(plan.PantryItems, model.ShoppingItem{
			Food: model.FoodItem{
				Name:          "Pantry: " + titleCase(staple),
				Category:      "pantry",
				ServingSize:   "varies",
				ShelfLifeDays: 7,
			},
			Quantity:       1,
			Priority:       model.PriorityHigh,
			PriorityLabel:  model.PriorityHigh.String(),
			Reason:         "Available FREE at food pantry",
			SuggestedStore: pantry.Store.Name,
		})
	}
}

// selectFood walks the price-sorted safe candidates and returns the first
// that fits the remaining budget and, for SNAP recipients, is SNAP
// eligible. Low budget tiers substitute the predefined cheaper alternative
// before the affordability check.
func (p *Planner) selectFood(safe []model.FoodItem, remaining float64, lowBudget, snap bool) (model.FoodItem, bool) {
	for _, food := range safe {
		candidate := food
		if lowBudget {
			if alt, ok := p.cat.AlternativeFor(food.Key); ok {
				candidate = alt
			}
		}

		if candidate.Price > remaining {
			continue
		}
		if snap && !candidate.SNAPEligible {
			continue
		}
		return candidate, true
	}
	return model.FoodItem{}, false
}

// bestStore returns the first reachable store (in accessibility order) that
// is benefit-compatible when required and not low-inventory. Empty when no
// store qualifies.
func (p *Planner) bestStore(resources model.ResourceMap, snap bool) string {
	for _, tf := range resources.AccessibleStores {
		if snap && !tf.Store.SNAPAccepted {
			continue
		}
		if tf.Store.InventoryLevel == model.InventoryLow {
			continue
		}
		return tf.Store.Name
	}
	return ""
}

// fillStaples spends leftover budget on the ordered staple list, skipping
// foods already planned, until the budget floor or the list is exhausted.
func (p *Planner) fillStaples(plan *model.ShoppingPlan, remaining float64, reasoning *[]string) float64 {
	for _, key := range p.cat.StapleKeys {
		if remaining <= stapleStopBudget {
			break
		}

		staple, ok := p.cat.FoodByKey(key)
		if !ok {
			continue
		}
		if findByFoodName(plan.Items, staple.Name) != nil {
			continue
		}
		if staple.Price > remaining {
			continue
		}

		plan.Items = append(plan.Items, model.ShoppingItem{
			Food:          staple,
			Quantity:      1,
			Priority:      model.PriorityOptional,
			PriorityLabel: model.PriorityOptional.String(),
			Reason:        "Budget-friendly staple for general nutrition",
			EstimatedCost: staple.Price,
		})
		remaining -= staple.Price
		*reasoning = append(*reasoning, fmt.Sprintf("Added staple: %s", staple.Name))
	}
	return remaining
}

func filterAllergens(foods []model.FoodItem, allergies []string) []model.FoodItem {
	if len(allergies) == 0 {
		return foods
	}

	var safe []model.FoodItem
	for _, food := range foods {
		nameLower := strings.ToLower(food.Name)
		conflict := false
		for _, allergy := range allergies {
			if strings.Contains(nameLower, strings.ToLower(allergy)) {
				conflict = true
				break
			}
		}
		if !conflict {
			safe = append(safe, food)
		}
	}
	return safe
}

func findByFoodName(items []model.ShoppingItem, name string) *model.ShoppingItem {
	for i := range items {
		if items[i].Food.Name == name {
			return &items[i]
		}
	}
	return nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
