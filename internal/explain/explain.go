// Package explain reconstructs the rationale chain behind a chosen item or
// nutrient need (need, markers, reason, foods) for on-demand "why" queries.
// Everything here is a pure lookup over pipeline outputs; a missing name
// yields a not-found result listing the available alternatives, never an
// error.
package explain

import (
	"fmt"
	"strings"

	"github.com/eatwell/nourish-cli/internal/model"
)

// priorityLabels maps a nutrient priority (1-based) to its display label.
var priorityLabels = []string{"CRITICAL", "HIGH", "MODERATE", "PREVENTIVE", "SUPPORTIVE"}

// PriorityLabel returns the display label for a nutrient priority.
func PriorityLabel(priority int) string {
	i := priority - 1
	if i < 0 {
		i = 0
	}
	if i >= len(priorityLabels) {
		i = len(priorityLabels) - 1
	}
	return priorityLabels[i]
}

// FindItem locates a shopping list item by partial, case-insensitive name
// match.
func FindItem(plan model.ShoppingPlan, search string) *model.ShoppingItem {
	searchLower := strings.ToLower(search)
	for i := range plan.Items {
		if strings.Contains(strings.ToLower(plan.Items[i].Food.Name), searchLower) {
			return &plan.Items[i]
		}
	}
	return nil
}

// FindNeed locates a nutrient need by partial, case-insensitive name match.
func FindNeed(needs model.NeedList, search string) *model.NutrientNeed {
	searchLower := strings.ToLower(search)
	for i := range needs.Needs {
		if strings.Contains(strings.ToLower(needs.Needs[i].Nutrient), searchLower) {
			return &needs.Needs[i]
		}
	}
	return nil
}

// ExplainItem builds the rationale narrative for a shopping list item by
// joining its addressed nutrients back to their need entries. Pantry items
// are explained by budget tier. An unknown name produces a not-found
// message listing available items.
func ExplainItem(profile model.Profile, needs model.NeedList, plan model.ShoppingPlan, itemName string) string {
	item := FindItem(plan, itemName)
	if item == nil {
		searchLower := strings.ToLower(itemName)
		for _, pantryItem := range plan.PantryItems {
			if strings.Contains(strings.ToLower(pantryItem.Food.Name), searchLower) {
				return fmt.Sprintf(
					"%s\n   Source: Food Pantry (FREE)\n"+
						"   This was recommended because your budget tier is %q.\n"+
						"   Food pantries provide essential nutrition at no cost.",
					pantryItem.Food.Name, profile.Financials.Tier())
			}
		}

		available := make([]string, 0, 8)
		for i, it := range plan.Items {
			if i >= 8 {
				break
			}
			available = append(available, it.Food.Name)
		}
		return fmt.Sprintf("Item %q not found in your shopping list.\n   Available items: %s",
			itemName, strings.Join(available, ", "))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", item.Food.Name)
	fmt.Fprintf(&b, "   Price: $%.2f\n", item.EstimatedCost)
	fmt.Fprintf(&b, "   Priority: %s\n", strings.ToUpper(item.Priority.String()))
	b.WriteString("\n   BIOLOGICAL CONNECTION:\n")

	for _, nutrient := range item.NutrientsAddressed {
		for _, need := range needs.Needs {
			if need.Nutrient != nutrient {
				continue
			}
			fmt.Fprintf(&b, "\n   -> %s:\n", nutrient)
			fmt.Fprintf(&b, "      %s\n", need.Reason)
			if len(need.RelatedMarkers) > 0 {
				fmt.Fprintf(&b, "      Related markers: %s\n", strings.Join(firstN(need.RelatedMarkers, 3), ", "))
			}
			break
		}
	}

	fmt.Fprintf(&b, "\n   This food provides: %s\n", strings.Join(item.Food.Nutrients, ", "))
	fmt.Fprintf(&b, "   Selection reason: %s", item.Reason)
	return b.String()
}

// ExplainNeed builds the rationale narrative for a nutrient need, including
// the user symptoms connected to it by marker substring match. An unknown
// name produces a not-found message listing the priority nutrients.
func ExplainNeed(profile model.Profile, needs model.NeedList, nutrientName string) string {
	need := FindNeed(needs, nutrientName)
	if need == nil {
		available := make([]string, 0, 6)
		for i, n := range needs.Needs {
			if i >= 6 {
				break
			}
			available = append(available, n.Nutrient)
		}
		return fmt.Sprintf("Nutrient %q not found in your priorities.\n   Your priority nutrients: %s",
			nutrientName, strings.Join(available, ", "))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", need.Nutrient)
	fmt.Fprintf(&b, "   Priority Level: %d %s\n", need.Priority, PriorityLabel(need.Priority))
	b.WriteString("\n   Why this matters for you:\n")
	fmt.Fprintf(&b, "      %s\n", need.Reason)

	if len(need.RelatedMarkers) > 0 {
		b.WriteString("\n   Related health markers:\n")
		for _, marker := range firstN(need.RelatedMarkers, 5) {
			fmt.Fprintf(&b, "      - %s\n", marker)
		}
	}

	if matching := MatchingSymptoms(*need, profile.Medical.CurrentSymptoms); len(matching) > 0 {
		b.WriteString("\n   Connected to your symptoms:\n")
		for _, s := range matching {
			fmt.Fprintf(&b, "      - %s\n", s)
		}
	}

	if len(need.FoodSources) > 0 {
		b.WriteString("\n   Best food sources:\n")
		for _, food := range firstN(need.FoodSources, 5) {
			fmt.Fprintf(&b, "      - %s\n", food)
		}
	}

	return b.String()
}

// MatchingSymptoms returns the user symptoms related to a need by
// bidirectional case-insensitive substring match against its marker tags.
func MatchingSymptoms(need model.NutrientNeed, symptoms []string) []string {
	var matching []string
	for _, symptom := range symptoms {
		symptomLower := strings.ToLower(symptom)
		for _, marker := range need.RelatedMarkers {
			markerLower := strings.ToLower(marker)
			if strings.Contains(markerLower, symptomLower) || strings.Contains(symptomLower, markerLower) {
				matching = append(matching, symptom)
				break
			}
		}
	}
	return matching
}

func firstN(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}
