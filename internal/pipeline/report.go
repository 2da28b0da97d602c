package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/eatwell/nourish-cli/internal/explain"
	"github.com/eatwell/nourish-cli/internal/model"
)

// RenderReport formats a full pipeline result as a plain-text report for
// CLI output: warnings, prioritized needs, reachable stores, and the
// shopping list grouped by priority tier.
func RenderReport(result model.PipelineResult) string {
	var b strings.Builder

	writeHeader(&b, "NUTRIENT PRIORITY ANALYSIS")
	if len(result.Needs.Warnings) > 0 {
		b.WriteString("\nWARNINGS:\n")
		for _, w := range result.Needs.Warnings {
			fmt.Fprintf(&b, "   - %s\n", w)
		}
	}
	b.WriteString("\nPRIORITIZED NUTRIENT NEEDS:\n")
	for i, need := range result.Needs.Needs {
		fmt.Fprintf(&b, "%d. %s [%s]\n", i+1, need.Nutrient, explain.PriorityLabel(need.Priority))
		fmt.Fprintf(&b, "   Reason: %s\n", need.Reason)
		if len(need.RelatedMarkers) > 0 {
			fmt.Fprintf(&b, "   Markers: %s\n", strings.Join(capped(need.RelatedMarkers, 3), ", "))
		}
		if len(need.FoodSources) > 0 {
			fmt.Fprintf(&b, "   Food Sources: %s\n", strings.Join(capped(need.FoodSources, 4), ", "))
		}
	}

	writeHeader(&b, "NEARBY FOOD RESOURCES")
	fmt.Fprintf(&b, "\nLocation: %s\n", result.Resources.UserLocation)
	fmt.Fprintf(&b, "Transportation: %s\n", strings.ToUpper(string(result.Profile.Logistics.Mobility())))
	b.WriteString("\nACCESSIBLE STORES (by score):\n")
	for i, tf := range result.Resources.AccessibleStores {
		if i >= 6 {
			break
		}
		fmt.Fprintf(&b, "   %d. %s [%s]%s\n", i+1, tf.Store.Name, priceSymbol(tf.Store), benefitMarkers(tf.Store))
		fmt.Fprintf(&b, "      Type: %s | Score: %.2f\n", tf.Store.Type, tf.AccessibilityScore)
		fmt.Fprintf(&b, "      %.1f mi via %s (~%d min)\n", tf.Store.Distance, tf.TravelMethod, tf.EstimatedMinutes)
		if len(tf.Notes) > 0 {
			fmt.Fprintf(&b, "      Notes: %s\n", strings.Join(tf.Notes, ", "))
		}
	}

	writeHeader(&b, "CURATED SHOPPING LIST")
	fmt.Fprintf(&b, "\nBudget: $%.2f | Estimated Total: $%.2f | Remaining: $%.2f\n",
		result.Profile.Financials.WeeklyBudget, result.Plan.TotalEstimatedCost, result.Plan.BudgetRemaining)
	if result.Profile.Financials.SNAPStatus {
		b.WriteString("SNAP benefits applied\n")
	}

	if len(result.Plan.PantryItems) > 0 {
		b.WriteString("\nFROM FOOD PANTRY (FREE):\n")
		for _, item := range result.Plan.PantryItems {
			fmt.Fprintf(&b, "   - %s", item.Food.Name)
			if item.SuggestedStore != "" {
				fmt.Fprintf(&b, " (at %s)", item.SuggestedStore)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\nSHOPPING LIST (by priority):\n")
	var current model.ShoppingPriority
	for _, item := range result.Plan.Items {
		if item.Priority != current {
			current = item.Priority
			fmt.Fprintf(&b, "\n   %s:\n", strings.ToUpper(current.String()))
		}
		snapTag := ""
		if item.Food.SNAPEligible {
			snapTag = " [SNAP]"
		}
		fmt.Fprintf(&b, "      - %s - $%.2f%s\n", item.Food.Name, item.EstimatedCost, snapTag)
		if len(item.NutrientsAddressed) > 0 {
			fmt.Fprintf(&b, "        Nutrients: %s\n", strings.Join(capped(item.NutrientsAddressed, 3), ", "))
		}
		if item.SuggestedStore != "" {
			fmt.Fprintf(&b, "        Get at: %s\n", item.SuggestedStore)
		}
	}

	if len(result.Plan.StoreVisits) > 1 {
		b.WriteString("\nSUGGESTED STORE VISITS:\n")
		for _, store := range sortedStoreNames(result.Plan.StoreVisits) {
			items := result.Plan.StoreVisits[store]
			total := 0.0
			for _, i := range items {
				total += i.EstimatedCost
			}
			fmt.Fprintf(&b, "   %s: %d items (~$%.2f)\n", store, len(items), total)
		}
	}

	return b.String()
}

func writeHeader(b *strings.Builder, title string) {
	b.WriteString("\n" + strings.Repeat("=", 60) + "\n")
	fmt.Fprintf(b, "  %s\n", title)
	b.WriteString(strings.Repeat("=", 60) + "\n")
}

func priceSymbol(s model.Store) string {
	if s.Type == model.StoreFoodPantry {
		return "FREE"
	}
	return strings.Repeat("$", s.PriceTier)
}

func benefitMarkers(s model.Store) string {
	var out string
	if s.SNAPAccepted {
		out += " [SNAP]"
	}
	if s.WICAccepted {
		out += " [WIC]"
	}
	return out
}

func capped(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}

func sortedStoreNames(visits map[string][]model.ShoppingItem) []string {
	names := make([]string, 0, len(visits))
	for name := range visits {
		names = append(names, name)
	}
	// Deterministic output; map iteration order is not.
	sort.Strings(names)
	return names
}
