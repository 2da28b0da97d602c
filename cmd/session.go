package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/eatwell/nourish-cli/internal/assistant"
	"github.com/eatwell/nourish-cli/internal/explain"
	"github.com/eatwell/nourish-cli/internal/model"
)

// session is the interactive loop behind the ask command. Known commands are
// answered from the pipeline result; anything else goes to the assistant.
type session struct {
	result    model.PipelineResult
	assistant *assistant.Assistant
	in        io.Reader
	out       io.Writer
}

func (s *session) run(ctx context.Context) {
	fmt.Fprintln(s.out, "\n"+strings.Repeat("=", 60))
	fmt.Fprintln(s.out, "  INTERACTIVE FEEDBACK SESSION")
	fmt.Fprintln(s.out, strings.Repeat("=", 60))
	name := s.result.Profile.Name
	if name == "" {
		name = s.result.Profile.UserID
	}
	fmt.Fprintf(s.out, "\n  Welcome, %s!\n", name)
	fmt.Fprintln(s.out, "  Ask me about your personalized nutrition recommendations.")
	fmt.Fprintln(s.out, "  Type 'help' for commands or 'why [item]' to learn more.")
	fmt.Fprintln(s.out, "  Type 'quit' to exit.")

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, "\nask > ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out, "\nSession ended. Goodbye!")
			return
		}

		keepGoing, response := s.dispatch(ctx, scanner.Text())
		if response != "" {
			fmt.Fprintln(s.out, response)
		}
		if !keepGoing {
			return
		}
	}
}

// dispatch handles one line of input and reports whether the session should
// continue.
func (s *session) dispatch(ctx context.Context, input string) (bool, string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return true, "Type 'help' for available commands."
	}

	parts := strings.Fields(input)
	command := strings.ToLower(parts[0])
	arg := strings.Join(parts[1:], " ")

	switch command {
	case "quit", "exit", "q":
		return false, "Goodbye! Eat well."
	case "help":
		return true, helpText
	case "why":
		if arg == "" {
			return true, "Usage: why [item name]. Example: 'why spinach'"
		}
		return true, explain.ExplainItem(s.result.Profile, s.result.Needs, s.result.Plan, arg)
	case "explain":
		if arg == "" {
			return true, "Usage: explain [nutrient]. Example: 'explain B12'"
		}
		return true, explain.ExplainNeed(s.result.Profile, s.result.Needs, arg)
	case "list":
		return true, s.listItems()
	case "nutrients":
		return true, s.listNutrients()
	case "markers":
		return true, s.markersAnalysis()
	case "budget":
		return true, s.budgetBreakdown()
	case "stores":
		return true, s.storeTips()
	}

	// Bare item name works like "why <item>"; everything else goes to the
	// assistant.
	if explain.FindItem(s.result.Plan, command) != nil {
		return true, explain.ExplainItem(s.result.Profile, s.result.Needs, s.result.Plan, command)
	}
	return true, s.assistant.Respond(ctx, s.result, input)
}

const helpText = `
  why [item]         - Explain why an item was recommended
                       Example: 'why spinach' or 'why eggs'
  list               - Show the shopping list again
  nutrients          - Show your nutrient priority analysis
  explain [nutrient] - Explain a specific nutrient need
                       Example: 'explain B12' or 'explain methylfolate'
  markers            - Show your methylation/lab markers analysis
  budget             - Show budget breakdown
  stores             - Brief store recommendations
  help               - Show this help message
  quit / exit        - Exit the interactive session

  Anything else is answered by the nutrition assistant.`

func (s *session) listItems() string {
	var b strings.Builder
	b.WriteString("\nYOUR SHOPPING LIST:\n")
	for i, item := range s.result.Plan.Items {
		fmt.Fprintf(&b, "   %d. %s - $%.2f\n", i+1, item.Food.Name, item.EstimatedCost)
	}
	return b.String()
}

func (s *session) listNutrients() string {
	var b strings.Builder
	b.WriteString("\nYOUR NUTRIENT PRIORITIES:\n")
	for i, need := range s.result.Needs.Needs {
		fmt.Fprintf(&b, "   %d. %s [Priority %d]\n", i+1, need.Nutrient, need.Priority)
	}
	return b.String()
}

func (s *session) markersAnalysis() string {
	var b strings.Builder
	b.WriteString("\nYOUR METHYLATION & LAB MARKERS ANALYSIS\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")

	lab := s.result.Profile.LabResults
	if lab == nil {
		b.WriteString("\n   No lab results on file.\n")
		b.WriteString("   Recommendations are based on symptoms and history only.")
		return b.String()
	}

	b.WriteString("\nMETHYLATION MARKERS:\n")
	if lab.MTHFRVariant != "" {
		fmt.Fprintf(&b, "   MTHFR: %s\n", lab.MTHFRVariant)
		b.WriteString("      Impact: Affects folate metabolism and methylation cycle\n")
		b.WriteString("      Action: Prioritize methylfolate and B12 from food\n")
	} else {
		b.WriteString("   MTHFR: Not tested/Normal\n")
	}
	if lab.COMTVariant != "" {
		fmt.Fprintf(&b, "   COMT: %s\n", lab.COMTVariant)
		if strings.EqualFold(lab.COMTVariant, "slow") {
			b.WriteString("      Impact: Slower catecholamine breakdown\n")
			b.WriteString("      Action: Support with magnesium, limit stimulants\n")
		}
	}

	b.WriteString("\nKEY LAB VALUES:\n")
	if lab.VitaminB12Level != nil {
		fmt.Fprintf(&b, "   Vitamin B12: %g pg/mL [%s]\n", *lab.VitaminB12Level, labStatus(*lab.VitaminB12Level < 500, "Low", "Adequate"))
	}
	if lab.VitaminDLevel != nil {
		fmt.Fprintf(&b, "   Vitamin D: %g ng/mL [%s]\n", *lab.VitaminDLevel, labStatus(*lab.VitaminDLevel < 30, "Deficient", "Adequate"))
	}
	if lab.IronLevel != nil {
		fmt.Fprintf(&b, "   Iron: %g mcg/dL [%s]\n", *lab.IronLevel, labStatus(*lab.IronLevel < 60, "Low", "Adequate"))
	}
	if lab.CRPLevel != nil {
		fmt.Fprintf(&b, "   CRP (Inflammation): %g mg/L [%s]\n", *lab.CRPLevel, labStatus(*lab.CRPLevel > 1, "Elevated", "Normal"))
	}
	if lab.HomocysteineLevel != nil {
		fmt.Fprintf(&b, "   Homocysteine: %g umol/L [%s]\n", *lab.HomocysteineLevel, labStatus(*lab.HomocysteineLevel > 10, "Elevated", "Normal"))
	}
	if lab.GlucoseFasting != nil {
		status := "Normal"
		switch {
		case *lab.GlucoseFasting >= 126:
			status = "Diabetic range"
		case *lab.GlucoseFasting >= 100:
			status = "Pre-diabetic"
		}
		fmt.Fprintf(&b, "   Fasting Glucose: %g mg/dL [%s]\n", *lab.GlucoseFasting, status)
	}

	b.WriteString("\nHOW THIS SHAPED YOUR RECOMMENDATIONS:\n")
	for _, need := range s.result.Needs.TopPriorities(3) {
		reason := need.Reason
		if len(reason) > 60 {
			reason = reason[:60] + "..."
		}
		fmt.Fprintf(&b, "   - %s: %s\n", need.Nutrient, reason)
	}

	return b.String()
}

func (s *session) budgetBreakdown() string {
	var b strings.Builder
	b.WriteString("\nBUDGET BREAKDOWN\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")

	fin := s.result.Profile.Financials
	fmt.Fprintf(&b, "\n   Weekly Budget: $%.2f\n", fin.WeeklyBudget)
	fmt.Fprintf(&b, "   Budget Tier: %s\n", strings.ToUpper(string(fin.Tier())))
	if fin.SNAPStatus {
		b.WriteString("   SNAP benefits - EBT accepted items prioritized\n")
	}
	if fin.WICStatus {
		b.WriteString("   WIC benefits - eligible items noted\n")
	}

	plan := s.result.Plan
	fmt.Fprintf(&b, "\n   Estimated Shopping Cost: $%.2f\n", plan.TotalEstimatedCost)
	fmt.Fprintf(&b, "   Budget Remaining: $%.2f\n", plan.BudgetRemaining)

	// Cost by priority, in first-seen order.
	var labels []string
	costs := make(map[string]float64)
	for _, item := range plan.Items {
		label := item.Priority.String()
		if _, ok := costs[label]; !ok {
			labels = append(labels, label)
		}
		costs[label] += item.EstimatedCost
	}
	b.WriteString("\n   Cost by Priority:\n")
	for _, label := range labels {
		pct := 0.0
		if plan.TotalEstimatedCost > 0 {
			pct = costs[label] / plan.TotalEstimatedCost * 100
		}
		fmt.Fprintf(&b, "      %s: $%.2f (%.0f%%)\n", strings.ToUpper(label), costs[label], pct)
	}

	if len(plan.PantryItems) > 0 {
		fmt.Fprintf(&b, "\n   Plus %d items from food pantry (FREE)\n", len(plan.PantryItems))
	}

	return b.String()
}

func (s *session) storeTips() string {
	var b strings.Builder
	b.WriteString("\nSTORE RECOMMENDATIONS\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")

	names := make([]string, 0, len(s.result.Plan.StoreVisits))
	for name := range s.result.Plan.StoreVisits {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		items := s.result.Plan.StoreVisits[name]
		total := 0.0
		itemNames := make([]string, 0, 3)
		for i, item := range items {
			total += item.EstimatedCost
			if i < 3 {
				itemNames = append(itemNames, strings.TrimSpace(strings.SplitN(item.Food.Name, "(", 2)[0]))
			}
		}
		fmt.Fprintf(&b, "\n   %s\n", name)
		fmt.Fprintf(&b, "      Items: %s\n", strings.Join(itemNames, ", "))
		fmt.Fprintf(&b, "      Est. Total: $%.2f\n", total)
	}

	return b.String()
}

func labStatus(bad bool, badLabel, okLabel string) string {
	if bad {
		return badLabel
	}
	return okLabel
}
