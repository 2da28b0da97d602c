package model

// ShoppingPriority is the four-level display/fill tier derived from a
// nutrient need's numeric priority.
type ShoppingPriority int

const (
	PriorityCritical ShoppingPriority = 1
	PriorityHigh     ShoppingPriority = 2
	PriorityModerate ShoppingPriority = 3
	PriorityOptional ShoppingPriority = 4
)

// String returns the lower-case tier name.
func (p ShoppingPriority) String() string {
	switch p {
	case PriorityCritical:
		return "critical"
	case PriorityHigh:
		return "high"
	case PriorityModerate:
		return "moderate"
	case PriorityOptional:
		return "optional"
	default:
		return "unknown"
	}
}

// ShoppingPriorityFor maps a nutrient priority to a shopping tier:
// 1 critical, 2 high, 3 or less moderate, else optional.
func ShoppingPriorityFor(nutrientPriority int) ShoppingPriority {
	switch {
	case nutrientPriority == 1:
		return PriorityCritical
	case nutrientPriority == 2:
		return PriorityHigh
	case nutrientPriority <= 3:
		return PriorityModerate
	default:
		return PriorityOptional
	}
}

// ShoppingItem is one line of the curated list. NutrientsAddressed may grow
// after creation when later needs resolve to the same food.
type ShoppingItem struct {
	Food               FoodItem         `json:"food"`
	Quantity           int              `json:"quantity"`
	Priority           ShoppingPriority `json:"priority"`
	PriorityLabel      string           `json:"priority_label"`
	Reason             string           `json:"reason"`
	SuggestedStore     string           `json:"suggested_store,omitempty"`
	EstimatedCost      float64          `json:"estimated_cost"`
	NutrientsAddressed []string         `json:"nutrients_addressed,omitempty"`
}

// AnyStore is the grouping bucket for items with no store assignment.
const AnyStore = "Any Store"

// ShoppingPlan is the budget-bounded output of the plan builder.
// BudgetRemaining may go negative when the cheapest safe option for a need
// still exceeds the remaining budget.
type ShoppingPlan struct {
	UserID             string                    `json:"user_id"`
	Items              []ShoppingItem            `json:"items"`
	TotalEstimatedCost float64                   `json:"total_estimated_cost"`
	BudgetRemaining    float64                   `json:"budget_remaining"`
	PantryItems        []ShoppingItem            `json:"pantry_items,omitempty"`
	StoreVisits        map[string][]ShoppingItem `json:"store_visits,omitempty"`
	ReasoningLog       []string                  `json:"reasoning_log,omitempty"`
}

// PipelineResult bundles the derived entities of one pipeline run.
type PipelineResult struct {
	Profile   Profile      `json:"profile"`
	Needs     NeedList     `json:"needs"`
	Resources ResourceMap  `json:"resources"`
	Plan      ShoppingPlan `json:"plan"`
}
