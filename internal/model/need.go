package model

// NutrientNeed is a prioritized recommendation that the diet should supply
// more of a named nutrient. Priority 1 is most urgent, 5 least. Rules may
// emit the same nutrient independently; consolidation merges them.
type NutrientNeed struct {
	Nutrient       string   `json:"nutrient"`
	Priority       int      `json:"priority"`
	Reason         string   `json:"reason"`
	RelatedMarkers []string `json:"related_markers,omitempty"`
	FoodSources    []string `json:"food_sources,omitempty"`
}

// NeedList is the consolidated output of the need analyzer.
type NeedList struct {
	UserID   string         `json:"user_id"`
	Needs    []NutrientNeed `json:"needs"`
	Warnings []string       `json:"warnings,omitempty"`
}

// TopPriorities returns the first n needs. The list is already sorted
// ascending by priority with insertion order preserved for ties.
func (l NeedList) TopPriorities(n int) []NutrientNeed {
	if n > len(l.Needs) {
		n = len(l.Needs)
	}
	return l.Needs[:n]
}

// FoodSourcesByNutrient groups recommended food sources by nutrient name.
func (l NeedList) FoodSourcesByNutrient() map[string][]string {
	out := make(map[string][]string, len(l.Needs))
	for _, need := range l.Needs {
		out[need.Nutrient] = need.FoodSources
	}
	return out
}
