package model

// FoodItem is an immutable food catalog entry with pricing, benefit
// eligibility, and the nutrients it supplies.
type FoodItem struct {
	Key           string   `json:"key"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Price         float64  `json:"price"`
	SNAPEligible  bool     `json:"snap_eligible"`
	WICEligible   bool     `json:"wic_eligible"`
	Nutrients     []string `json:"nutrients,omitempty"`
	ServingSize   string   `json:"serving_size,omitempty"`
	ShelfLifeDays int      `json:"shelf_life_days,omitempty"`
}

// Provides reports whether the food supplies the named nutrient.
func (f FoodItem) Provides(nutrient string) bool {
	for _, n := range f.Nutrients {
		if n == nutrient {
			return true
		}
	}
	return false
}
