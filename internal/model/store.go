package model

// StoreType categorizes a food resource.
type StoreType string

const (
	StoreGrocery       StoreType = "grocery"
	StoreFoodPantry    StoreType = "food_pantry"
	StoreFarmersMarket StoreType = "farmers_market"
	StoreDiscount      StoreType = "discount"
	StoreSpecialty     StoreType = "specialty"
)

// InventoryLevel describes how well-stocked a store typically is.
type InventoryLevel string

const (
	InventoryHigh   InventoryLevel = "high"
	InventoryMedium InventoryLevel = "medium"
	InventoryLow    InventoryLevel = "low"
)

// TravelMethod is the mode chosen for reaching a store.
type TravelMethod string

const (
	TravelWalk    TravelMethod = "walk"
	TravelTransit TravelMethod = "transit"
	TravelDrive   TravelMethod = "drive"
)

// Store is an immutable catalog entry for a nearby food resource.
// PriceTier runs 1 (cheapest) to 5 (priciest).
type Store struct {
	Name           string         `json:"name"`
	Type           StoreType      `json:"type"`
	Distance       float64        `json:"distance"`
	SNAPAccepted   bool           `json:"snap_accepted"`
	WICAccepted    bool           `json:"wic_accepted"`
	InventoryLevel InventoryLevel `json:"inventory_level"`
	PriceTier      int            `json:"price_tier"`
	SpecialtyItems []string       `json:"specialty_items,omitempty"`
	Hours          string         `json:"hours,omitempty"`
}

// AssistanceFriendly reports whether the store accepts either benefit
// program.
func (s Store) AssistanceFriendly() bool {
	return s.SNAPAccepted || s.WICAccepted
}

// TravelFeasibility is the computed (store, user) pairing: reachability,
// chosen mode, estimated minutes, a 0..1 accessibility score, and advisory
// notes. Recomputed fresh per request.
type TravelFeasibility struct {
	Store              Store        `json:"store"`
	IsAccessible       bool         `json:"is_accessible"`
	TravelMethod       TravelMethod `json:"travel_method"`
	EstimatedMinutes   int          `json:"estimated_minutes"`
	AccessibilityScore float64      `json:"accessibility_score"`
	Notes              []string     `json:"notes,omitempty"`
}

// ResourceMap is the scored store landscape for one user.
// AccessibleStores is sorted descending by accessibility score with distance
// as tie-break; FoodPantries and BenefitStores are filtered views of it.
type ResourceMap struct {
	UserLocation     string              `json:"user_location"`
	AccessibleStores []TravelFeasibility `json:"accessible_stores"`
	FoodPantries     []TravelFeasibility `json:"food_pantries"`
	BenefitStores    []TravelFeasibility `json:"benefit_stores"`
	AllStores        []Store             `json:"all_stores"`
}
