package model

import "strings"

// BudgetTier buckets a weekly budget for planning purposes.
type BudgetTier string

const (
	BudgetVeryLow     BudgetTier = "very_low"
	BudgetLow         BudgetTier = "low"
	BudgetModerate    BudgetTier = "moderate"
	BudgetComfortable BudgetTier = "comfortable"
)

// MobilityLevel summarizes how far a user can practically travel.
type MobilityLevel string

const (
	MobilityHigh     MobilityLevel = "high"
	MobilityModerate MobilityLevel = "moderate"
	MobilityLimited  MobilityLevel = "limited"
)

// Financials holds budget and benefit-program eligibility.
type Financials struct {
	WeeklyBudget float64  `json:"weekly_budget"`
	SNAPStatus   bool     `json:"snap_status"`
	WICStatus    bool     `json:"wic_status"`
	AnnualIncome *float64 `json:"annual_income,omitempty"`
}

// HasAssistance reports whether the user has any benefit program.
func (f Financials) HasAssistance() bool {
	return f.SNAPStatus || f.WICStatus
}

// Tier buckets the weekly budget: <$50 very_low, <$100 low, <$200 moderate,
// otherwise comfortable.
func (f Financials) Tier() BudgetTier {
	switch {
	case f.WeeklyBudget < 50:
		return BudgetVeryLow
	case f.WeeklyBudget < 100:
		return BudgetLow
	case f.WeeklyBudget < 200:
		return BudgetModerate
	default:
		return BudgetComfortable
	}
}

// Logistics holds location and transportation constraints.
type Logistics struct {
	LocationCode      string  `json:"location_code"`
	HasVehicle        bool    `json:"has_vehicle"`
	HasPublicTransit  bool    `json:"has_public_transit"`
	TripsPerWeek      int     `json:"grocery_trips_per_week"`
	MaxTravelDistance float64 `json:"max_travel_distance"`
}

// Mobility classifies the user's transportation access.
func (l Logistics) Mobility() MobilityLevel {
	switch {
	case l.HasVehicle:
		return MobilityHigh
	case l.HasPublicTransit:
		return MobilityModerate
	default:
		return MobilityLimited
	}
}

// DeriveTravelDistance returns the travel radius implied by the
// transportation flags: vehicle 15, transit-only 5, neither 2.
func DeriveTravelDistance(hasVehicle, hasTransit bool) float64 {
	switch {
	case hasVehicle:
		return 15.0
	case hasTransit:
		return 5.0
	default:
		return 2.0
	}
}

// Medical holds history, symptom, and allergy tags. Tags are normalized at
// ingestion; unrecognized tags are inert.
type Medical struct {
	FamilyHistory      []string `json:"family_history"`
	PreviousConditions []string `json:"previous_conditions"`
	CurrentSymptoms    []string `json:"current_symptoms"`
	KnownAllergies     []string `json:"known_allergies"`
	Medications        []string `json:"medications"`
}

// LabResults holds optional genetic markers and biomarkers. Nil fields were
// not tested and are skipped by the analyzer.
type LabResults struct {
	MTHFRVariant      string   `json:"mthfr_variant,omitempty"`
	COMTVariant       string   `json:"comt_variant,omitempty"`
	VitaminB12Level   *float64 `json:"vitamin_b12_level,omitempty"`   // pg/mL
	VitaminDLevel     *float64 `json:"vitamin_d_level,omitempty"`     // ng/mL
	IronLevel         *float64 `json:"iron_level,omitempty"`          // mcg/dL
	FerritinLevel     *float64 `json:"ferritin_level,omitempty"`      // ng/mL
	CRPLevel          *float64 `json:"crp_level,omitempty"`           // mg/L
	HomocysteineLevel *float64 `json:"homocysteine_level,omitempty"`  // umol/L
	GlucoseFasting    *float64 `json:"glucose_fasting,omitempty"`     // mg/dL
	Omega3Index       *float64 `json:"omega3_index,omitempty"`        // percent
}

// Profile is the complete per-run input. Immutable once built.
type Profile struct {
	UserID     string      `json:"user_id"`
	Name       string      `json:"name"`
	Financials Financials  `json:"financials"`
	Logistics  Logistics   `json:"logistics"`
	Medical    Medical     `json:"medical"`
	LabResults *LabResults `json:"lab_results,omitempty"`
}

// NormalizeTag lowercases a free-text tag and replaces spaces with
// underscores so it matches the analyzer's rule keys.
func NormalizeTag(tag string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(tag)), " ", "_")
}

// NormalizeTags normalizes a tag list in place-order, dropping empties.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if n := NormalizeTag(t); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// Normalize applies tag normalization and defaulting to a decoded profile:
// negative budgets reset to the default, trips clamp to 1..7, and a zero
// travel distance is derived from the transportation flags.
func (p *Profile) Normalize() {
	if p.Financials.WeeklyBudget < 0 {
		p.Financials.WeeklyBudget = DefaultWeeklyBudget
	}
	if p.Logistics.TripsPerWeek < 1 {
		p.Logistics.TripsPerWeek = 1
	}
	if p.Logistics.TripsPerWeek > 7 {
		p.Logistics.TripsPerWeek = 7
	}
	if p.Logistics.MaxTravelDistance <= 0 {
		p.Logistics.MaxTravelDistance = DeriveTravelDistance(p.Logistics.HasVehicle, p.Logistics.HasPublicTransit)
	}
	p.Medical.FamilyHistory = NormalizeTags(p.Medical.FamilyHistory)
	p.Medical.PreviousConditions = NormalizeTags(p.Medical.PreviousConditions)
	p.Medical.CurrentSymptoms = NormalizeTags(p.Medical.CurrentSymptoms)
	p.Medical.KnownAllergies = NormalizeTags(p.Medical.KnownAllergies)
	p.Medical.Medications = NormalizeTags(p.Medical.Medications)
}

// DefaultWeeklyBudget substitutes for malformed budget input at ingestion.
const DefaultWeeklyBudget = 75.0
