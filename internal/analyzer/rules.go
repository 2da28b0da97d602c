package analyzer

import (
	"fmt"
	"strings"

	"github.com/eatwell/nourish-cli/internal/catalog"
	"github.com/eatwell/nourish-cli/internal/model"
)

// geneticMarkerNeeds evaluates methylation-related variants. High-impact
// MTHFR variants emit two priority-1 needs; A1298C one priority-2 need;
// a slow COMT variant one priority-2 magnesium need.
func (a *Analyzer) geneticMarkerNeeds(lab model.LabResults) []model.NutrientNeed {
	var needs []model.NutrientNeed

	if lab.MTHFRVariant != "" {
		variant := strings.ToUpper(lab.MTHFRVariant)

		switch variant {
		case "C677T", "COMPOUND", "HOMOZYGOUS":
			needs = append(needs, model.NutrientNeed{
				Nutrient:       catalog.NutrientMethylfolate,
				Priority:       1,
				Reason:         fmt.Sprintf("MTHFR %s variant detected - reduced ability to convert folic acid to active methylfolate", variant),
				RelatedMarkers: []string{"MTHFR", "homocysteine"},
				FoodSources:    a.cat.FoodSources(catalog.NutrientMethylfolate),
			})
			needs = append(needs, model.NutrientNeed{
				Nutrient:       catalog.NutrientB12,
				Priority:       1,
				Reason:         fmt.Sprintf("MTHFR %s requires adequate B12 for proper methylation cycle function", variant),
				RelatedMarkers: []string{"MTHFR", "methylation"},
				FoodSources:    a.cat.FoodSources(catalog.NutrientB12),
			})
		case "A1298C":
			needs = append(needs, model.NutrientNeed{
				Nutrient:       catalog.NutrientMethylfolate,
				Priority:       2,
				Reason:         "MTHFR A1298C variant - moderately reduced folate metabolism",
				RelatedMarkers: []string{"MTHFR", "BH4"},
				FoodSources:    a.cat.FoodSources(catalog.NutrientMethylfolate),
			})
		}
	}

	if strings.EqualFold(lab.COMTVariant, "slow") {
		needs = append(needs, model.NutrientNeed{
			Nutrient:       catalog.NutrientMagnesium,
			Priority:       2,
			Reason:         "Slow COMT variant - magnesium supports stress response and catecholamine metabolism",
			RelatedMarkers: []string{"COMT", "catecholamines"},
			FoodSources:    a.cat.FoodSources(catalog.NutrientMagnesium),
		})
	}

	return needs
}

// vitaminLevelNeeds compares B12, vitamin D, and iron against their
// reference bands: below the deficiency cutoff emits priority 1, below the
// optimal floor priority 2, otherwise nothing. Nil values are skipped.
func (a *Analyzer) vitaminLevelNeeds(lab model.LabResults) []model.NutrientNeed {
	var needs []model.NutrientNeed

	if lab.VitaminB12Level != nil {
		level := *lab.VitaminB12Level
		ref := a.cat.LabRanges["vitamin_b12"]

		if level < ref.Low {
			needs = append(needs, model.NutrientNeed{
				Nutrient:       catalog.NutrientB12,
				Priority:       1,
				Reason:         fmt.Sprintf("B12 level (%g %s) is deficient - urgent supplementation recommended", level, ref.Unit),
				RelatedMarkers: []string{"B12", "MCV", "homocysteine"},
				FoodSources:    a.cat.FoodSources(catalog.NutrientB12),
			})
		} else if level < ref.OptimalLow {
			needs = append(needs, model.NutrientNeed{
				Nutrient:       catalog.NutrientB12,
				Priority:       2,
				Reason:         fmt.Sprintf("B12 level (%g %s) is suboptimal - dietary increase recommended", level, ref.Unit),
				RelatedMarkers: []string{"B12"},
				FoodSources:    a.cat.FoodSources(catalog.NutrientB12),
			})
		}
	}

	if lab.VitaminDLevel != nil {
		level := *lab.VitaminDLevel
		ref := a.cat.LabRanges["vitamin_d"]

		if level < ref.Low {
			needs = append(needs, model.NutrientNeed{
				Nutrient:       catalog.NutrientVitaminD,
				Priority:       1,
				Reason:         fmt.Sprintf("Vitamin D level (%g %s) is deficient - significant health impact", level, ref.Unit),
				RelatedMarkers: []string{"25-OH Vitamin D", "calcium", "PTH"},
				FoodSources:    a.cat.FoodSources(catalog.NutrientVitaminD),
			})
		} else if level < ref.OptimalLow {
			needs = append(needs, model.NutrientNeed{
				Nutrient:       catalog.NutrientVitaminD,
				Priority:       2,
				Reason:         fmt.Sprintf("Vitamin D level (%g %s) is insufficient", level, ref.Unit),
				RelatedMarkers: []string{"25-OH Vitamin D"},
				FoodSources:    a.cat.FoodSources(catalog.NutrientVitaminD),
			})
		}
	}

	if lab.IronLevel != nil {
		level := *lab.IronLevel
		ref := a.cat.LabRanges["iron"]

		if level < ref.Low {
			needs = append(needs, model.NutrientNeed{
				Nutrient:       catalog.NutrientIron,
				Priority:       1,
				Reason:         fmt.Sprintf("Iron level (%g %s) is low - may cause fatigue and anemia", level, ref.Unit),
				RelatedMarkers: []string{"serum iron", "ferritin", "TIBC"},
				FoodSources:    a.cat.FoodSources(catalog.NutrientIron),
			})
		}
	}

	return needs
}

// inflammationNeeds evaluates CRP and homocysteine. Values above the
// elevated cutoff emit priority 2, above the high cutoff priority 1.
func (a *Analyzer) inflammationNeeds(lab model.LabResults) []model.NutrientNeed {
	var needs []model.NutrientNeed

	if lab.CRPLevel != nil {
		level := *lab.CRPLevel
		ref := a.cat.LabRanges["crp"]

		if level > ref.Elevated {
			priority := 2
			if level > ref.High {
				priority = 1
			}
			needs = append(needs, model.NutrientNeed{
				Nutrient:       catalog.NutrientAntiInflam,
				Priority:       priority,
				Reason:         fmt.Sprintf("CRP level (%g %s) indicates systemic inflammation", level, ref.Unit),
				RelatedMarkers: []string{"CRP", "ESR", "inflammation"},
				FoodSources:    a.cat.FoodSources(catalog.NutrientAntiInflam),
			})
			needs = append(needs, model.NutrientNeed{
				Nutrient:       catalog.NutrientOmega3,
				Priority:       priority,
				Reason:         fmt.Sprintf("Omega-3s help reduce inflammation markers like CRP (%g %s)", level, ref.Unit),
				RelatedMarkers: []string{"CRP", "omega-3 index"},
				FoodSources:    a.cat.FoodSources(catalog.NutrientOmega3),
			})
		}
	}

	if lab.HomocysteineLevel != nil {
		level := *lab.HomocysteineLevel
		ref := a.cat.LabRanges["homocysteine"]

		if level > ref.Elevated {
			priority := 2
			if level > ref.High {
				priority = 1
			}
			needs = append(needs, model.NutrientNeed{
				Nutrient:       catalog.NutrientMethylfolate,
				Priority:       priority,
				Reason:         fmt.Sprintf("Homocysteine (%g %s) is elevated - B vitamins help lower it", level, ref.Unit),
				RelatedMarkers: []string{"homocysteine", "cardiovascular risk"},
				FoodSources:    a.cat.FoodSources(catalog.NutrientMethylfolate),
			})
		}
	}

	return needs
}

// metabolicNeeds evaluates fasting glucose. Above the optimal ceiling it
// emits a fiber need (priority 2, or 1 at the prediabetic cutoff and above)
// plus a chromium need one tier lower.
func (a *Analyzer) metabolicNeeds(lab model.LabResults) []model.NutrientNeed {
	var needs []model.NutrientNeed

	if lab.GlucoseFasting != nil {
		level := *lab.GlucoseFasting
		ref := a.cat.LabRanges["glucose_fasting"]

		if level > ref.OptimalHigh {
			priority := 1
			if level < ref.Elevated {
				priority = 2
			}
			needs = append(needs, model.NutrientNeed{
				Nutrient:       catalog.NutrientFiber,
				Priority:       priority,
				Reason:         fmt.Sprintf("Fasting glucose (%g %s) elevated - fiber helps regulate blood sugar", level, ref.Unit),
				RelatedMarkers: []string{"glucose", "HbA1c", "insulin"},
				FoodSources:    a.cat.FoodSources(catalog.NutrientFiber),
			})
			needs = append(needs, model.NutrientNeed{
				Nutrient:       catalog.NutrientChromium,
				Priority:       priority + 1,
				Reason:         fmt.Sprintf("Chromium supports glucose metabolism with elevated fasting glucose (%g)", level),
				RelatedMarkers: []string{"glucose", "insulin sensitivity"},
				FoodSources:    a.cat.FoodSources(catalog.NutrientChromium),
			})
		}
	}

	return needs
}

// symptomRule is one recognized symptom tag and the needs it implies.
type symptomRule struct {
	key   string
	needs func(a *Analyzer) []model.NutrientNeed
}

// symptomRules is declaration-ordered so repeated runs emit needs in the
// same sequence regardless of symptom input order.
var symptomRules = []symptomRule{
	{"fatigue", func(a *Analyzer) []model.NutrientNeed {
		return []model.NutrientNeed{
			{
				Nutrient:       catalog.NutrientIron,
				Priority:       3,
				Reason:         "Fatigue reported - iron deficiency is a common cause",
				RelatedMarkers: []string{"symptoms: fatigue"},
				FoodSources:    a.cat.FoodSources(catalog.NutrientIron),
			},
			{
				Nutrient:       catalog.NutrientB12,
				Priority:       3,
				Reason:         "Fatigue reported - B12 supports energy metabolism",
				RelatedMarkers: []string{"symptoms: fatigue"},
				FoodSources:    a.cat.FoodSources(catalog.NutrientB12),
			},
		}
	}},
	{"brain_fog", func(a *Analyzer) []model.NutrientNeed {
		return []model.NutrientNeed{{
			Nutrient:       catalog.NutrientOmega3,
			Priority:       3,
			Reason:         "Brain fog reported - omega-3s support cognitive function",
			RelatedMarkers: []string{"symptoms: brain fog"},
			FoodSources:    a.cat.FoodSources(catalog.NutrientOmega3),
		}}
	}},
	{"joint_pain", func(a *Analyzer) []model.NutrientNeed {
		return []model.NutrientNeed{{
			Nutrient:       catalog.NutrientAntiInflam,
			Priority:       3,
			Reason:         "Joint pain reported - anti-inflammatory foods may help",
			RelatedMarkers: []string{"symptoms: joint pain"},
			FoodSources:    a.cat.FoodSources(catalog.NutrientAntiInflam),
		}}
	}},
	{"anxiety", func(a *Analyzer) []model.NutrientNeed {
		return []model.NutrientNeed{{
			Nutrient:       catalog.NutrientMagnesium,
			Priority:       3,
			Reason:         "Anxiety reported - magnesium supports nervous system calm",
			RelatedMarkers: []string{"symptoms: anxiety"},
			FoodSources:    a.cat.FoodSources(catalog.NutrientMagnesium),
		}}
	}},
	{"weak_immunity", func(a *Analyzer) []model.NutrientNeed {
		return []model.NutrientNeed{{
			Nutrient:       catalog.NutrientVitaminD,
			Priority:       3,
			Reason:         "Immune concerns - Vitamin D is crucial for immune function",
			RelatedMarkers: []string{"symptoms: immunity"},
			FoodSources:    a.cat.FoodSources(catalog.NutrientVitaminD),
		}}
	}},
}

// symptomNeeds matches each reported symptom against the recognized tags by
// substring and emits the mapped priority-3 needs. Unrecognized symptoms are
// inert.
func (a *Analyzer) symptomNeeds(med model.Medical) []model.NutrientNeed {
	var needs []model.NutrientNeed
	for _, symptom := range med.CurrentSymptoms {
		lowered := strings.ToLower(symptom)
		for _, rule := range symptomRules {
			if strings.Contains(lowered, rule.key) {
				needs = append(needs, rule.needs(a)...)
			}
		}
	}
	return needs
}

// familyHistoryNeeds emits preventive priority-4 needs for recognized
// family-history condition tags.
func (a *Analyzer) familyHistoryNeeds(med model.Medical) []model.NutrientNeed {
	var needs []model.NutrientNeed

	history := make([]string, len(med.FamilyHistory))
	for i, h := range med.FamilyHistory {
		history[i] = strings.ToLower(h)
	}
	contains := func(substrings ...string) bool {
		for _, h := range history {
			for _, sub := range substrings {
				if strings.Contains(h, sub) {
					return true
				}
			}
		}
		return false
	}

	if contains("diabetes") {
		needs = append(needs, model.NutrientNeed{
			Nutrient:       catalog.NutrientFiber,
			Priority:       4,
			Reason:         "Family history of diabetes - fiber helps maintain healthy blood sugar",
			RelatedMarkers: []string{"family history: diabetes"},
			FoodSources:    a.cat.FoodSources(catalog.NutrientFiber),
		})
		needs = append(needs, model.NutrientNeed{
			Nutrient:       catalog.NutrientChromium,
			Priority:       4,
			Reason:         "Family history of diabetes - chromium supports glucose metabolism",
			RelatedMarkers: []string{"family history: diabetes"},
			FoodSources:    a.cat.FoodSources(catalog.NutrientChromium),
		})
	}

	if contains("heart", "cardiovascular") {
		needs = append(needs, model.NutrientNeed{
			Nutrient:       catalog.NutrientOmega3,
			Priority:       4,
			Reason:         "Family history of heart disease - omega-3s support cardiovascular health",
			RelatedMarkers: []string{"family history: cardiovascular"},
			FoodSources:    a.cat.FoodSources(catalog.NutrientOmega3),
		})
	}

	if contains("cancer") {
		needs = append(needs, model.NutrientNeed{
			Nutrient:       catalog.NutrientAntioxidants,
			Priority:       4,
			Reason:         "Family history considerations - antioxidants support cellular health",
			RelatedMarkers: []string{"family history: cancer"},
			FoodSources:    a.cat.FoodSources(catalog.NutrientAntioxidants),
		})
	}

	return needs
}
