// Package analyzer turns a user profile into a prioritized nutrient need
// list. It runs a fixed battery of independent rule groups (genetic markers,
// lab value bands, symptoms, family history), filters food sources against
// allergies, then consolidates duplicate nutrients into one entry each.
package analyzer

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/eatwell/nourish-cli/internal/catalog"
	"github.com/eatwell/nourish-cli/internal/model"
)

// Analyzer evaluates profiles against the reference catalog. Safe for
// concurrent use; it holds only read-only reference data.
type Analyzer struct {
	cat *catalog.Catalog
}

// New returns an Analyzer backed by the given catalog.
func New(cat *catalog.Catalog) *Analyzer {
	return &Analyzer{cat: cat}
}

// NoLabResultsWarning is emitted when the profile carries no lab record.
const NoLabResultsWarning = "No lab results provided - recommendations based on symptoms and history only"

// Analyze runs every rule group, applies allergy filtering, and returns the
// consolidated, priority-sorted need list. An empty profile is not an error;
// it yields an empty list plus the no-labs advisory.
func (a *Analyzer) Analyze(profile model.Profile) model.NeedList {
	var needs []model.NutrientNeed
	var warnings []string

	if profile.LabResults != nil {
		needs = append(needs, a.geneticMarkerNeeds(*profile.LabResults)...)
		needs = append(needs, a.vitaminLevelNeeds(*profile.LabResults)...)
		needs = append(needs, a.inflammationNeeds(*profile.LabResults)...)
		needs = append(needs, a.metabolicNeeds(*profile.LabResults)...)
	} else {
		warnings = append(warnings, NoLabResultsWarning)
	}

	needs = append(needs, a.symptomNeeds(profile.Medical)...)
	needs = append(needs, a.familyHistoryNeeds(profile.Medical)...)

	needs, allergyWarnings := FilterAllergens(needs, profile.Medical.KnownAllergies)
	warnings = append(warnings, allergyWarnings...)

	consolidated := Consolidate(needs)
	sort.SliceStable(consolidated, func(i, j int) bool {
		return consolidated[i].Priority < consolidated[j].Priority
	})

	zap.L().Info("need analysis complete",
		zap.String("user_id", profile.UserID),
		zap.Int("raw_needs", len(needs)),
		zap.Int("consolidated_needs", len(consolidated)),
		zap.Int("warnings", len(warnings)),
	)

	return model.NeedList{
		UserID:   profile.UserID,
		Needs:    consolidated,
		Warnings: warnings,
	}
}

// FilterAllergens removes any food source whose name contains an allergen
// substring (case-insensitive). A need whose source list empties is kept,
// with an advisory returned alongside. The filter is idempotent.
func FilterAllergens(needs []model.NutrientNeed, allergies []string) ([]model.NutrientNeed, []string) {
	if len(allergies) == 0 {
		return needs, nil
	}

	lowered := make([]string, len(allergies))
	for i, a := range allergies {
		lowered[i] = strings.ToLower(a)
	}

	var warnings []string
	out := make([]model.NutrientNeed, len(needs))
	for i, need := range needs {
		var safe []string
		for _, source := range need.FoodSources {
			sourceLower := strings.ToLower(source)
			conflict := false
			for _, allergen := range lowered {
				if strings.Contains(sourceLower, allergen) {
					conflict = true
					break
				}
			}
			if !conflict {
				safe = append(safe, source)
			}
		}
		need.FoodSources = safe
		out[i] = need
		if len(safe) == 0 {
			warnings = append(warnings, "Limited food sources for "+need.Nutrient+" due to allergies")
		}
	}
	return out, warnings
}

// Consolidate merges duplicate nutrients into one entry per name: the
// numerically lowest priority wins, marker lists are unioned in first-seen
// order, and the discarded entry's rationale is concatenated onto the kept
// one. Insertion order is preserved so equal-priority ties stay stable.
func Consolidate(needs []model.NutrientNeed) []model.NutrientNeed {
	index := make(map[string]int, len(needs))
	var out []model.NutrientNeed

	for _, need := range needs {
		i, seen := index[need.Nutrient]
		if !seen {
			index[need.Nutrient] = len(out)
			out = append(out, need)
			continue
		}

		existing := out[i]
		if need.Priority < existing.Priority {
			merged := need
			merged.Reason = need.Reason + "; Also: " + existing.Reason
			merged.RelatedMarkers = unionMarkers(existing.RelatedMarkers, need.RelatedMarkers)
			out[i] = merged
		} else {
			existing.Reason = existing.Reason + "; Also: " + need.Reason
			existing.RelatedMarkers = unionMarkers(existing.RelatedMarkers, need.RelatedMarkers)
			out[i] = existing
		}
	}
	return out
}

func unionMarkers(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, m := range a {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	for _, m := range b {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}
