package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/eatwell/nourish-cli/internal/catalog"
	"github.com/eatwell/nourish-cli/internal/model"
)

// newCatalog builds the reference catalog, applying any fixture overrides
// from config.
func newCatalog() (*catalog.Catalog, error) {
	cat := catalog.New()

	if cfg.Catalog.StoresFile != "" {
		if err := cat.LoadStoresFromFile(cfg.Catalog.StoresFile); err != nil {
			return nil, err
		}
		zap.L().Info("loaded store fixture", zap.String("path", cfg.Catalog.StoresFile))
	}
	if cfg.Catalog.FoodsFile != "" {
		if err := cat.LoadFoodsFromFile(cfg.Catalog.FoodsFile); err != nil {
			return nil, err
		}
		zap.L().Info("loaded food fixture", zap.String("path", cfg.Catalog.FoodsFile))
	}

	return cat, nil
}

// loadProfile decodes a profile from a JSON file.
func loadProfile(path string) (model.Profile, error) {
	var profile model.Profile

	data, err := os.ReadFile(path)
	if err != nil {
		return profile, eris.Wrap(err, "read profile")
	}
	if err := json.Unmarshal(data, &profile); err != nil {
		return profile, eris.Wrap(err, "unmarshal profile")
	}

	return profile, nil
}

// demoProfile is a representative low-budget SNAP household with an MTHFR
// variant and several out-of-range labs, used by --demo runs.
func demoProfile() model.Profile {
	income := 28000.0
	b12 := 280.0
	vitD := 18.0
	iron := 50.0
	crp := 3.5
	homocysteine := 14.0
	glucose := 105.0

	return model.Profile{
		UserID: "sample_user_001",
		Name:   "Sample User",
		Financials: model.Financials{
			WeeklyBudget: 60.0,
			SNAPStatus:   true,
			AnnualIncome: &income,
		},
		Logistics: model.Logistics{
			LocationCode:      "30312",
			HasVehicle:        false,
			HasPublicTransit:  true,
			TripsPerWeek:      2,
			MaxTravelDistance: 5.0,
		},
		Medical: model.Medical{
			FamilyHistory:      []string{"diabetes", "hypertension"},
			PreviousConditions: []string{"anemia"},
			CurrentSymptoms:    []string{"fatigue", "brain_fog"},
			KnownAllergies:     []string{"shellfish"},
		},
		LabResults: &model.LabResults{
			MTHFRVariant:      "C677T",
			VitaminB12Level:   &b12,
			VitaminDLevel:     &vitD,
			IronLevel:         &iron,
			CRPLevel:          &crp,
			HomocysteineLevel: &homocysteine,
			GlucoseFasting:    &glucose,
		},
	}
}
