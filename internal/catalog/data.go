package catalog

import "github.com/eatwell/nourish-cli/internal/model"

// Canonical nutrient names shared by the analyzer rules and the food catalog.
const (
	NutrientB12          = "Vitamin B12"
	NutrientMethylfolate = "Methylfolate"
	NutrientVitaminD     = "Vitamin D"
	NutrientIron         = "Iron"
	NutrientOmega3       = "Omega-3 Fatty Acids"
	NutrientAntiInflam   = "Anti-inflammatory Foods"
	NutrientMagnesium    = "Magnesium"
	NutrientFiber        = "Fiber"
	NutrientAntioxidants = "Antioxidants"
	NutrientChromium     = "Chromium"
)

func defaultLabRanges() map[string]LabRange {
	return map[string]LabRange{
		"vitamin_b12":     {Low: 300, OptimalLow: 500, OptimalHigh: 900, Unit: "pg/mL"},
		"vitamin_d":       {Low: 20, OptimalLow: 40, OptimalHigh: 60, Unit: "ng/mL"},
		"iron":            {Low: 60, OptimalLow: 80, OptimalHigh: 170, Unit: "mcg/dL"},
		"ferritin":        {Low: 30, OptimalLow: 50, OptimalHigh: 150, Unit: "ng/mL"},
		"crp":             {OptimalHigh: 1.0, Elevated: 3.0, High: 10.0, Unit: "mg/L"},
		"homocysteine":    {OptimalHigh: 7, Elevated: 12, High: 15, Unit: "umol/L"},
		"glucose_fasting": {OptimalHigh: 100, Elevated: 125, High: 126, Unit: "mg/dL"},
		"omega3_index":    {Low: 4, OptimalLow: 8, OptimalHigh: 12, Unit: "%"},
	}
}

func defaultNutrientFoodSources() map[string][]string {
	return map[string][]string{
		NutrientB12: {
			"eggs", "fortified cereals", "nutritional yeast", "sardines",
			"beef liver", "clams", "fortified plant milk",
		},
		NutrientMethylfolate: {
			"spinach", "lentils", "asparagus", "broccoli", "avocado",
			"black-eyed peas", "brussels sprouts", "romaine lettuce",
		},
		NutrientVitaminD: {
			"fortified milk", "egg yolks", "salmon", "sardines",
			"fortified orange juice", "mushrooms (UV-exposed)",
		},
		NutrientIron: {
			"spinach", "lentils", "chickpeas", "beef", "fortified cereals",
			"pumpkin seeds", "quinoa", "dark chocolate",
		},
		NutrientOmega3: {
			"salmon", "sardines", "walnuts", "flaxseed", "chia seeds",
			"mackerel", "hemp seeds",
		},
		NutrientAntiInflam: {
			"turmeric", "ginger", "berries", "leafy greens", "fatty fish",
			"olive oil", "tomatoes", "nuts", "green tea",
		},
		NutrientMagnesium: {
			"spinach", "pumpkin seeds", "black beans", "almonds",
			"avocado", "dark chocolate", "quinoa",
		},
		NutrientFiber: {
			"oats", "beans", "lentils", "berries", "broccoli",
			"apples", "whole grains", "chia seeds",
		},
		NutrientAntioxidants: {
			"berries", "dark leafy greens", "pecans", "artichokes",
			"beets", "red cabbage", "dark chocolate",
		},
		NutrientChromium: {
			"broccoli", "grape juice", "whole grains", "beef",
			"green beans", "potatoes",
		},
	}
}

func defaultStores() []model.Store {
	return []model.Store{
		{
			Name: "SaveMart Grocery", Type: model.StoreGrocery, Distance: 1.2,
			SNAPAccepted: true, WICAccepted: true, InventoryLevel: model.InventoryHigh,
			PriceTier: 3, SpecialtyItems: []string{"organic produce", "gluten-free"}, Hours: "7am-10pm",
		},
		{
			Name: "Community Food Pantry", Type: model.StoreFoodPantry, Distance: 0.8,
			InventoryLevel: model.InventoryMedium, PriceTier: 1,
			SpecialtyItems: []string{"canned goods", "bread", "produce"}, Hours: "Mon/Wed/Fri 10am-2pm",
		},
		{
			Name: "Budget Foods", Type: model.StoreDiscount, Distance: 2.5,
			SNAPAccepted: true, InventoryLevel: model.InventoryHigh, PriceTier: 1,
			SpecialtyItems: []string{"bulk items", "frozen foods"}, Hours: "8am-9pm",
		},
		{
			Name: "Fresh Farmers Market", Type: model.StoreFarmersMarket, Distance: 1.8,
			SNAPAccepted: true, WICAccepted: true, InventoryLevel: model.InventoryMedium,
			PriceTier: 2, SpecialtyItems: []string{"local produce", "eggs", "honey"}, Hours: "Sat 8am-1pm",
		},
		{
			Name: "Whole Health Foods", Type: model.StoreSpecialty, Distance: 3.2,
			InventoryLevel: model.InventoryHigh, PriceTier: 5,
			SpecialtyItems: []string{"supplements", "organic", "specialty diet"}, Hours: "9am-8pm",
		},
		{
			Name: "Dollar General", Type: model.StoreDiscount, Distance: 0.5,
			SNAPAccepted: true, InventoryLevel: model.InventoryLow, PriceTier: 2,
			SpecialtyItems: []string{"canned goods", "snacks", "basic staples"}, Hours: "8am-10pm",
		},
		{
			Name: "St. Mary's Food Bank", Type: model.StoreFoodPantry, Distance: 2.1,
			InventoryLevel: model.InventoryHigh, PriceTier: 1,
			SpecialtyItems: []string{"fresh produce", "meat", "dairy"}, Hours: "Tue/Thu 9am-3pm",
		},
		{
			Name: "ALDI", Type: model.StoreDiscount, Distance: 4.0,
			SNAPAccepted: true, WICAccepted: true, InventoryLevel: model.InventoryHigh,
			PriceTier: 1, SpecialtyItems: []string{"produce", "dairy", "frozen", "specialty imports"}, Hours: "9am-8pm",
		},
		{
			Name: "Target", Type: model.StoreGrocery, Distance: 5.5,
			SNAPAccepted: true, WICAccepted: true, InventoryLevel: model.InventoryHigh,
			PriceTier: 3, SpecialtyItems: []string{"organic", "fresh produce", "supplements"}, Hours: "8am-10pm",
		},
		{
			Name: "Neighborhood Co-op", Type: model.StoreSpecialty, Distance: 1.5,
			SNAPAccepted: true, InventoryLevel: model.InventoryMedium, PriceTier: 4,
			SpecialtyItems: []string{"local", "organic", "bulk bins", "specialty"}, Hours: "10am-7pm",
		},
	}
}

func defaultRegionalStores() map[string][]model.Store {
	return map[string][]model.Store{
		"303": {
			{
				Name: "King Soopers", Type: model.StoreGrocery, Distance: 1.0,
				SNAPAccepted: true, WICAccepted: true, InventoryLevel: model.InventoryHigh,
				PriceTier: 3, SpecialtyItems: []string{"organic", "deli", "pharmacy"}, Hours: "6am-11pm",
			},
		},
		"300": {
			{
				Name: "Publix", Type: model.StoreGrocery, Distance: 1.3,
				SNAPAccepted: true, WICAccepted: true, InventoryLevel: model.InventoryHigh,
				PriceTier: 3, SpecialtyItems: []string{"deli", "bakery", "organic"}, Hours: "7am-10pm",
			},
		},
	}
}

func defaultFoods() []model.FoodItem {
	return []model.FoodItem{
		{Key: "spinach", Name: "Spinach (fresh bunch)", Category: "produce", Price: 2.50, SNAPEligible: true, WICEligible: true,
			Nutrients: []string{NutrientIron, NutrientMethylfolate, NutrientMagnesium, NutrientAntiInflam}, ServingSize: "1 bunch", ShelfLifeDays: 5},
		{Key: "spinach_frozen", Name: "Spinach (frozen bag)", Category: "frozen", Price: 1.50, SNAPEligible: true,
			Nutrients: []string{NutrientIron, NutrientMethylfolate, NutrientMagnesium}, ServingSize: "16 oz bag", ShelfLifeDays: 180},
		{Key: "broccoli", Name: "Broccoli", Category: "produce", Price: 1.75, SNAPEligible: true, WICEligible: true,
			Nutrients: []string{NutrientFiber, NutrientChromium, NutrientAntiInflam}, ServingSize: "1 head", ShelfLifeDays: 7},
		{Key: "kale", Name: "Kale", Category: "produce", Price: 2.00, SNAPEligible: true,
			Nutrients: []string{NutrientIron, NutrientAntioxidants, NutrientAntiInflam}, ServingSize: "1 bunch", ShelfLifeDays: 5},

		{Key: "lentils_dry", Name: "Lentils (dry)", Category: "dry goods", Price: 1.50, SNAPEligible: true,
			Nutrients: []string{NutrientIron, NutrientFiber, NutrientMethylfolate}, ServingSize: "1 lb bag", ShelfLifeDays: 365},
		{Key: "black_beans_canned", Name: "Black Beans (canned)", Category: "canned", Price: 0.89, SNAPEligible: true,
			Nutrients: []string{NutrientFiber, NutrientIron, NutrientMagnesium}, ServingSize: "15 oz can", ShelfLifeDays: 730},
		{Key: "chickpeas_canned", Name: "Chickpeas (canned)", Category: "canned", Price: 1.00, SNAPEligible: true,
			Nutrients: []string{NutrientIron, NutrientFiber}, ServingSize: "15 oz can", ShelfLifeDays: 730},

		{Key: "eggs", Name: "Eggs (dozen)", Category: "dairy", Price: 3.50, SNAPEligible: true, WICEligible: true,
			Nutrients: []string{NutrientB12, NutrientVitaminD}, ServingSize: "12 eggs", ShelfLifeDays: 21},
		{Key: "sardines_canned", Name: "Sardines (canned)", Category: "canned", Price: 2.00, SNAPEligible: true,
			Nutrients: []string{NutrientB12, NutrientVitaminD, NutrientOmega3}, ServingSize: "4 oz can", ShelfLifeDays: 1095},
		{Key: "salmon_canned", Name: "Salmon (canned)", Category: "canned", Price: 3.50, SNAPEligible: true,
			Nutrients: []string{NutrientB12, NutrientVitaminD, NutrientOmega3}, ServingSize: "6 oz can", ShelfLifeDays: 1095},
		{Key: "chicken_thighs", Name: "Chicken Thighs", Category: "meat", Price: 4.00, SNAPEligible: true,
			Nutrients: []string{NutrientB12, NutrientIron}, ServingSize: "1 lb", ShelfLifeDays: 2},
		{Key: "beef_liver", Name: "Beef Liver", Category: "meat", Price: 3.00, SNAPEligible: true,
			Nutrients: []string{NutrientB12, NutrientIron, NutrientVitaminD}, ServingSize: "1 lb", ShelfLifeDays: 2},

		{Key: "oats", Name: "Oats (rolled)", Category: "dry goods", Price: 2.50, SNAPEligible: true, WICEligible: true,
			Nutrients: []string{NutrientFiber, NutrientMagnesium}, ServingSize: "42 oz container", ShelfLifeDays: 365},
		{Key: "fortified_cereal", Name: "Fortified Cereal", Category: "dry goods", Price: 3.00, SNAPEligible: true, WICEligible: true,
			Nutrients: []string{NutrientB12, NutrientIron, NutrientMethylfolate}, ServingSize: "12 oz box", ShelfLifeDays: 180},
		{Key: "quinoa", Name: "Quinoa", Category: "dry goods", Price: 5.00, SNAPEligible: true,
			Nutrients: []string{NutrientIron, NutrientMagnesium, NutrientFiber}, ServingSize: "16 oz bag", ShelfLifeDays: 365},

		{Key: "walnuts", Name: "Walnuts", Category: "nuts", Price: 6.00, SNAPEligible: true,
			Nutrients: []string{NutrientOmega3, NutrientMagnesium}, ServingSize: "8 oz bag", ShelfLifeDays: 180},
		{Key: "flaxseed", Name: "Ground Flaxseed", Category: "nuts", Price: 4.00, SNAPEligible: true,
			Nutrients: []string{NutrientOmega3, NutrientFiber}, ServingSize: "16 oz bag", ShelfLifeDays: 180},
		{Key: "chia_seeds", Name: "Chia Seeds", Category: "nuts", Price: 5.50, SNAPEligible: true,
			Nutrients: []string{NutrientOmega3, NutrientFiber}, ServingSize: "12 oz bag", ShelfLifeDays: 365},
		{Key: "pumpkin_seeds", Name: "Pumpkin Seeds", Category: "nuts", Price: 4.50, SNAPEligible: true,
			Nutrients: []string{NutrientIron, NutrientMagnesium}, ServingSize: "8 oz bag", ShelfLifeDays: 180},

		{Key: "turmeric", Name: "Turmeric (ground)", Category: "spices", Price: 3.50, SNAPEligible: true,
			Nutrients: []string{NutrientAntiInflam}, ServingSize: "2 oz jar", ShelfLifeDays: 730},
		{Key: "ginger_root", Name: "Ginger Root", Category: "produce", Price: 1.00, SNAPEligible: true,
			Nutrients: []string{NutrientAntiInflam}, ServingSize: "1 piece", ShelfLifeDays: 21},
		{Key: "berries_frozen", Name: "Mixed Berries (frozen)", Category: "frozen", Price: 3.50, SNAPEligible: true, WICEligible: true,
			Nutrients: []string{NutrientAntioxidants, NutrientAntiInflam, NutrientFiber}, ServingSize: "16 oz bag", ShelfLifeDays: 365},
		{Key: "olive_oil", Name: "Olive Oil (extra virgin)", Category: "oils", Price: 7.00, SNAPEligible: true,
			Nutrients: []string{NutrientAntiInflam, NutrientOmega3}, ServingSize: "16 oz bottle", ShelfLifeDays: 730},

		{Key: "fortified_milk", Name: "Fortified Milk (or plant milk)", Category: "dairy", Price: 3.00, SNAPEligible: true, WICEligible: true,
			Nutrients: []string{NutrientVitaminD, NutrientB12}, ServingSize: "half gallon", ShelfLifeDays: 10},
		{Key: "yogurt", Name: "Yogurt", Category: "dairy", Price: 4.00, SNAPEligible: true, WICEligible: true,
			Nutrients: []string{NutrientB12, NutrientVitaminD}, ServingSize: "32 oz container", ShelfLifeDays: 14},

		{Key: "brown_rice", Name: "Brown Rice", Category: "dry goods", Price: 2.00, SNAPEligible: true,
			Nutrients: []string{NutrientFiber, NutrientMagnesium}, ServingSize: "2 lb bag", ShelfLifeDays: 365},
		{Key: "peanut_butter", Name: "Peanut Butter", Category: "dry goods", Price: 3.00, SNAPEligible: true, WICEligible: true,
			Nutrients: []string{NutrientMagnesium}, ServingSize: "16 oz jar", ShelfLifeDays: 180},
		{Key: "bananas", Name: "Bananas", Category: "produce", Price: 0.50, SNAPEligible: true, WICEligible: true,
			Nutrients: []string{NutrientMagnesium, NutrientFiber}, ServingSize: "per lb", ShelfLifeDays: 5},
	}
}

func defaultBudgetAlternatives() map[string]string {
	return map[string]string{
		"salmon_canned":  "sardines_canned",
		"quinoa":         "brown_rice",
		"walnuts":        "flaxseed",
		"chia_seeds":     "flaxseed",
		"kale":           "spinach_frozen",
		"spinach":        "spinach_frozen",
		"chicken_thighs": "eggs",
	}
}
