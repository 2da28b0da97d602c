package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoresForLocation_RegionalExtension(t *testing.T) {
	c := New()

	base := c.StoresForLocation("99999")
	assert.Len(t, base, len(c.DefaultStores))

	atlanta := c.StoresForLocation("30312")
	require.Len(t, atlanta, len(c.DefaultStores)+1)
	assert.Equal(t, "Publix", atlanta[len(atlanta)-1].Name)
}

func TestStoresForLocation_ShortCode(t *testing.T) {
	c := New()
	// a bare prefix matches the same region as a full code
	assert.Len(t, c.StoresForLocation("303"), len(c.DefaultStores)+1)
}

func TestFoodsForNutrient_PriceSorted(t *testing.T) {
	c := New()

	foods := c.FoodsForNutrient(NutrientB12)
	require.NotEmpty(t, foods)
	assert.Equal(t, "Sardines (canned)", foods[0].Name)
	for i := 1; i < len(foods); i++ {
		assert.LessOrEqual(t, foods[i-1].Price, foods[i].Price)
	}
}

func TestFoodsForNutrient_Unknown(t *testing.T) {
	c := New()
	assert.Empty(t, c.FoodsForNutrient("Unobtainium"))
}

func TestFoodByKey(t *testing.T) {
	c := New()

	oats, ok := c.FoodByKey("oats")
	require.True(t, ok)
	assert.Equal(t, "Oats (rolled)", oats.Name)

	_, ok = c.FoodByKey("nonexistent")
	assert.False(t, ok)
}

func TestAlternativeFor(t *testing.T) {
	c := New()

	alt, ok := c.AlternativeFor("kale")
	require.True(t, ok)
	assert.Equal(t, "Spinach (frozen bag)", alt.Name)
	// cheaper than the original
	kale, _ := c.FoodByKey("kale")
	assert.Less(t, alt.Price, kale.Price)

	_, ok = c.AlternativeFor("oats")
	assert.False(t, ok)
}

func TestLoadStoresFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stores.json")
	fixture := `[{"name":"Test Mart","type":"grocery","distance":1.0,"snap_accepted":true,"inventory_level":"high","price_tier":2}]`
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o644))

	c := New()
	require.NoError(t, c.LoadStoresFromFile(path))
	require.Len(t, c.DefaultStores, 1)
	assert.Equal(t, "Test Mart", c.DefaultStores[0].Name)
}

func TestLoadFoodsFromFile_Reindexes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foods.json")
	fixture := `[{"key":"tofu","name":"Tofu","category":"protein","price":2.25,"snap_eligible":true,"nutrients":["Magnesium"]}]`
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o644))

	c := New()
	require.NoError(t, c.LoadFoodsFromFile(path))

	tofu, ok := c.FoodByKey("tofu")
	require.True(t, ok)
	assert.Equal(t, 2.25, tofu.Price)

	_, ok = c.FoodByKey("oats")
	assert.False(t, ok)
}

func TestLoadStoresFromFile_MissingFile(t *testing.T) {
	c := New()
	assert.Error(t, c.LoadStoresFromFile(filepath.Join(t.TempDir(), "absent.json")))
}

func TestLabRanges_CoreMarkers(t *testing.T) {
	c := New()
	for _, key := range []string{"vitamin_b12", "vitamin_d", "iron", "crp", "homocysteine", "glucose_fasting"} {
		_, ok := c.LabRanges[key]
		assert.True(t, ok, key)
	}
}
