package catalog

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"

	"github.com/eatwell/nourish-cli/internal/model"
)

// LoadStoresFromFile replaces the default store list with a JSON array of
// model.Store from the given path. Regional extensions are untouched.
func (c *Catalog) LoadStoresFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return eris.Wrap(err, "catalog: read stores fixture")
	}

	var stores []model.Store
	if err := json.Unmarshal(data, &stores); err != nil {
		return eris.Wrap(err, "catalog: unmarshal stores fixture")
	}

	c.DefaultStores = stores
	return nil
}

// LoadFoodsFromFile replaces the food catalog with a JSON array of
// model.FoodItem from the given path and rebuilds the key index.
func (c *Catalog) LoadFoodsFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return eris.Wrap(err, "catalog: read foods fixture")
	}

	var foods []model.FoodItem
	if err := json.Unmarshal(data, &foods); err != nil {
		return eris.Wrap(err, "catalog: unmarshal foods fixture")
	}

	c.Foods = foods
	c.reindex()
	return nil
}
