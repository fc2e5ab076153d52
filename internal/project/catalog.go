package project

import (
	"path/filepath"

	"github.com/piwi3910/ModuleCut/internal/model"
)

// DefaultCatalogPath returns the path of catalog.json in the default directory.
func DefaultCatalogPath() string {
	return filepath.Join(DefaultConfigDir(), "catalog.json")
}

// SaveCatalog writes the catalog as JSON.
func SaveCatalog(path string, catalog model.Catalog) error {
	return writeJSON(path, catalog)
}

// LoadCatalog reads the catalog at path. When the file does not exist the
// default catalog is written there and returned.
func LoadCatalog(path string) (model.Catalog, error) {
	var catalog model.Catalog
	found, err := readJSON(path, &catalog)
	if err != nil {
		return model.Catalog{}, err
	}
	if !found {
		catalog = model.DefaultCatalog()
		return catalog, SaveCatalog(path, catalog)
	}
	if catalog.Materials == nil {
		catalog.Materials = []model.Material{}
	}
	return catalog, nil
}

// ImportCatalog merges the materials of a catalog file into an existing
// catalog and reports how many were added. Materials without an ID or whose
// ID is already present are skipped.
func ImportCatalog(path string, existing model.Catalog) (model.Catalog, int, error) {
	var imported model.Catalog
	if err := readRequiredJSON(path, &imported); err != nil {
		return existing, 0, err
	}

	ids := make(map[string]bool, len(existing.Materials))
	for _, m := range existing.Materials {
		ids[m.ID] = true
	}

	added := 0
	for _, m := range imported.Materials {
		if m.ID == "" || ids[m.ID] {
			continue
		}
		existing.Materials = append(existing.Materials, m)
		ids[m.ID] = true
		added++
	}
	return existing, added, nil
}
