package project

import (
	"path/filepath"

	"github.com/piwi3910/ModuleCut/internal/model"
)

// DefaultPresetPath returns the path of presets.json in the default directory.
func DefaultPresetPath() string {
	return filepath.Join(DefaultConfigDir(), "presets.json")
}

// SavePresets writes the preset store as JSON.
func SavePresets(path string, store model.PresetStore) error {
	return writeJSON(path, store)
}

// LoadPresets reads a preset store. A missing file yields an empty store;
// factory presets are only written by an explicit init.
func LoadPresets(path string) (model.PresetStore, error) {
	store := model.NewPresetStore()
	if _, err := readJSON(path, &store); err != nil {
		return model.PresetStore{}, err
	}
	if store.Presets == nil {
		store.Presets = []model.ModulePreset{}
	}
	return store, nil
}
