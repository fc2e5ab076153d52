package project

import (
	"fmt"
	"time"

	"github.com/piwi3910/ModuleCut/internal/model"
)

// BackupVersion is written into every backup file.
const BackupVersion = "1.0.0"

// BackupData is everything a user keeps in the data directory, in one file.
type BackupData struct {
	Version   string                   `json:"version"`
	CreatedAt string                   `json:"created_at"`
	Config    model.AppConfig          `json:"config"`
	Catalog   model.Catalog            `json:"catalog"`
	Presets   model.PresetStore        `json:"presets"`
	Profiles  []model.SelectionProfile `json:"profiles"`
}

// ExportAllData stamps the backup with the version and the current time and
// writes it to exportPath.
func ExportAllData(exportPath string, backup BackupData) error {
	backup.Version = BackupVersion
	backup.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	if err := writeJSON(exportPath, backup); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// ImportAllData reads a backup file. Nothing is applied; the caller decides
// which parts to restore.
func ImportAllData(importPath string) (BackupData, error) {
	var backup BackupData
	if err := readRequiredJSON(importPath, &backup); err != nil {
		return BackupData{}, fmt.Errorf("failed to read backup file: %w", err)
	}
	if backup.Version == "" {
		return BackupData{}, fmt.Errorf("invalid backup file: missing version field")
	}

	if backup.Config.RecentJobs == nil {
		backup.Config.RecentJobs = []string{}
	}
	if backup.Catalog.Materials == nil {
		backup.Catalog.Materials = []model.Material{}
	}
	if backup.Presets.Presets == nil {
		backup.Presets.Presets = []model.ModulePreset{}
	}
	if backup.Profiles == nil {
		backup.Profiles = []model.SelectionProfile{}
	}
	for i := range backup.Profiles {
		backup.Profiles[i].IsBuiltIn = false
	}
	return backup, nil
}
