package project

import (
	"errors"
	"path/filepath"

	"github.com/piwi3910/ModuleCut/internal/model"
)

// DefaultProfilesPath returns the path of profiles.json in the default directory.
func DefaultProfilesPath() string {
	return filepath.Join(DefaultConfigDir(), "profiles.json")
}

// SaveCustomProfiles writes the user's selection profiles as JSON.
func SaveCustomProfiles(path string, profiles []model.SelectionProfile) error {
	return writeJSON(path, profiles)
}

// LoadCustomProfiles reads the user's selection profiles. A missing file
// yields an empty slice. Loaded profiles are never built-in.
func LoadCustomProfiles(path string) ([]model.SelectionProfile, error) {
	var profiles []model.SelectionProfile
	if _, err := readJSON(path, &profiles); err != nil {
		return nil, err
	}
	if profiles == nil {
		profiles = []model.SelectionProfile{}
	}
	for i := range profiles {
		profiles[i].IsBuiltIn = false
	}
	return profiles, nil
}

// ExportProfile writes a single profile to a file for sharing.
func ExportProfile(path string, profile model.SelectionProfile) error {
	profile.IsBuiltIn = false
	return writeJSON(path, profile)
}

// ImportProfile reads a profile written by ExportProfile. Every role in its
// selection must be a known role.
func ImportProfile(path string) (model.SelectionProfile, error) {
	var profile model.SelectionProfile
	if err := readRequiredJSON(path, &profile); err != nil {
		return model.SelectionProfile{}, err
	}
	if profile.Name == "" {
		return model.SelectionProfile{}, errors.New("imported profile has no name")
	}
	for role := range profile.Selection {
		if _, err := model.ParseRole(string(role)); err != nil {
			return model.SelectionProfile{}, err
		}
	}
	profile.IsBuiltIn = false
	return profile, nil
}
