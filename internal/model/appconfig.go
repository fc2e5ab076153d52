package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default construction settings applied to every calculation
	DefaultStructuralThickness  float64 `json:"default_structural_thickness"`
	DefaultVisibleThickness     float64 `json:"default_visible_thickness"`
	DefaultBackThickness        float64 `json:"default_back_thickness"`
	DefaultDrawerBoardThickness float64 `json:"default_drawer_board_thickness"`
	DefaultDoorGap              float64 `json:"default_door_gap"`
	DefaultShelfFrontClearance  float64 `json:"default_shelf_front_clearance"`
	DefaultSlideClearance       float64 `json:"default_slide_clearance"`
	DefaultProfile              string  `json:"default_profile"` // selection profile name

	// Purchasing
	EdgeWastePercent  float64 `json:"edge_waste_percent"`
	BoardWastePercent float64 `json:"board_waste_percent"`

	// Application preferences
	RecentJobs []string `json:"recent_jobs"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultStructuralThickness:  defaults.StructuralThickness,
		DefaultVisibleThickness:     defaults.VisibleThickness,
		DefaultBackThickness:        defaults.BackThickness,
		DefaultDrawerBoardThickness: defaults.DrawerBoardThickness,
		DefaultDoorGap:              defaults.DoorGap,
		DefaultShelfFrontClearance:  defaults.ShelfFrontClearance,
		DefaultSlideClearance:       defaults.SlideClearance,
		DefaultProfile:              DefaultProfileName,
		EdgeWastePercent:            10,
		BoardWastePercent:           15,
		RecentJobs:                  []string{},
	}
}

// ApplyToSettings copies the default values from AppConfig into a CalcSettings struct.
// Zero values are skipped so an older config file does not zero out thicknesses.
func (c AppConfig) ApplyToSettings(s *CalcSettings) {
	apply := func(dst *float64, v float64) {
		if v > 0 {
			*dst = v
		}
	}
	apply(&s.StructuralThickness, c.DefaultStructuralThickness)
	apply(&s.VisibleThickness, c.DefaultVisibleThickness)
	apply(&s.BackThickness, c.DefaultBackThickness)
	apply(&s.DrawerBoardThickness, c.DefaultDrawerBoardThickness)
	apply(&s.DoorGap, c.DefaultDoorGap)
	apply(&s.ShelfFrontClearance, c.DefaultShelfFrontClearance)
	apply(&s.SlideClearance, c.DefaultSlideClearance)
}

// AddRecentJob records a job file path, most recent first, keeping at most 10 entries.
func (c *AppConfig) AddRecentJob(path string) {
	jobs := []string{path}
	for _, j := range c.RecentJobs {
		if j != path {
			jobs = append(jobs, j)
		}
	}
	if len(jobs) > 10 {
		jobs = jobs[:10]
	}
	c.RecentJobs = jobs
}
