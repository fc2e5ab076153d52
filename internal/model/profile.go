package model

// SelectionProfile is a named set of role-to-material bindings used to fill the
// component selection of new modules.
type SelectionProfile struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Selection   ComponentSelection `json:"selection"`
	IsBuiltIn   bool               `json:"is_built_in"`
}

// Built-in selection profiles. The last one is the fallback.
var SelectionProfiles = []SelectionProfile{
	{
		Name:        "Paraiso Veneer",
		Description: "Veneered MDF fronts with matching ABS edge band",
		IsBuiltIn:   true,
		Selection: ComponentSelection{
			RoleStructural:   "mat-1",
			RoleVisible:      "mat-10",
			RoleBack:         "mat-8",
			RoleDrawerBoard:  "mat-1",
			RoleEdge:         "mat-15",
			RoleHinge:        "mat-17",
			RoleSlide:        "mat-16",
			RoleRod:          "mat-36",
			RoleRodSupport:   "mat-38",
			RoleHandle:       "mat-19",
			RoleGlassProfile: "mat-63",
			RoleGlassPanel:   "mat-67",
			RoleScrews:       "mat-22",
			RoleScrewsShort:  "mat-23",
			RoleGlue:         "mat-26",
			RoleFilm:         "mat-66",
			RoleLeg:          "mat-21",
		},
	},
	{
		Name:        "Premium Hardware",
		Description: "White melamine with soft-close hinges and runners",
		IsBuiltIn:   true,
		Selection: ComponentSelection{
			RoleStructural:   "mat-1",
			RoleVisible:      "mat-1",
			RoleBack:         "mat-8",
			RoleDrawerBoard:  "mat-1",
			RoleEdge:         "mat-14",
			RoleHinge:        "mat-48",
			RoleSlide:        "mat-50",
			RoleRod:          "mat-36",
			RoleRodSupport:   "mat-38",
			RoleHandle:       "mat-60",
			RoleGlassProfile: "mat-63",
			RoleGlassPanel:   "mat-67",
			RoleScrews:       "mat-22",
			RoleScrewsShort:  "mat-23",
			RoleGlue:         "mat-26",
			RoleFilm:         "mat-66",
			RoleLeg:          "mat-21",
		},
	},
	{
		Name:        "White Melamine",
		Description: "18mm white melamine carcass and fronts, standard hardware",
		IsBuiltIn:   true,
		Selection: ComponentSelection{
			RoleStructural:   "mat-1",
			RoleVisible:      "mat-1",
			RoleBack:         "mat-8",
			RoleDrawerBoard:  "mat-1",
			RoleEdge:         "mat-12",
			RoleHinge:        "mat-17",
			RoleSlide:        "mat-16",
			RoleRod:          "mat-36",
			RoleRodSupport:   "mat-38",
			RoleHandle:       "mat-19",
			RoleGlassProfile: "mat-63",
			RoleGlassPanel:   "mat-67",
			RoleScrews:       "mat-22",
			RoleScrewsShort:  "mat-23",
			RoleGlue:         "mat-26",
			RoleFilm:         "mat-66",
			RoleLeg:          "mat-21",
		},
	},
}

// DefaultProfileName is the profile used when none is configured.
const DefaultProfileName = "White Melamine"

// GetSelectionProfile returns a built-in profile by name, or the White Melamine
// profile if not found. The returned selection is a copy.
func GetSelectionProfile(name string) SelectionProfile {
	p := SelectionProfiles[len(SelectionProfiles)-1]
	for _, candidate := range SelectionProfiles {
		if candidate.Name == name {
			p = candidate
			break
		}
	}
	p.Selection = p.Selection.Clone()
	return p
}

// FindSelectionProfile looks a profile up among custom profiles first, then the
// built-in ones.
func FindSelectionProfile(name string, custom []SelectionProfile) (SelectionProfile, bool) {
	for _, p := range custom {
		if p.Name == name {
			p.Selection = p.Selection.Clone()
			return p, true
		}
	}
	for _, p := range SelectionProfiles {
		if p.Name == name {
			p.Selection = p.Selection.Clone()
			return p, true
		}
	}
	return SelectionProfile{}, false
}

// GetSelectionProfileNames returns the names of all built-in profiles.
func GetSelectionProfileNames() []string {
	var names []string
	for _, p := range SelectionProfiles {
		names = append(names, p.Name)
	}
	return names
}
