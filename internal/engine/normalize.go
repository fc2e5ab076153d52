package engine

import (
	"strings"

	"github.com/piwi3910/ModuleCut/internal/model"
)

// Normalize validates a spec and returns the effective spec every later stage
// works from, together with its archetype rule. The input is not modified.
//
// Dimensions and counts are checked before the module type so that a malformed
// request is always reported as a validation failure.
func Normalize(spec model.ModuleSpec) (model.ModuleSpec, Rule, error) {
	d := spec.Dimensions
	switch {
	case d.Width <= 0:
		return model.ModuleSpec{}, Rule{}, validationError("width must be positive, got %d", d.Width)
	case d.Height <= 0:
		return model.ModuleSpec{}, Rule{}, validationError("height must be positive, got %d", d.Height)
	case d.Depth <= 0:
		return model.ModuleSpec{}, Rule{}, validationError("depth must be positive, got %d", d.Depth)
	}

	c := spec.Config
	for _, f := range []struct {
		name string
		n    int
	}{
		{"doors", c.Doors},
		{"drawers", c.Drawers},
		{"shelves", c.Shelves},
		{"divisions", c.Divisions},
		{"hanging rods", c.HangingRods},
	} {
		if f.n < 0 {
			return model.ModuleSpec{}, Rule{}, validationError("%s must not be negative, got %d", f.name, f.n)
		}
	}

	doorType := model.DoorType(strings.ToLower(strings.TrimSpace(string(spec.DoorType))))
	switch doorType {
	case "":
		doorType = model.DoorBoard
	case model.DoorBoard, model.DoorGlass:
	default:
		return model.ModuleSpec{}, Rule{}, validationError("unknown door type %q", string(spec.DoorType))
	}

	rule, err := Lookup(model.ModuleType(strings.TrimSpace(string(spec.ModuleType))))
	if err != nil {
		return model.ModuleSpec{}, Rule{}, err
	}

	if spec.OpenModule {
		c.Doors = 0
		c.Drawers = 0
	}
	if !rule.Supports(FeatureDoors) {
		c.Doors = 0
	}
	if !rule.Supports(FeatureDrawers) {
		c.Drawers = 0
	}
	if !rule.Supports(FeatureShelves) {
		c.Shelves = 0
	}
	if !rule.Supports(FeatureDivisions) {
		c.Divisions = 0
	}
	if !rule.Supports(FeatureRods) {
		c.HangingRods = 0
	}

	sel := make(model.ComponentSelection, len(spec.Selection))
	for role, id := range spec.Selection {
		if id = strings.TrimSpace(id); id != "" {
			sel[role] = id
		}
	}

	out := spec
	out.Label = strings.TrimSpace(spec.Label)
	out.ModuleType = rule.Type
	out.Config = c
	out.Selection = sel
	out.DoorType = doorType
	return out, rule, nil
}
