package engine

import (
	"github.com/piwi3910/ModuleCut/internal/model"
)

// Calculator decomposes module specs with a fixed set of construction
// settings. It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	settings model.CalcSettings
	units    UnitLookup
}

// New creates a calculator. units may be nil, in which case material rows
// fall back to m², ml or u depending on what they measure.
func New(settings model.CalcSettings, units UnitLookup) *Calculator {
	return &Calculator{settings: settings, units: units}
}

// Settings returns the construction settings in use.
func (c *Calculator) Settings() model.CalcSettings {
	return c.settings
}

// Calculate turns a module spec into its cutting list and bill of materials,
// merging extras into the result. Any failure aborts the whole calculation;
// no partial result is ever returned.
func (c *Calculator) Calculate(spec model.ModuleSpec, extras []model.ExtraLine) (model.CalculationResult, error) {
	if err := validateSettings(c.settings); err != nil {
		return model.CalculationResult{}, err
	}

	spec, rule, err := Normalize(spec)
	if err != nil {
		return model.CalculationResult{}, err
	}
	if err := validateExtras(extras); err != nil {
		return model.CalculationResult{}, err
	}

	l, err := decompose(rule, spec, c.settings)
	if err != nil {
		return model.CalculationResult{}, err
	}
	assignEdges(l.panels)
	pieces := mergePanels(l.panels)

	if err := checkBoards(pieces); err != nil {
		return model.CalculationResult{}, err
	}
	hardware, err := estimateHardware(rule, spec, l, pieces, c.settings)
	if err != nil {
		return model.CalculationResult{}, err
	}

	materials := aggregate(c.units, [][]usage{
		boardUsage(pieces),
		edgeUsage(spec, pieces),
		hardware,
	}, extras)

	return model.CalculationResult{
		Spec:      spec,
		Pieces:    pieces,
		Materials: materials,
	}, nil
}

// Calculate runs a spec with the default settings and no unit catalog.
func Calculate(spec model.ModuleSpec, extras []model.ExtraLine) (model.CalculationResult, error) {
	return New(model.DefaultSettings(), nil).Calculate(spec, extras)
}

func validateSettings(s model.CalcSettings) error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"structural thickness", s.StructuralThickness},
		{"visible thickness", s.VisibleThickness},
		{"back thickness", s.BackThickness},
		{"drawer board thickness", s.DrawerBoardThickness},
	} {
		if f.v <= 0 {
			return validationError("%s must be positive, got %g", f.name, f.v)
		}
	}
	if s.DoorGap < 0 || s.SlideClearance < 0 || s.BackInset < 0 || s.ShelfFrontClearance < 0 {
		return validationError("clearances must not be negative")
	}
	return nil
}
