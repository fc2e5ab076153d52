package engine

import (
	"strings"

	"github.com/piwi3910/ModuleCut/internal/model"
)

// UnitLookup resolves the declared unit of a material. *model.Catalog
// satisfies it.
type UnitLookup interface {
	Unit(materialID string) (string, bool)
}

// aggregator accumulates usage into one row per material, keeping the order in
// which materials first appear.
type aggregator struct {
	units UnitLookup
	rows  []model.MaterialUsage
	index map[string]int
}

func newAggregator(units UnitLookup) *aggregator {
	return &aggregator{units: units, index: make(map[string]int)}
}

func (a *aggregator) add(id string, qty float64, kind usageKind) {
	if i, ok := a.index[id]; ok {
		a.rows[i].Quantity += qty
		return
	}
	a.index[id] = len(a.rows)
	a.rows = append(a.rows, model.MaterialUsage{MaterialID: id, Quantity: qty, Unit: a.unit(id, kind)})
}

func (a *aggregator) unit(id string, kind usageKind) string {
	if a.units != nil {
		if u, ok := a.units.Unit(id); ok && u != "" {
			return u
		}
	}
	return kind.defaultUnit()
}

func (a *aggregator) result() []model.MaterialUsage {
	out := make([]model.MaterialUsage, len(a.rows))
	for i, r := range a.rows {
		r.Quantity = round4(r.Quantity)
		out[i] = r
	}
	return out
}

// validateExtras rejects extra lines without a material or with a
// non-positive quantity.
func validateExtras(extras []model.ExtraLine) error {
	for i, e := range extras {
		if strings.TrimSpace(e.MaterialID) == "" {
			return validationError("extra line %d has no material", i+1)
		}
		if e.Quantity <= 0 {
			return validationError("extra line %d (%s) must have a positive quantity, got %g", i+1, e.MaterialID, e.Quantity)
		}
	}
	return nil
}

// aggregate merges board, edge and hardware usage with the caller's extra
// lines. Rows are boards, then edge band, then hardware, then extras that
// matched nothing.
func aggregate(units UnitLookup, groups [][]usage, extras []model.ExtraLine) []model.MaterialUsage {
	a := newAggregator(units)
	for _, g := range groups {
		for _, u := range g {
			a.add(u.materialID, u.quantity, u.kind)
		}
	}
	for _, e := range extras {
		a.add(strings.TrimSpace(e.MaterialID), e.Quantity, usageHardware)
	}
	return a.result()
}

// MergeExtras adds extra lines to an existing bill of materials, summing into
// matching rows and appending the rest. The input slice is not modified.
func MergeExtras(materials []model.MaterialUsage, extras []model.ExtraLine, units UnitLookup) ([]model.MaterialUsage, error) {
	if err := validateExtras(extras); err != nil {
		return nil, err
	}
	a := newAggregator(units)
	for _, m := range materials {
		if i, ok := a.index[m.MaterialID]; ok {
			a.rows[i].Quantity += m.Quantity
			continue
		}
		a.index[m.MaterialID] = len(a.rows)
		a.rows = append(a.rows, m)
	}
	for _, e := range extras {
		a.add(strings.TrimSpace(e.MaterialID), e.Quantity, usageHardware)
	}
	return a.result(), nil
}
