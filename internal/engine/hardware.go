package engine

import (
	"math"

	"github.com/piwi3910/ModuleCut/internal/model"
)

// usageKind picks the fallback unit of a material row.
type usageKind int

const (
	usageBoard usageKind = iota
	usageEdge
	usageHardware
)

func (k usageKind) defaultUnit() string {
	switch k {
	case usageBoard:
		return model.UnitSquareMeter
	case usageEdge:
		return model.UnitLinearMeter
	default:
		return model.UnitPiece
	}
}

// usage is one quantity attributed to a material before aggregation.
type usage struct {
	role       model.Role
	materialID string
	quantity   float64
	kind       usageKind
}

// hardwareItem is a role the estimator may emit. Mandatory roles fail the
// calculation when unset; the others are dropped silently.
type hardwareItem struct {
	role      model.Role
	quantity  float64
	mandatory bool
	reason    string
}

// hingesPerDoor returns the hinge count for one door of the given height.
func hingesPerDoor(height float64, s model.CalcSettings) int {
	if height > s.TallDoorThreshold {
		return 3
	}
	return 2
}

// estimateHardware derives hardware and consumables from the effective config
// and the decomposed layout. Counts come from the config; only the rod length,
// the glass kit and the scaled consumables look at sizes.
func estimateHardware(rule Rule, spec model.ModuleSpec, l layout, panels []model.Panel, s model.CalcSettings) ([]usage, error) {
	var pieces int
	var area float64
	for _, p := range panels {
		pieces += p.Quantity
		area += p.Area()
	}

	doors := l.doors.count
	items := []hardwareItem{
		{model.RoleHinge, float64(doors * hingesPerDoor(l.doors.height, s)), doors > 0, "doors"},
		{model.RoleSlide, float64(l.drawers), l.drawers > 0, "drawers"},
		{model.RoleHandle, float64(doors + l.drawers), false, ""},
	}
	// Anything standing on the floor gets legs; hung modules never do.
	if rule.Mount != MountWall {
		items = append(items, hardwareItem{model.RoleLeg, float64(s.LegsPerModule), false, ""})
	}
	items = append(items,
		hardwareItem{model.RoleRod, float64(l.rods) * l.rodLength / 1000, l.rods > 0, "hanging rods"},
		hardwareItem{model.RoleRodSupport, float64(2 * l.rods), false, ""},
	)
	if l.doors.glass && doors > 0 {
		m := s.GlassFrameMargin
		h, w := l.doors.height, l.doors.width
		items = append(items,
			hardwareItem{model.RoleGlassProfile, float64(doors) * 2 * (h + w) / 1000, true, "glass doors"},
			hardwareItem{model.RoleGlassPanel, float64(doors) * (h - 2*m) * (w - 2*m) / 1e6, true, "glass doors"},
		)
	}
	items = append(items,
		hardwareItem{model.RoleScrews, float64(pieces) * s.ScrewsLongPerPanel, false, ""},
		hardwareItem{model.RoleScrewsShort, float64(pieces) * s.ScrewsShortPerPanel, false, ""},
		hardwareItem{model.RoleGlue, area * s.GlueKgPerM2, false, ""},
		hardwareItem{model.RoleFilm, area * s.FilmMetersPerM2, false, ""},
	)

	var out []usage
	for _, it := range items {
		if it.quantity <= 0 {
			continue
		}
		id := spec.Selection.Get(it.role)
		if id == "" {
			if it.mandatory {
				return nil, configurationError("%s require a %s material but none is selected", it.reason, it.role)
			}
			continue
		}
		out = append(out, usage{role: it.role, materialID: id, quantity: it.quantity, kind: usageHardware})
	}
	return out, nil
}

// checkBoards fails when a panel's thickness class has no board bound.
func checkBoards(panels []model.Panel) error {
	for _, p := range panels {
		if p.MaterialID == "" {
			return configurationError("%s panels need a %s board but none is selected", p.Name, p.Class.Role())
		}
	}
	return nil
}

// boardUsage returns board area in m² per class material, in first-seen order.
func boardUsage(panels []model.Panel) []usage {
	var out []usage
	index := make(map[string]int)
	for _, p := range panels {
		if i, ok := index[p.MaterialID]; ok {
			out[i].quantity += p.Area()
			continue
		}
		index[p.MaterialID] = len(out)
		out = append(out, usage{role: p.Class.Role(), materialID: p.MaterialID, quantity: p.Area(), kind: usageBoard})
	}
	return out
}

// edgeUsage returns the banded length in metres for the edge material, or
// nothing when no edge material is selected or nothing is banded.
func edgeUsage(spec model.ModuleSpec, panels []model.Panel) []usage {
	id := spec.Selection.Get(model.RoleEdge)
	mm := EdgeLength(panels)
	if id == "" || mm <= 0 {
		return nil
	}
	return []usage{{role: model.RoleEdge, materialID: id, quantity: mm / 1000, kind: usageEdge}}
}

// round4 rounds a quantity to four decimals.
func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
