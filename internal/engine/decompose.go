package engine

import (
	"fmt"
	"math"

	"github.com/piwi3910/ModuleCut/internal/model"
)

// sizedPanel is a decomposed panel that still carries its edge topology.
type sizedPanel struct {
	panel    model.Panel
	exposure Exposure
}

// doorSet describes the doors of a module, board or glass.
type doorSet struct {
	count  int
	height float64
	width  float64
	glass  bool
}

// layout is everything the decomposer derives from a spec.
type layout struct {
	panels    []sizedPanel
	doors     doorSet
	drawers   int
	rods      int
	rodLength float64 // mm per rod
}

// frontPlan holds door and drawer geometry for one module.
type frontPlan struct {
	doorHeight        float64
	doorWidth         float64
	drawerFrontLength float64
	drawerFrontHeight float64
	boxWidth          float64
	boxDepth          float64
	boxSideHeight     float64
}

// geometry collects the derived measurements every descriptor is sized from.
type geometry struct {
	s            model.CalcSettings
	size         Size
	t            float64 // division thickness
	sideT        float64
	topT         float64 // zero without a top
	bottomT      float64 // zero without a bottom
	joint        Joint
	interiorW    float64
	interiorH    float64
	compartmentW float64
	fronts       frontPlan
}

func newGeometry(rule Rule, sz Size, c model.Config, descs []Descriptor, s model.CalcSettings) (geometry, error) {
	g := geometry{
		s:     s,
		size:  sz,
		t:     s.StructuralThickness,
		sideT: s.StructuralThickness,
		joint: rule.Joint,
	}
	for _, d := range descs {
		switch d.Part {
		case PartSide:
			g.sideT = s.Thickness(d.Class)
		case PartTop:
			g.topT = s.Thickness(d.Class)
		case PartBottom:
			g.bottomT = s.Thickness(d.Class)
		}
	}

	g.interiorW = g.size.W - 2*g.sideT
	g.interiorH = g.size.H - g.topT - g.bottomT

	// Divisions split the interior width before anything else is apportioned.
	divisions := float64(c.Divisions)
	g.compartmentW = (g.interiorW - divisions*g.t) / (divisions + 1)
	if c.Divisions > 0 && roundMM(g.compartmentW) <= 0 {
		return g, validationError("%d divisions leave no room between them in a %v mm wide module", c.Divisions, sz.W)
	}

	g.fronts = planFronts(rule, c, g)
	return g, nil
}

// planFronts sizes doors and drawers inside the archetype's front opening.
func planFronts(rule Rule, c model.Config, g geometry) frontPlan {
	s := g.s
	opening := rule.FrontOpening(g.size, s)
	var fp frontPlan

	if rule.Drawers == DrawerRow {
		if c.Drawers > 0 {
			perSide := math.Ceil(float64(c.Drawers) / 2)
			span := g.interiorW / 2
			if c.Divisions > 0 {
				span = g.compartmentW
			}
			fp.drawerFrontLength = opening.Width/perSide - s.DoorGap
			fp.drawerFrontHeight = opening.Height
			fp.boxWidth = opening.Width/perSide - 2*s.SlideClearance
			fp.boxDepth = span - s.SlideClearance
			fp.boxSideHeight = fp.drawerFrontHeight * s.DrawerSideRatio
		}
		return fp
	}

	zone := 0.0
	if c.Drawers > 0 {
		band := float64(c.Drawers) * s.DrawerBandHeight
		switch {
		case c.Doors > 0:
			zone = math.Min(band, opening.Height/2)
		case rule.Drawers == DrawerBand:
			zone = math.Min(band, opening.Height)
		default:
			zone = opening.Height
		}
	}

	if c.Doors > 0 {
		fp.doorHeight = opening.Height - zone
		fp.doorWidth = opening.Width/float64(c.Doors) - s.DoorGap
	}

	if c.Drawers > 0 {
		frontSpan := opening.Width
		boxSpan := math.Min(g.interiorW, opening.Width)
		if c.Divisions > 0 {
			frontSpan = g.compartmentW
			boxSpan = g.compartmentW
		}
		fp.drawerFrontHeight = zone / float64(c.Drawers)
		fp.drawerFrontLength = frontSpan - s.DoorGap
		fp.boxWidth = boxSpan - 2*s.SlideClearance
		fp.boxDepth = g.size.D - s.BackThickness - s.SlideClearance
		fp.boxSideHeight = fp.drawerFrontHeight * s.DrawerSideRatio
	}
	return fp
}

// sideLength is the height minus every horizontal panel placed outside the sides.
func (g geometry) sideLength() float64 {
	l := g.size.H
	if g.joint.TopOuter {
		l -= g.topT
	}
	if g.joint.BottomOuter {
		l -= g.bottomT
	}
	return l
}

func (g geometry) horizontalLength(outer bool) float64 {
	if outer {
		return g.size.W
	}
	return g.interiorW
}

// decompose turns a normalized spec into sized panels plus the counts the
// hardware estimator needs. Panels are not merged and carry no edge flags yet.
func decompose(rule Rule, spec model.ModuleSpec, s model.CalcSettings) (layout, error) {
	sz := Size{
		W: float64(spec.Dimensions.Width),
		H: float64(spec.Dimensions.Height),
		D: float64(spec.Dimensions.Depth),
	}
	descs := rule.Panels(sz, spec.Config, s)
	g, err := newGeometry(rule, sz, spec.Config, descs, s)
	if err != nil {
		return layout{}, err
	}
	fp := g.fronts
	glass := spec.DoorType == model.DoorGlass

	var l layout
	add := func(name string, class model.ThicknessClass, qty int, exposure Exposure, length, width float64) error {
		p := model.Panel{
			Name:       name,
			Quantity:   qty,
			Length:     roundMM(length),
			Width:      roundMM(width),
			Class:      class,
			MaterialID: spec.Selection.Get(class.Role()),
		}
		if p.Length <= 0 || p.Width <= 0 {
			return validationError("module %s too small: %s would be %dx%d mm", spec.Dimensions, name, p.Length, p.Width)
		}
		l.panels = append(l.panels, sizedPanel{panel: p, exposure: exposure})
		return nil
	}

	for _, d := range descs {
		if d.Quantity <= 0 {
			continue
		}
		var err error
		switch d.Part {
		case PartSide:
			err = add(d.Name, d.Class, d.Quantity, d.Exposure, g.sideLength(), sz.D)
		case PartTop:
			err = add(d.Name, d.Class, d.Quantity, d.Exposure, g.horizontalLength(g.joint.TopOuter), sz.D)
		case PartBottom:
			err = add(d.Name, d.Class, d.Quantity, d.Exposure, g.horizontalLength(g.joint.BottomOuter), sz.D)
		case PartBack:
			err = add(d.Name, d.Class, d.Quantity, d.Exposure, sz.H-2*s.BackInset, sz.W-2*s.BackInset)
		case PartShelf:
			err = add(d.Name, d.Class, d.Quantity, d.Exposure, g.compartmentW, sz.D-s.BackThickness-s.ShelfFrontClearance)
		case PartDivision:
			err = add(d.Name, d.Class, d.Quantity, d.Exposure, g.interiorH, sz.D-s.BackThickness)
		case PartDoor:
			l.doors = doorSet{count: d.Quantity, height: fp.doorHeight, width: fp.doorWidth, glass: glass}
			if glass {
				err = checkGlassDoor(l.doors, s, spec.Dimensions)
			} else {
				err = add(d.Name, d.Class, d.Quantity, d.Exposure, fp.doorHeight, fp.doorWidth)
			}
		case PartDrawer:
			l.drawers = d.Quantity
			err = addDrawers(add, d, fp, s)
		case PartCustom:
			err = add(d.Name, d.Class, d.Quantity, d.Exposure, d.Length, d.Width)
		default:
			err = fmt.Errorf("unhandled part kind %d", d.Part)
		}
		if err != nil {
			return layout{}, err
		}
	}

	if spec.Config.HangingRods > 0 {
		l.rods = spec.Config.HangingRods
		l.rodLength = float64(roundMM(g.compartmentW - 2*s.RodSupportOffset))
		if l.rodLength <= 0 {
			return layout{}, validationError("module %s too small for a hanging rod", spec.Dimensions)
		}
	}
	return l, nil
}

type addFunc func(name string, class model.ThicknessClass, qty int, exposure Exposure, length, width float64) error

// addDrawers emits the visible front and the internal box of every drawer.
func addDrawers(add addFunc, d Descriptor, fp frontPlan, s model.CalcSettings) error {
	n := d.Quantity
	dt := s.DrawerBoardThickness
	steps := []struct {
		name     string
		class    model.ThicknessClass
		qty      int
		exposure Exposure
		length   float64
		width    float64
	}{
		{d.Name, d.Class, n, d.Exposure, fp.drawerFrontLength, fp.drawerFrontHeight},
		{"Drawer Side", model.ClassDrawerBoard, 2 * n, ExposeL1, fp.boxDepth, fp.boxSideHeight},
		{"Drawer Back", model.ClassDrawerBoard, n, ExposeL1, fp.boxWidth - 2*dt, fp.boxSideHeight},
		{"Drawer Bottom", model.ClassDrawerBoard, n, ExposeNone, fp.boxWidth, fp.boxDepth},
	}
	for _, st := range steps {
		if err := add(st.name, st.class, st.qty, st.exposure, st.length, st.width); err != nil {
			return err
		}
	}
	return nil
}

func checkGlassDoor(ds doorSet, s model.CalcSettings, dims model.Dimensions) error {
	if roundMM(ds.height-2*s.GlassFrameMargin) <= 0 || roundMM(ds.width-2*s.GlassFrameMargin) <= 0 {
		return validationError("module %s too small for glass doors", dims)
	}
	return nil
}

// mergePanels collapses panels with the same name, size and edge pattern,
// keeping the order in which each was first seen.
func mergePanels(panels []sizedPanel) []model.Panel {
	type key struct {
		name          string
		length, width int
		edges         model.EdgeBanding
	}
	index := make(map[key]int, len(panels))
	out := make([]model.Panel, 0, len(panels))
	for _, sp := range panels {
		p := sp.panel
		k := key{p.Name, p.Length, p.Width, p.Edges}
		if i, ok := index[k]; ok {
			out[i].Quantity += p.Quantity
			continue
		}
		index[k] = len(out)
		out = append(out, p)
	}
	return out
}

// roundMM rounds a millimetre value to the nearest whole millimetre.
func roundMM(v float64) int {
	return int(math.Round(v))
}
