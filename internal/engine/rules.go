package engine

import (
	"math"

	"github.com/piwi3910/ModuleCut/internal/model"
)

// PartKind tells the decomposer how to size a descriptor.
type PartKind int

const (
	PartSide PartKind = iota
	PartTop
	PartBottom
	PartBack
	PartShelf
	PartDivision
	PartDoor
	PartDrawer
	PartCustom // sized by the rule itself
)

// Exposure marks the edges of a panel that stay visible once assembled.
type Exposure uint8

const (
	ExposeL1 Exposure = 1 << iota
	ExposeL2
	ExposeW1
	ExposeW2

	ExposeNone Exposure = 0
	ExposeAll           = ExposeL1 | ExposeL2 | ExposeW1 | ExposeW2
)

// Descriptor is an unsized panel produced by a rule.
type Descriptor struct {
	Name     string
	Part     PartKind
	Class    model.ThicknessClass
	Quantity int
	Exposure Exposure
	// Length and Width are only read for PartCustom.
	Length float64
	Width  float64
}

// carcass builds the descriptors shared by box-shaped archetypes.
type carcass struct {
	top, bottom, back bool
	sideClass         model.ThicknessClass
	side              Exposure
	topClass          model.ThicknessClass
	topEdges          Exposure
	bottomEdges       Exposure
}

func (k carcass) descriptors(c model.Config) []Descriptor {
	sideClass := k.sideClass
	if sideClass == "" {
		sideClass = model.ClassStructural
	}
	topClass := k.topClass
	if topClass == "" {
		topClass = model.ClassStructural
	}

	out := []Descriptor{{Name: "Side", Part: PartSide, Class: sideClass, Quantity: 2, Exposure: k.side}}
	if k.top {
		out = append(out, Descriptor{Name: "Top", Part: PartTop, Class: topClass, Quantity: 1, Exposure: k.topEdges})
	}
	if k.bottom {
		out = append(out, Descriptor{Name: "Bottom", Part: PartBottom, Class: model.ClassStructural, Quantity: 1, Exposure: k.bottomEdges})
	}
	if k.back {
		out = append(out, Descriptor{Name: "Back", Part: PartBack, Class: model.ClassBack, Quantity: 1})
	}
	return append(out, interior(c)...)
}

// interior lists divisions, shelves, doors and drawers in that order.
func interior(c model.Config) []Descriptor {
	var out []Descriptor
	if c.Divisions > 0 {
		out = append(out, Descriptor{Name: "Division", Part: PartDivision, Class: model.ClassStructural, Quantity: c.Divisions, Exposure: ExposeL1})
	}
	if c.Shelves > 0 {
		out = append(out, Descriptor{Name: "Shelf", Part: PartShelf, Class: model.ClassStructural, Quantity: c.Shelves, Exposure: ExposeL1})
	}
	if c.Doors > 0 {
		out = append(out, Descriptor{Name: "Door", Part: PartDoor, Class: model.ClassVisible, Quantity: c.Doors, Exposure: ExposeAll})
	}
	if c.Drawers > 0 {
		out = append(out, Descriptor{Name: "Drawer Front", Part: PartDrawer, Class: model.ClassVisible, Quantity: c.Drawers, Exposure: ExposeAll})
	}
	return out
}

func custom(name string, class model.ThicknessClass, qty int, exposure Exposure, length, width float64) Descriptor {
	return Descriptor{Name: name, Part: PartCustom, Class: class, Quantity: qty, Exposure: exposure, Length: length, Width: width}
}

func fullOpening(sz Size, _ model.CalcSettings) Opening {
	return Opening{Width: sz.W, Height: sz.H}
}

// belowTop leaves out a visible top laid over the sides.
func belowTop(sz Size, s model.CalcSettings) Opening {
	return Opening{Width: sz.W, Height: sz.H - s.VisibleThickness}
}

func cornerOpening(sz Size, s model.CalcSettings) Opening {
	return Opening{Width: sz.W - s.CornerBlindWidth, Height: sz.H}
}

func blindPanel(sz Size, s model.CalcSettings) Descriptor {
	return custom("Blind Panel", model.ClassVisible, 1, ExposeAll, sz.H, s.CornerBlindWidth-s.DoorGap)
}

const (
	categoryKitchen   = "Kitchen"
	categoryBedroom   = "Bedroom"
	categoryBathroom  = "Bathroom"
	categoryLiving    = "Living"
	categoryFurniture = "Furniture"
)

const frontFeatures = FeatureDoors | FeatureDrawers | FeatureShelves

// Base cabinet: sides run full height, bottom sits between them, no top
// because the countertop closes the box.
var baseCabinetRule = Rule{
	Type:     model.TypeBaseCabinet,
	Label:    "Base Cabinet",
	Category: categoryKitchen,
	Mount:    MountLegs,
	Features: frontFeatures,
	Drawers:  DrawerFill,
	Opening:  fullOpening,
	Panels: func(_ Size, c model.Config, _ model.CalcSettings) []Descriptor {
		return carcass{bottom: true, back: true, side: ExposeL1, bottomEdges: ExposeL1}.descriptors(c)
	},
}

var cornerBaseRule = Rule{
	Type:     model.TypeCornerBase,
	Label:    "Corner Base Cabinet",
	Category: categoryKitchen,
	Mount:    MountLegs,
	Features: frontFeatures,
	Drawers:  DrawerFill,
	Opening:  cornerOpening,
	Panels: func(sz Size, c model.Config, s model.CalcSettings) []Descriptor {
		out := carcass{bottom: true, back: true, side: ExposeL1, bottomEdges: ExposeL1}.descriptors(c)
		return append(out, blindPanel(sz, s))
	},
}

// Wall cabinets show their bottom end, so the side's bottom width edge is banded.
var wallCabinetRule = Rule{
	Type:     model.TypeWallCabinet,
	Label:    "Wall Cabinet",
	Category: categoryKitchen,
	Mount:    MountWall,
	Features: frontFeatures,
	Drawers:  DrawerFill,
	Opening:  fullOpening,
	Panels: func(_ Size, c model.Config, _ model.CalcSettings) []Descriptor {
		return carcass{top: true, bottom: true, back: true, side: ExposeL1 | ExposeW2, topEdges: ExposeL1, bottomEdges: ExposeL1}.descriptors(c)
	},
}

var cornerWallRule = Rule{
	Type:     model.TypeCornerWall,
	Label:    "Corner Wall Cabinet",
	Category: categoryKitchen,
	Mount:    MountWall,
	Features: frontFeatures,
	Drawers:  DrawerFill,
	Opening:  cornerOpening,
	Panels: func(sz Size, c model.Config, s model.CalcSettings) []Descriptor {
		out := carcass{top: true, bottom: true, back: true, side: ExposeL1 | ExposeW2, topEdges: ExposeL1, bottomEdges: ExposeL1}.descriptors(c)
		return append(out, blindPanel(sz, s))
	},
}

var wardrobeRule = Rule{
	Type:     model.TypeWardrobe,
	Label:    "Wardrobe",
	Category: categoryBedroom,
	Mount:    MountLegs,
	Features: frontFeatures | FeatureDivisions | FeatureRods,
	Drawers:  DrawerBand,
	Opening:  fullOpening,
	Panels: func(_ Size, c model.Config, _ model.CalcSettings) []Descriptor {
		return carcass{top: true, bottom: true, back: true, side: ExposeL1, topEdges: ExposeL1, bottomEdges: ExposeL1}.descriptors(c)
	},
}

// Oven column: a fixed appliance shelf carries the oven; fronts cover the
// height left over once the niche is taken out.
var ovenColumnRule = Rule{
	Type:     model.TypeOvenColumn,
	Label:    "Tall Oven Cabinet",
	Category: categoryKitchen,
	Mount:    MountLegs,
	Features: frontFeatures,
	Drawers:  DrawerBand,
	Opening: func(sz Size, s model.CalcSettings) Opening {
		return Opening{Width: sz.W, Height: sz.H - s.OvenNicheHeight}
	},
	Panels: func(sz Size, c model.Config, s model.CalcSettings) []Descriptor {
		out := carcass{top: true, bottom: true, back: true, side: ExposeL1, topEdges: ExposeL1, bottomEdges: ExposeL1}.descriptors(c)
		t := s.StructuralThickness
		return append(out, custom("Oven Shelf", model.ClassStructural, 1, ExposeL1, sz.W-2*t, sz.D-s.BackThickness))
	},
}

// Hanging vanity: open top under the basin, closed by two rails.
var hangingVanityRule = Rule{
	Type:     model.TypeHangingVanity,
	Label:    "Hanging Vanity",
	Category: categoryBathroom,
	Mount:    MountWall,
	Features: FeatureDoors | FeatureDrawers,
	Drawers:  DrawerFill,
	Opening:  fullOpening,
	Panels: func(sz Size, c model.Config, s model.CalcSettings) []Descriptor {
		out := carcass{bottom: true, back: true, side: ExposeL1 | ExposeW2, bottomEdges: ExposeL1}.descriptors(c)
		return append(out, custom("Top Rail", model.ClassStructural, 2, ExposeNone, sz.W-2*s.StructuralThickness, 100))
	},
}

// Drawer chest: a visible top laid over the sides.
var drawerChestRule = Rule{
	Type:     model.TypeDrawerChest,
	Label:    "Drawer Chest",
	Category: categoryFurniture,
	Mount:    MountLegs,
	Joint:    Joint{TopOuter: true},
	Features: FeatureDrawers,
	Drawers:  DrawerFill,
	Opening:  belowTop,
	Panels: func(_ Size, c model.Config, _ model.CalcSettings) []Descriptor {
		return carcass{
			top:         true,
			bottom:      true,
			back:        true,
			side:        ExposeL1,
			topClass:    model.ClassVisible,
			topEdges:    ExposeL1 | ExposeW1 | ExposeW2,
			bottomEdges: ExposeL1,
		}.descriptors(c)
	},
}

// TV rack: top and bottom both span the full width; sides sit between them.
var tvRackRule = Rule{
	Type:     model.TypeTVRack,
	Label:    "TV Rack",
	Category: categoryLiving,
	Mount:    MountLegs,
	Joint:    Joint{TopOuter: true, BottomOuter: true},
	Features: frontFeatures | FeatureDivisions,
	Drawers:  DrawerBand,
	Opening: func(sz Size, s model.CalcSettings) Opening {
		return Opening{Width: sz.W, Height: sz.H - s.VisibleThickness - s.StructuralThickness}
	},
	Panels: func(_ Size, c model.Config, _ model.CalcSettings) []Descriptor {
		return carcass{
			top:         true,
			bottom:      true,
			back:        true,
			side:        ExposeL1,
			topClass:    model.ClassVisible,
			topEdges:    ExposeL1 | ExposeW1 | ExposeW2,
			bottomEdges: ExposeL1 | ExposeW1 | ExposeW2,
		}.descriptors(c)
	},
}

// Desk: top, two visible sides and a back apron. No fronts.
var deskRule = Rule{
	Type:     model.TypeDesk,
	Label:    "Desk",
	Category: categoryLiving,
	Mount:    MountFloor,
	Joint:    Joint{TopOuter: true},
	Panels: func(sz Size, _ model.Config, s model.CalcSettings) []Descriptor {
		return []Descriptor{
			{Name: "Top", Part: PartTop, Class: model.ClassVisible, Quantity: 1, Exposure: ExposeAll},
			{Name: "Side", Part: PartSide, Class: model.ClassVisible, Quantity: 2, Exposure: ExposeL1 | ExposeL2},
			custom("Back Apron", model.ClassStructural, 1, ExposeL1, sz.W-2*s.VisibleThickness, s.ApronHeight),
		}
	},
}

// Drawer bed base: side rails run the bed length, end panels sit between
// them, the platform rests inside. Drawers open on both long sides.
var drawerBedRule = Rule{
	Type:     model.TypeDrawerBed,
	Label:    "Drawer Bed Base",
	Category: categoryBedroom,
	Mount:    MountFloor,
	Features: FeatureDrawers | FeatureDivisions,
	Drawers:  DrawerRow,
	Opening: func(sz Size, s model.CalcSettings) Opening {
		t := s.StructuralThickness
		return Opening{Width: sz.D - 2*t, Height: sz.H - t}
	},
	Panels: func(sz Size, c model.Config, s model.CalcSettings) []Descriptor {
		t := s.StructuralThickness
		out := []Descriptor{
			custom("Side Rail", model.ClassVisible, 2, ExposeL1|ExposeW1|ExposeW2, sz.D, sz.H),
			custom("End Panel", model.ClassVisible, 2, ExposeL1, sz.W-2*t, sz.H),
			custom("Platform", model.ClassStructural, 1, ExposeNone, sz.W-2*t, sz.D-2*t),
		}
		if c.Divisions > 0 {
			out = append(out, custom("Center Beam", model.ClassStructural, c.Divisions, ExposeL1, sz.D-2*t, sz.H-t))
		}
		if c.Drawers > 0 {
			out = append(out, Descriptor{Name: "Drawer Front", Part: PartDrawer, Class: model.ClassVisible, Quantity: c.Drawers, Exposure: ExposeAll})
		}
		return out
	},
}

var shoeCabinetRule = Rule{
	Type:     model.TypeShoeCabinet,
	Label:    "Shoe Cabinet",
	Category: categoryFurniture,
	Mount:    MountLegs,
	Features: FeatureDoors | FeatureShelves,
	Drawers:  DrawerFill,
	Opening:  fullOpening,
	Panels: func(_ Size, c model.Config, _ model.CalcSettings) []Descriptor {
		return carcass{top: true, bottom: true, back: true, side: ExposeL1, topEdges: ExposeL1, bottomEdges: ExposeL1}.descriptors(c)
	},
}

// Table: top over two panel legs braced by front and back aprons.
var tableRule = Rule{
	Type:     model.TypeTable,
	Label:    "Table",
	Category: categoryLiving,
	Mount:    MountFloor,
	Joint:    Joint{TopOuter: true},
	Panels: func(sz Size, _ model.Config, s model.CalcSettings) []Descriptor {
		return []Descriptor{
			{Name: "Top", Part: PartTop, Class: model.ClassVisible, Quantity: 1, Exposure: ExposeAll},
			{Name: "Side", Part: PartSide, Class: model.ClassVisible, Quantity: 2, Exposure: ExposeL1 | ExposeL2},
			custom("Apron", model.ClassStructural, 2, ExposeL1, sz.W-2*s.VisibleThickness, s.ApronHeight),
		}
	},
}

// Headboard: a visible face glued to a smaller backer, hung on two cleats.
var headboardRule = Rule{
	Type:     model.TypeHeadboard,
	Label:    "Headboard",
	Category: categoryBedroom,
	Mount:    MountWall,
	Panels: func(sz Size, _ model.Config, _ model.CalcSettings) []Descriptor {
		return []Descriptor{
			custom("Headboard Face", model.ClassVisible, 1, ExposeAll, sz.W, sz.H),
			custom("Headboard Backer", model.ClassStructural, 1, ExposeNone, sz.W-100, sz.H-100),
			custom("Wall Cleat", model.ClassStructural, 2, ExposeNone, sz.W-200, 80),
		}
	},
}

// Crib: two end panels carry the long rails and the mattress base.
var cribRule = Rule{
	Type:     model.TypeCrib,
	Label:    "Crib",
	Category: categoryFurniture,
	Mount:    MountFloor,
	Panels: func(sz Size, _ model.Config, s model.CalcSettings) []Descriptor {
		t := s.StructuralThickness
		return []Descriptor{
			custom("End Panel", model.ClassVisible, 2, ExposeAll, sz.H, sz.D),
			custom("Side Rail", model.ClassVisible, 2, ExposeL1|ExposeL2, sz.W-2*t, math.Round(sz.H*0.45)),
			custom("Mattress Base", model.ClassStructural, 1, ExposeNone, sz.W-2*t, sz.D-2*t),
		}
	},
}

var microwaveStandRule = Rule{
	Type:     model.TypeMicrowaveStand,
	Label:    "Microwave Stand",
	Category: categoryFurniture,
	Mount:    MountWall,
	Features: frontFeatures,
	Drawers:  DrawerFill,
	Opening:  fullOpening,
	Panels: func(_ Size, c model.Config, _ model.CalcSettings) []Descriptor {
		return carcass{top: true, bottom: true, back: true, side: ExposeL1 | ExposeW2, topEdges: ExposeL1, bottomEdges: ExposeL1}.descriptors(c)
	},
}

// Workstation: a desk whose divisions form a pedestal with banded drawers.
var workstationRule = Rule{
	Type:     model.TypeWorkstation,
	Label:    "Workstation",
	Category: categoryFurniture,
	Mount:    MountFloor,
	Joint:    Joint{TopOuter: true},
	Features: frontFeatures | FeatureDivisions,
	Drawers:  DrawerBand,
	Opening:  belowTop,
	Panels: func(sz Size, c model.Config, s model.CalcSettings) []Descriptor {
		out := []Descriptor{
			{Name: "Top", Part: PartTop, Class: model.ClassVisible, Quantity: 1, Exposure: ExposeAll},
			{Name: "Side", Part: PartSide, Class: model.ClassVisible, Quantity: 2, Exposure: ExposeL1 | ExposeL2},
			custom("Modesty Panel", model.ClassStructural, 1, ExposeL1, sz.W-2*s.VisibleThickness, s.ApronHeight),
		}
		return append(out, interior(c)...)
	},
}

// Service counter: customer-facing front panel instead of a back board.
var serviceCounterRule = Rule{
	Type:     model.TypeServiceCounter,
	Label:    "Service Counter",
	Category: categoryFurniture,
	Mount:    MountLegs,
	Joint:    Joint{TopOuter: true},
	Features: frontFeatures | FeatureDivisions,
	Drawers:  DrawerBand,
	Opening:  belowTop,
	Panels: func(sz Size, c model.Config, s model.CalcSettings) []Descriptor {
		t := s.VisibleThickness
		out := []Descriptor{
			{Name: "Top", Part: PartTop, Class: model.ClassVisible, Quantity: 1, Exposure: ExposeAll},
			{Name: "Side", Part: PartSide, Class: model.ClassVisible, Quantity: 2, Exposure: ExposeL1 | ExposeL2},
			{Name: "Bottom", Part: PartBottom, Class: model.ClassStructural, Quantity: 1, Exposure: ExposeL1},
			custom("Front Panel", model.ClassVisible, 1, ExposeW1|ExposeW2, sz.W-2*t, sz.H-t),
		}
		return append(out, interior(c)...)
	},
}
