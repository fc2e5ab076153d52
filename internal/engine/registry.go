package engine

import (
	"strings"

	"github.com/piwi3910/ModuleCut/internal/model"
)

// Feature is a configurable count an archetype may honour.
type Feature uint8

const (
	FeatureDoors Feature = 1 << iota
	FeatureDrawers
	FeatureShelves
	FeatureDivisions
	FeatureRods
)

// Has reports whether f includes every bit of x.
func (f Feature) Has(x Feature) bool {
	return f&x == x
}

func (f Feature) String() string {
	var names []string
	for _, n := range []struct {
		f    Feature
		name string
	}{
		{FeatureDoors, "doors"},
		{FeatureDrawers, "drawers"},
		{FeatureShelves, "shelves"},
		{FeatureDivisions, "divisions"},
		{FeatureRods, "rods"},
	} {
		if f.Has(n.f) {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}

// Mount is how a module stands.
type Mount int

const (
	MountLegs  Mount = iota // floor-standing on adjustable legs
	MountFloor              // floor-standing furniture with legs under its panels
	MountWall               // hung on the wall
)

func (m Mount) String() string {
	switch m {
	case MountLegs:
		return "legs"
	case MountFloor:
		return "floor"
	case MountWall:
		return "wall"
	default:
		return "unknown"
	}
}

// DrawerLayout decides how drawer fronts share the front opening.
type DrawerLayout int

const (
	// DrawerFill stacks drawers; without doors they share the whole opening.
	DrawerFill DrawerLayout = iota
	// DrawerBand stacks drawers in a band of fixed height per drawer.
	DrawerBand
	// DrawerRow lines drawers up side by side on both long sides.
	DrawerRow
)

// Joint records which horizontal panels sit outside the sides. When a panel
// is outside it spans the full width and the sides lose its thickness.
type Joint struct {
	TopOuter    bool
	BottomOuter bool
}

// Opening is the front area doors and drawers share, in mm.
type Opening struct {
	Width  float64
	Height float64
}

// Size is the outer size of a module in mm.
type Size struct {
	W, H, D float64
}

// Rule describes one module archetype. Rules are pure: Panels and Opening
// depend only on their arguments.
type Rule struct {
	Type     model.ModuleType
	Label    string
	Category string // product category the module is filed under
	Mount    Mount
	Joint    Joint
	Features Feature
	Drawers  DrawerLayout

	// Opening returns the front area; nil means the full width and height.
	Opening func(sz Size, s model.CalcSettings) Opening
	// Panels lists the descriptors making up the module.
	Panels func(sz Size, c model.Config, s model.CalcSettings) []Descriptor
}

// FrontOpening returns the front area of a module of the given size.
func (r Rule) FrontOpening(sz Size, s model.CalcSettings) Opening {
	if r.Opening == nil {
		return Opening{Width: sz.W, Height: sz.H}
	}
	return r.Opening(sz, s)
}

// Supports reports whether the archetype honours a feature.
func (r Rule) Supports(f Feature) bool {
	return r.Features.Has(f)
}

var rules = []Rule{
	baseCabinetRule,
	cornerBaseRule,
	wallCabinetRule,
	cornerWallRule,
	wardrobeRule,
	ovenColumnRule,
	hangingVanityRule,
	drawerChestRule,
	tvRackRule,
	deskRule,
	drawerBedRule,
	shoeCabinetRule,
	tableRule,
	headboardRule,
	cribRule,
	microwaveStandRule,
	workstationRule,
	serviceCounterRule,
}

var rulesByType = indexRules(rules)

func indexRules(rs []Rule) map[model.ModuleType]int {
	idx := make(map[model.ModuleType]int, len(rs))
	for i, r := range rs {
		idx[r.Type] = i
	}
	return idx
}

// Lookup returns the rule for a module type. An unregistered tag is an
// UnknownModuleType error; there is no fallback archetype.
func Lookup(t model.ModuleType) (Rule, error) {
	i, ok := rulesByType[t]
	if !ok {
		return Rule{}, newError(KindUnknownModuleType, "module type %q is not registered", string(t))
	}
	return rules[i], nil
}

// Rules returns every registered rule in registry order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Types returns every registered module type tag in registry order.
func Types() []model.ModuleType {
	out := make([]model.ModuleType, len(rules))
	for i, r := range rules {
		out[i] = r.Type
	}
	return out
}

// Label returns the display label of a module type, or the tag itself when unknown.
func Label(t model.ModuleType) string {
	if r, err := Lookup(t); err == nil {
		return r.Label
	}
	return string(t)
}
