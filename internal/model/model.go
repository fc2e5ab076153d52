package model

import (
	"fmt"
	"sort"
)

// ModuleType is the tag of a furniture archetype, e.g. "bajo-mesada".
type ModuleType string

// Known module archetype tags.
const (
	TypeBaseCabinet    ModuleType = "bajo-mesada"
	TypeCornerBase     ModuleType = "bajo-mesada-esquinero"
	TypeWallCabinet    ModuleType = "alacena"
	TypeCornerWall     ModuleType = "alacena-esquinera"
	TypeWardrobe       ModuleType = "placard"
	TypeOvenColumn     ModuleType = "columna-horno"
	TypeHangingVanity  ModuleType = "vanitory-colgante"
	TypeDrawerChest    ModuleType = "cajonera"
	TypeTVRack         ModuleType = "rack-tv"
	TypeDesk           ModuleType = "escritorio"
	TypeDrawerBed      ModuleType = "cama-cajones"
	TypeShoeCabinet    ModuleType = "zapatero"
	TypeTable          ModuleType = "mesa"
	TypeHeadboard      ModuleType = "respaldo-cama"
	TypeCrib           ModuleType = "cuna-bebe"
	TypeMicrowaveStand ModuleType = "porta-microondas"
	TypeWorkstation    ModuleType = "estacion-trabajo"
	TypeServiceCounter ModuleType = "barra-atencion"
)

// DoorType selects between board fronts and aluminium-framed glass fronts.
type DoorType string

const (
	DoorBoard DoorType = "board"
	DoorGlass DoorType = "glass"
)

// Role names a slot in the component selection.
type Role string

const (
	RoleStructural   Role = "structural"
	RoleVisible      Role = "visible"
	RoleBack         Role = "back"
	RoleDrawerBoard  Role = "drawer-board"
	RoleEdge         Role = "edge"
	RoleHinge        Role = "hinge"
	RoleSlide        Role = "slide"
	RoleRod          Role = "rod"
	RoleRodSupport   Role = "rod-support"
	RoleHandle       Role = "handle"
	RoleGlassProfile Role = "glass-profile"
	RoleGlassPanel   Role = "glass-panel"
	RoleScrews       Role = "screws"
	RoleScrewsShort  Role = "screws-short"
	RoleGlue         Role = "glue"
	RoleFilm         Role = "film"
	RoleLeg          Role = "leg"
)

// AllRoles lists every role in display order.
var AllRoles = []Role{
	RoleStructural, RoleVisible, RoleBack, RoleDrawerBoard, RoleEdge,
	RoleHinge, RoleSlide, RoleRod, RoleRodSupport, RoleHandle,
	RoleGlassProfile, RoleGlassPanel, RoleScrews, RoleScrewsShort,
	RoleGlue, RoleFilm, RoleLeg,
}

// ParseRole converts a string to a Role, rejecting unknown names.
func ParseRole(s string) (Role, error) {
	for _, r := range AllRoles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown component role %q", s)
}

// ThicknessClass groups panels cut from the same board.
type ThicknessClass string

const (
	ClassStructural  ThicknessClass = "structural"
	ClassVisible     ThicknessClass = "visible"
	ClassBack        ThicknessClass = "back"
	ClassDrawerBoard ThicknessClass = "drawer-board"
)

// Role returns the selection role whose material a panel of this class is cut from.
func (c ThicknessClass) Role() Role {
	switch c {
	case ClassVisible:
		return RoleVisible
	case ClassBack:
		return RoleBack
	case ClassDrawerBoard:
		return RoleDrawerBoard
	default:
		return RoleStructural
	}
}

// Dimensions are the outer measurements of a module in millimetres.
type Dimensions struct {
	Width  int `json:"width" toml:"width" yaml:"width"`
	Height int `json:"height" toml:"height" yaml:"height"`
	Depth  int `json:"depth" toml:"depth" yaml:"depth"`
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%dx%d", d.Width, d.Height, d.Depth)
}

// Config holds the configurable feature counts of a module.
type Config struct {
	Doors       int `json:"doors" toml:"doors" yaml:"doors"`
	Drawers     int `json:"drawers" toml:"drawers" yaml:"drawers"`
	Shelves     int `json:"shelves" toml:"shelves" yaml:"shelves"`
	Divisions   int `json:"divisions" toml:"divisions" yaml:"divisions"`
	HangingRods int `json:"hanging_rods" toml:"hanging_rods" yaml:"hanging_rods"`
}

// ComponentSelection maps each role to a material identifier. Entries may be empty.
type ComponentSelection map[Role]string

// Get returns the material bound to a role, or "" when unset.
func (cs ComponentSelection) Get(r Role) string {
	if cs == nil {
		return ""
	}
	return cs[r]
}

// Clone returns an independent copy of the selection.
func (cs ComponentSelection) Clone() ComponentSelection {
	out := make(ComponentSelection, len(cs))
	for k, v := range cs {
		out[k] = v
	}
	return out
}

// Merge returns a copy of cs where every entry of other wins. An entry that
// is present but empty unsets the role.
func (cs ComponentSelection) Merge(other ComponentSelection) ComponentSelection {
	out := cs.Clone()
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Roles returns the bound roles sorted by name.
func (cs ComponentSelection) Roles() []Role {
	roles := make([]Role, 0, len(cs))
	for r, v := range cs {
		if v != "" {
			roles = append(roles, r)
		}
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}

// ModuleSpec fully describes one module to decompose.
type ModuleSpec struct {
	Label      string             `json:"label,omitempty" toml:"label" yaml:"label,omitempty"`
	ModuleType ModuleType         `json:"module_type" toml:"module_type" yaml:"module_type"`
	Dimensions Dimensions         `json:"dimensions" toml:"dimensions" yaml:"dimensions"`
	Config     Config             `json:"config" toml:"config" yaml:"config"`
	Selection  ComponentSelection `json:"component_selection" toml:"component_selection" yaml:"component_selection"`
	DoorType   DoorType           `json:"door_type,omitempty" toml:"door_type" yaml:"door_type,omitempty"`
	OpenModule bool               `json:"open_module" toml:"open_module" yaml:"open_module"`
}

// Panel is one rectangular piece of the cutting list.
// Length edges are L1 and L2; width edges are W1 and W2.
type Panel struct {
	Name       string         `json:"name"`
	Quantity   int            `json:"quantity"`
	Length     int            `json:"length"` // mm
	Width      int            `json:"width"`  // mm
	Class      ThicknessClass `json:"class"`
	MaterialID string         `json:"material_id,omitempty"` // board material bound to Class
	Edges      EdgeBanding    `json:"edges"`
}

// Area returns the area of all pieces in square metres.
func (p Panel) Area() float64 {
	return float64(p.Length) * float64(p.Width) * float64(p.Quantity) / 1e6
}

// MaterialUsage is one row of the bill of materials.
type MaterialUsage struct {
	MaterialID string  `json:"material_id"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
}

// ExtraLine is hardware added by the caller on top of the computed bill.
type ExtraLine struct {
	MaterialID string  `json:"material_id" toml:"material_id" yaml:"material_id"`
	Quantity   float64 `json:"quantity" toml:"quantity" yaml:"quantity"`
}

// CalculationResult is the output of one module decomposition.
type CalculationResult struct {
	Spec      ModuleSpec      `json:"spec"` // effective spec after normalization
	Pieces    []Panel         `json:"pieces"`
	Materials []MaterialUsage `json:"materials"`
}

// PieceCount returns the total number of individual pieces.
func (r CalculationResult) PieceCount() int {
	n := 0
	for _, p := range r.Pieces {
		n += p.Quantity
	}
	return n
}

// BoardArea returns the total board area of all pieces in square metres.
func (r CalculationResult) BoardArea() float64 {
	var total float64
	for _, p := range r.Pieces {
		total += p.Area()
	}
	return total
}

// FindMaterial returns the row for a material ID, or nil.
func (r *CalculationResult) FindMaterial(id string) *MaterialUsage {
	for i := range r.Materials {
		if r.Materials[i].MaterialID == id {
			return &r.Materials[i]
		}
	}
	return nil
}

// FindPiece returns the first piece with the given name, or nil.
func (r *CalculationResult) FindPiece(name string) *Panel {
	for i := range r.Pieces {
		if r.Pieces[i].Name == name {
			return &r.Pieces[i]
		}
	}
	return nil
}

// CalcSettings holds the construction constants used to decompose modules.
// All lengths are in millimetres.
type CalcSettings struct {
	// Board thickness per class
	StructuralThickness  float64 `json:"structural_thickness"`
	VisibleThickness     float64 `json:"visible_thickness"`
	BackThickness        float64 `json:"back_thickness"`
	DrawerBoardThickness float64 `json:"drawer_board_thickness"`

	// Clearances and allowances
	BackInset           float64 `json:"back_inset"`            // per side, back in groove
	ShelfFrontClearance float64 `json:"shelf_front_clearance"` // shelf set back from the front
	DoorGap             float64 `json:"door_gap"`              // per door/drawer front
	DrawerBandHeight    float64 `json:"drawer_band_height"`    // front height per drawer in a band
	SlideClearance      float64 `json:"slide_clearance"`       // per side and at the back of a drawer box
	DrawerSideRatio     float64 `json:"drawer_side_ratio"`     // box side height / front height
	TallDoorThreshold   float64 `json:"tall_door_threshold"`   // doors above this get a third hinge
	RodSupportOffset    float64 `json:"rod_support_offset"`    // per end of a hanging rod
	GlassFrameMargin    float64 `json:"glass_frame_margin"`    // glass inset inside the profile frame
	CornerBlindWidth    float64 `json:"corner_blind_width"`    // blind front of corner cabinets
	OvenNicheHeight     float64 `json:"oven_niche_height"`     // appliance opening of an oven column
	ApronHeight         float64 `json:"apron_height"`          // desk/table apron

	// Hardware
	LegsPerModule int `json:"legs_per_module"`

	// Consumable coefficients
	ScrewsLongPerPanel  float64 `json:"screws_long_per_panel"`
	ScrewsShortPerPanel float64 `json:"screws_short_per_panel"`
	GlueKgPerM2         float64 `json:"glue_kg_per_m2"`
	FilmMetersPerM2     float64 `json:"film_meters_per_m2"`
}

// Thickness returns the board thickness for a class.
func (s CalcSettings) Thickness(c ThicknessClass) float64 {
	switch c {
	case ClassVisible:
		return s.VisibleThickness
	case ClassBack:
		return s.BackThickness
	case ClassDrawerBoard:
		return s.DrawerBoardThickness
	default:
		return s.StructuralThickness
	}
}

// DefaultSettings returns the standard 18mm melamine construction.
func DefaultSettings() CalcSettings {
	return CalcSettings{
		StructuralThickness:  18,
		VisibleThickness:     18,
		BackThickness:        3,
		DrawerBoardThickness: 18,
		BackInset:            10,
		ShelfFrontClearance:  20,
		DoorGap:              3,
		DrawerBandHeight:     180,
		SlideClearance:       12,
		DrawerSideRatio:      0.7,
		TallDoorThreshold:    1200,
		RodSupportOffset:     10,
		GlassFrameMargin:     20,
		CornerBlindWidth:     300,
		OvenNicheHeight:      600,
		ApronHeight:          300,
		LegsPerModule:        4,
		ScrewsLongPerPanel:   4,
		ScrewsShortPerPanel:  6,
		GlueKgPerM2:          0.05,
		FilmMetersPerM2:      1.2,
	}
}
