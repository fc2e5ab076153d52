package model

import (
	"strings"

	"github.com/google/uuid"
)

// Units of measure used by catalog materials.
const (
	UnitSquareMeter = "m²"
	UnitLinearMeter = "ml"
	UnitPiece       = "u"
	UnitKilogram    = "kg"
	UnitLiter       = "litro"
)

// Material types.
const (
	MaterialBoard     = "Board"
	MaterialEdgeBand  = "Edge Band"
	MaterialHardware  = "Hardware"
	MaterialFastener  = "Fastener"
	MaterialAdhesive  = "Adhesive"
	MaterialProfile   = "Profile"
	MaterialGlass     = "Glass"
	MaterialPackaging = "Packaging"
)

// Material is a catalog entry that component roles and extra lines refer to by ID.
type Material struct {
	ID                     string  `json:"id"`
	Code                   string  `json:"code"`
	Description            string  `json:"description"`
	Type                   string  `json:"type"`
	Unit                   string  `json:"unit"`                      // unit the bill of materials is expressed in
	CommercialUnit         string  `json:"commercial_unit"`           // unit it is bought in, e.g. "sheet"
	UnitsPerCommercialUnit float64 `json:"units_per_commercial_unit"` // e.g. 5.03 m² per sheet
}

// NewMaterial creates a new Material with a generated ID.
func NewMaterial(code, description, materialType, unit, commercialUnit string, unitsPerCommercial float64) Material {
	return Material{
		ID:                     uuid.New().String()[:8],
		Code:                   code,
		Description:            description,
		Type:                   materialType,
		Unit:                   unit,
		CommercialUnit:         commercialUnit,
		UnitsPerCommercialUnit: unitsPerCommercial,
	}
}

// Catalog holds the materials known to the application.
type Catalog struct {
	Materials []Material `json:"materials"`
}

// DefaultCatalog returns the seed catalog. IDs are stable so that the
// built-in selection profiles can refer to them.
func DefaultCatalog() Catalog {
	return Catalog{
		Materials: []Material{
			{ID: "mat-1", Code: "TAB-001", Description: "White Melamine 18mm on MDF", Type: MaterialBoard, Unit: UnitSquareMeter, CommercialUnit: "sheet", UnitsPerCommercialUnit: 5.03},
			{ID: "mat-2", Code: "TAB-002", Description: "White Melamine 15mm on MDF", Type: MaterialBoard, Unit: UnitSquareMeter, CommercialUnit: "sheet", UnitsPerCommercialUnit: 5.03},
			{ID: "mat-4", Code: "TAB-004", Description: "Beech Melamine 18mm on MDF", Type: MaterialBoard, Unit: UnitSquareMeter, CommercialUnit: "sheet", UnitsPerCommercialUnit: 5.03},
			{ID: "mat-5", Code: "TAB-005", Description: "Wenge Melamine 18mm on MDF", Type: MaterialBoard, Unit: UnitSquareMeter, CommercialUnit: "sheet", UnitsPerCommercialUnit: 5.03},
			{ID: "mat-6", Code: "TAB-006", Description: "Raw MDF 18mm", Type: MaterialBoard, Unit: UnitSquareMeter, CommercialUnit: "sheet", UnitsPerCommercialUnit: 5.03},
			{ID: "mat-8", Code: "TAB-008", Description: "Raw MDF 3mm", Type: MaterialBoard, Unit: UnitSquareMeter, CommercialUnit: "sheet", UnitsPerCommercialUnit: 5.03},
			{ID: "mat-9", Code: "TAB-009", Description: "White Melamine 18mm on Particleboard", Type: MaterialBoard, Unit: UnitSquareMeter, CommercialUnit: "sheet", UnitsPerCommercialUnit: 5.03},
			{ID: "mat-10", Code: "TAB-010", Description: "Paraiso Veneered MDF 18mm", Type: MaterialBoard, Unit: UnitSquareMeter, CommercialUnit: "sheet", UnitsPerCommercialUnit: 5.03},
			{ID: "mat-11", Code: "TAB-011", Description: "Phenolic Plywood 18mm", Type: MaterialBoard, Unit: UnitSquareMeter, CommercialUnit: "sheet", UnitsPerCommercialUnit: 3},
			{ID: "mat-12", Code: "TAP-001", Description: "White PVC Edge Band 0.45mm", Type: MaterialEdgeBand, Unit: UnitLinearMeter, CommercialUnit: "roll", UnitsPerCommercialUnit: 100},
			{ID: "mat-13", Code: "TAP-002", Description: "Beech PVC Edge Band 0.45mm", Type: MaterialEdgeBand, Unit: UnitLinearMeter, CommercialUnit: "roll", UnitsPerCommercialUnit: 100},
			{ID: "mat-14", Code: "TAP-003", Description: "White PVC Edge Band 2mm", Type: MaterialEdgeBand, Unit: UnitLinearMeter, CommercialUnit: "roll", UnitsPerCommercialUnit: 50},
			{ID: "mat-15", Code: "TAP-004", Description: "Paraiso ABS Edge Band 0.45mm", Type: MaterialEdgeBand, Unit: UnitLinearMeter, CommercialUnit: "roll", UnitsPerCommercialUnit: 100},
			{ID: "mat-16", Code: "HER-001", Description: "Telescopic Slide 400mm", Type: MaterialHardware, Unit: UnitPiece, CommercialUnit: "pair", UnitsPerCommercialUnit: 1},
			{ID: "mat-17", Code: "HER-002", Description: "Full Overlay Hinge", Type: MaterialHardware, Unit: UnitPiece, CommercialUnit: "u", UnitsPerCommercialUnit: 1},
			{ID: "mat-19", Code: "HER-004", Description: "Bar Handle 128mm Aluminium", Type: MaterialHardware, Unit: UnitPiece, CommercialUnit: "u", UnitsPerCommercialUnit: 1},
			{ID: "mat-20", Code: "HER-005", Description: "Push-to-Open Door Latch", Type: MaterialHardware, Unit: UnitPiece, CommercialUnit: "u", UnitsPerCommercialUnit: 1},
			{ID: "mat-21", Code: "HER-006", Description: "Adjustable Plastic Leg 10cm", Type: MaterialHardware, Unit: UnitPiece, CommercialUnit: "u", UnitsPerCommercialUnit: 1},
			{ID: "mat-22", Code: "TOR-001", Description: "Fix Screw 3.5x50mm", Type: MaterialFastener, Unit: UnitPiece, CommercialUnit: "box", UnitsPerCommercialUnit: 200},
			{ID: "mat-23", Code: "TOR-002", Description: "Fix Screw 4x30mm", Type: MaterialFastener, Unit: UnitPiece, CommercialUnit: "box", UnitsPerCommercialUnit: 200},
			{ID: "mat-24", Code: "TOR-003", Description: "Minifix Connector 15mm", Type: MaterialFastener, Unit: UnitPiece, CommercialUnit: "u", UnitsPerCommercialUnit: 1},
			{ID: "mat-25", Code: "TOR-004", Description: "Wooden Dowel 8mm", Type: MaterialFastener, Unit: UnitPiece, CommercialUnit: "bag", UnitsPerCommercialUnit: 100},
			{ID: "mat-26", Code: "ADH-001", Description: "Wood Glue 1kg", Type: MaterialAdhesive, Unit: UnitKilogram, CommercialUnit: "u", UnitsPerCommercialUnit: 1},
			{ID: "mat-36", Code: "HER-007", Description: "Chrome Oval Hanging Rod", Type: MaterialHardware, Unit: UnitLinearMeter, CommercialUnit: "3m bar", UnitsPerCommercialUnit: 3},
			{ID: "mat-37", Code: "HER-008", Description: "Center Support for Oval Rod", Type: MaterialHardware, Unit: UnitPiece, CommercialUnit: "u", UnitsPerCommercialUnit: 1},
			{ID: "mat-38", Code: "HER-009", Description: "Side Support for Oval Rod", Type: MaterialHardware, Unit: UnitPiece, CommercialUnit: "u", UnitsPerCommercialUnit: 1},
			{ID: "mat-48", Code: "HER-BLU-001", Description: "Soft-Close Clip Top Hinge 110", Type: MaterialHardware, Unit: UnitPiece, CommercialUnit: "u", UnitsPerCommercialUnit: 1},
			{ID: "mat-50", Code: "HER-BLU-003", Description: "Tandem Plus Soft-Close Runner 500mm", Type: MaterialHardware, Unit: UnitPiece, CommercialUnit: "set", UnitsPerCommercialUnit: 1},
			{ID: "mat-60", Code: "HER-EUR-003", Description: "Black Aluminium Pull Profile", Type: MaterialHardware, Unit: UnitLinearMeter, CommercialUnit: "3m bar", UnitsPerCommercialUnit: 3},
			{ID: "mat-63", Code: "PER-BRO-001", Description: "Glass Door Profile 4mm Anodized", Type: MaterialProfile, Unit: UnitLinearMeter, CommercialUnit: "3m bar", UnitsPerCommercialUnit: 3},
			{ID: "mat-66", Code: "EMB-001", Description: "Stretch Film 50cm", Type: MaterialPackaging, Unit: UnitLinearMeter, CommercialUnit: "100m roll", UnitsPerCommercialUnit: 100},
			{ID: "mat-67", Code: "VID-001", Description: "Clear Glass 3mm", Type: MaterialGlass, Unit: UnitSquareMeter, CommercialUnit: "m²", UnitsPerCommercialUnit: 1},
		},
	}
}

// FindByID returns a pointer to the material with the given ID, or nil.
func (c *Catalog) FindByID(id string) *Material {
	if c == nil {
		return nil
	}
	for i := range c.Materials {
		if c.Materials[i].ID == id {
			return &c.Materials[i]
		}
	}
	return nil
}

// FindByCode returns a pointer to the first material with the given code
// (case-insensitive), or nil.
func (c *Catalog) FindByCode(code string) *Material {
	for i := range c.Materials {
		if strings.EqualFold(c.Materials[i].Code, code) {
			return &c.Materials[i]
		}
	}
	return nil
}

// Unit returns the declared unit of a material.
func (c *Catalog) Unit(id string) (string, bool) {
	m := c.FindByID(id)
	if m == nil || m.Unit == "" {
		return "", false
	}
	return m.Unit, true
}

// Describe returns the description of a material, or the ID itself when unknown.
func (c *Catalog) Describe(id string) string {
	if m := c.FindByID(id); m != nil {
		return m.Description
	}
	return id
}

// Add appends a material, replacing any existing entry with the same ID.
func (c *Catalog) Add(m Material) {
	if existing := c.FindByID(m.ID); existing != nil {
		*existing = m
		return
	}
	c.Materials = append(c.Materials, m)
}

// Remove removes a material by ID. Returns true if found and removed.
func (c *Catalog) Remove(id string) bool {
	for i, m := range c.Materials {
		if m.ID == id {
			c.Materials = append(c.Materials[:i], c.Materials[i+1:]...)
			return true
		}
	}
	return false
}

// ByType returns all materials of the given type.
func (c *Catalog) ByType(materialType string) []Material {
	var out []Material
	for _, m := range c.Materials {
		if m.Type == materialType {
			out = append(out, m)
		}
	}
	return out
}
