package model

import "math"

// PurchaseLine is the buying recommendation for one bill-of-materials row.
type PurchaseLine struct {
	MaterialID         string  `json:"material_id"`
	Description        string  `json:"description"`
	Quantity           float64 `json:"quantity"`            // quantity in the row unit
	Unit               string  `json:"unit"`                // row unit, e.g. "m²"
	WastePercent       float64 `json:"waste_percent"`       // waste factor applied (e.g., 15 for 15%)
	QuantityWithWaste  float64 `json:"quantity_with_waste"` // quantity including waste
	CommercialUnit     string  `json:"commercial_unit"`     // unit it is bought in
	UnitsPerCommercial float64 `json:"units_per_commercial"`
	CommercialExact    float64 `json:"commercial_exact"` // exact fractional commercial units
	CommercialUnits    int     `json:"commercial_units"` // ceiling of exact
}

// PurchaseEstimate holds the buying recommendation for a whole bill of materials.
type PurchaseEstimate struct {
	Lines             []PurchaseLine `json:"lines"`
	BoardWastePercent float64        `json:"board_waste_percent"`
	EdgeWastePercent  float64        `json:"edge_waste_percent"`
}

// CalculatePurchaseEstimate converts bill-of-materials rows into commercial units.
// Board rows (m²) get boardWaste percent extra, edge band rows get edgeWaste percent,
// hardware is bought as counted. Materials missing from the catalog are bought
// one unit per unit.
func CalculatePurchaseEstimate(rows []MaterialUsage, catalog Catalog, boardWaste, edgeWaste float64) PurchaseEstimate {
	est := PurchaseEstimate{
		Lines:             make([]PurchaseLine, 0, len(rows)),
		BoardWastePercent: boardWaste,
		EdgeWastePercent:  edgeWaste,
	}

	for _, row := range rows {
		line := PurchaseLine{
			MaterialID:         row.MaterialID,
			Description:        row.MaterialID,
			Quantity:           row.Quantity,
			Unit:               row.Unit,
			CommercialUnit:     row.Unit,
			UnitsPerCommercial: 1,
		}
		materialType := ""
		if m := catalog.FindByID(row.MaterialID); m != nil {
			line.Description = m.Description
			materialType = m.Type
			if m.CommercialUnit != "" {
				line.CommercialUnit = m.CommercialUnit
			}
			if m.UnitsPerCommercialUnit > 0 {
				line.UnitsPerCommercial = m.UnitsPerCommercialUnit
			}
		}

		switch materialType {
		case MaterialBoard:
			line.WastePercent = boardWaste
		case MaterialEdgeBand:
			line.WastePercent = edgeWaste
		}

		line.QuantityWithWaste = row.Quantity * (1.0 + line.WastePercent/100.0)
		line.CommercialExact = line.QuantityWithWaste / line.UnitsPerCommercial
		// Round to 6 decimals first so 10.000000001 does not turn into 11
		line.CommercialUnits = int(math.Ceil(math.Round(line.CommercialExact*1e6) / 1e6))

		est.Lines = append(est.Lines, line)
	}
	return est
}

// TotalCommercialUnits returns the sum of commercial units across all lines.
func (e PurchaseEstimate) TotalCommercialUnits() int {
	n := 0
	for _, l := range e.Lines {
		n += l.CommercialUnits
	}
	return n
}
