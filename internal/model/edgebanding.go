package model

import (
	"math"
	"strings"
)

// EdgeBanding records which edges of a panel receive banding tape.
// L1/L2 run along the panel length, W1/W2 along the panel width.
type EdgeBanding struct {
	L1 bool `json:"l1"`
	L2 bool `json:"l2"`
	W1 bool `json:"w1"`
	W2 bool `json:"w2"`
}

// HasAny reports whether at least one edge is banded.
func (e EdgeBanding) HasAny() bool {
	return e.L1 || e.L2 || e.W1 || e.W2
}

// EdgeCount returns the number of banded edges.
func (e EdgeBanding) EdgeCount() int {
	n := 0
	for _, b := range []bool{e.L1, e.L2, e.W1, e.W2} {
		if b {
			n++
		}
	}
	return n
}

// LinearLength returns the banded length in mm for one piece of the given size.
func (e EdgeBanding) LinearLength(length, width float64) float64 {
	var total float64
	if e.L1 {
		total += length
	}
	if e.L2 {
		total += length
	}
	if e.W1 {
		total += width
	}
	if e.W2 {
		total += width
	}
	return total
}

// String returns a compact representation such as "L1+L2+W1", or "-" when no edge is banded.
func (e EdgeBanding) String() string {
	var parts []string
	if e.L1 {
		parts = append(parts, "L1")
	}
	if e.L2 {
		parts = append(parts, "L2")
	}
	if e.W1 {
		parts = append(parts, "W1")
	}
	if e.W2 {
		parts = append(parts, "W2")
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, "+")
}

// EdgeBandingSummary holds the calculated edge banding requirements for a cutting list.
type EdgeBandingSummary struct {
	TotalLinearMM    float64 `json:"total_linear_mm"`     // Total banding length in mm (no waste)
	TotalLinearM     float64 `json:"total_linear_m"`      // Total banding length in meters (no waste)
	WastePercent     float64 `json:"waste_percent"`       // Waste percentage applied
	TotalWithWasteMM float64 `json:"total_with_waste_mm"` // Total with waste in mm
	TotalWithWasteM  float64 `json:"total_with_waste_m"`  // Total with waste in meters
	PanelCount       int     `json:"panel_count"`         // Number of individual pieces needing banding
	EdgeCount        int     `json:"edge_count"`          // Total number of edges needing banding
}

// CalculateEdgeBanding computes the total edge banding needed for a list of panels.
// wastePercent is the additional percentage to add for waste (e.g., 10 for 10%).
func CalculateEdgeBanding(panels []Panel, wastePercent float64) EdgeBandingSummary {
	var totalMM float64
	var panelCount, edgeCount int

	for _, p := range panels {
		if !p.Edges.HasAny() {
			continue
		}
		totalMM += p.Edges.LinearLength(float64(p.Length), float64(p.Width)) * float64(p.Quantity)
		panelCount += p.Quantity
		edgeCount += p.Edges.EdgeCount() * p.Quantity
	}

	totalWithWaste := math.Ceil(totalMM * (1.0 + wastePercent/100.0))

	return EdgeBandingSummary{
		TotalLinearMM:    totalMM,
		TotalLinearM:     totalMM / 1000.0,
		WastePercent:     wastePercent,
		TotalWithWasteMM: totalWithWaste,
		TotalWithWasteM:  totalWithWaste / 1000.0,
		PanelCount:       panelCount,
		EdgeCount:        edgeCount,
	}
}

// PerPanelEdgeBanding is the banding breakdown of one cutting-list line.
type PerPanelEdgeBanding struct {
	Name          string  `json:"name"`
	Length        int     `json:"length"`
	Width         int     `json:"width"`
	Quantity      int     `json:"quantity"`
	Edges         string  `json:"edges"`           // e.g., "L1+W1+W2"
	LengthPerUnit float64 `json:"length_per_unit"` // mm per piece
	TotalLength   float64 `json:"total_length"`    // mm for all pieces
}

// CalculatePerPanelEdgeBanding returns a breakdown of banding per cutting-list line.
func CalculatePerPanelEdgeBanding(panels []Panel) []PerPanelEdgeBanding {
	var results []PerPanelEdgeBanding
	for _, p := range panels {
		if !p.Edges.HasAny() {
			continue
		}
		perUnit := p.Edges.LinearLength(float64(p.Length), float64(p.Width))
		results = append(results, PerPanelEdgeBanding{
			Name:          p.Name,
			Length:        p.Length,
			Width:         p.Width,
			Quantity:      p.Quantity,
			Edges:         p.Edges.String(),
			LengthPerUnit: perUnit,
			TotalLength:   perUnit * float64(p.Quantity),
		})
	}
	return results
}
