// Package export renders module calculation results to PDF reports, QR panel
// labels, spreadsheets and DXF outlines.
package export

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/piwi3910/ModuleCut/internal/engine"
	"github.com/piwi3910/ModuleCut/internal/model"
)

// Report is a calculation result plus what the exporters need to describe it.
type Report struct {
	Title             string
	Result            model.CalculationResult
	Catalog           *model.Catalog // optional; material IDs are shown as-is without it
	BoardWastePercent float64
	EdgeWastePercent  float64
}

// NewReport builds a report using the waste percentages of the app config.
func NewReport(result model.CalculationResult, catalog *model.Catalog, cfg model.AppConfig) Report {
	return Report{
		Result:            result,
		Catalog:           catalog,
		BoardWastePercent: cfg.BoardWastePercent,
		EdgeWastePercent:  cfg.EdgeWastePercent,
	}
}

func (r Report) heading() string {
	if r.Title != "" {
		return r.Title
	}
	spec := r.Result.Spec
	name := spec.Label
	if name == "" {
		name = engine.Label(spec.ModuleType)
	}
	return fmt.Sprintf("%s %s", name, spec.Dimensions)
}

func (r Report) describe(id string) string {
	return r.Catalog.Describe(id)
}

// Purchase returns the commercial units to buy for the bill of materials.
func (r Report) Purchase() model.PurchaseEstimate {
	var catalog model.Catalog
	if r.Catalog != nil {
		catalog = *r.Catalog
	}
	return model.CalculatePurchaseEstimate(r.Result.Materials, catalog, r.BoardWastePercent, r.EdgeWastePercent)
}

// EdgeBanding returns the banding summary of the cut list.
func (r Report) EdgeBanding() model.EdgeBandingSummary {
	return model.CalculateEdgeBanding(r.Result.Pieces, r.EdgeWastePercent)
}

var printer = message.NewPrinter(language.English)

// formatQuantity prints a quantity with thousands separators and up to 4 decimals.
func formatQuantity(v float64) string {
	if v == float64(int64(v)) {
		return printer.Sprintf("%d", int64(v))
	}
	s := printer.Sprintf("%.4f", v)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	return s
}
