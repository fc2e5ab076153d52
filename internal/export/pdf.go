package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/ModuleCut/internal/model"
)

// partColor represents an RGB color for a panel in the overview.
type partColor struct {
	R, G, B int
}

var partColors = []partColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	rowHeight    = 6.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// Panel overview grid.
const (
	overviewCols = 4
	overviewCell = contentWidth / overviewCols
	overviewRowH = 62.0
	bandWidth    = 1.2
)

// pdfWriter keeps the cursor and the UTF-8 translator for one document.
type pdfWriter struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	y   float64
}

// ExportPDF writes the cut list, panel overview, bill of materials, edge-band
// summary and purchase estimate of a report to a PDF file.
func ExportPDF(path string, r Report) error {
	if len(r.Result.Pieces) == 0 {
		return fmt.Errorf("no pieces to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	w := &pdfWriter{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	pdf.AddPage()
	w.renderHeader(r)
	w.renderCutList(r)
	w.renderMaterials(r)

	pdf.AddPage()
	w.y = marginTop
	w.renderOverview(r.Result.Pieces)

	pdf.AddPage()
	w.y = marginTop
	w.renderEdgeBanding(r)
	w.renderPurchase(r)
	w.renderFooter()

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

func (w *pdfWriter) renderHeader(r Report) {
	pdf := w.pdf
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(contentWidth, headerHeight, w.tr(r.heading()), "", 0, "L", false, 0, "")

	spec := r.Result.Spec
	c := spec.Config
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Type: %s | Doors: %d | Drawers: %d | Shelves: %d | Divisions: %d | Rods: %d",
		spec.ModuleType, c.Doors, c.Drawers, c.Shelves, c.Divisions, c.HangingRods)
	if spec.OpenModule {
		stats += " | Open"
	}
	if spec.DoorType == model.DoorGlass && c.Doors > 0 {
		stats += " | Glass doors"
	}
	pdf.CellFormat(contentWidth, 5, w.tr(stats), "", 0, "L", false, 0, "")

	pdf.SetXY(marginLeft, marginTop+headerHeight+5)
	totals := fmt.Sprintf("Pieces: %d | Board area: %s m² | Edge band: %s m",
		r.Result.PieceCount(), formatQuantity(round2(r.Result.BoardArea())), formatQuantity(r.EdgeBanding().TotalLinearM))
	pdf.CellFormat(contentWidth, 5, w.tr(totals), "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+headerHeight+12, pageWidth-marginRight, marginTop+headerHeight+12)
	w.y = marginTop + headerHeight + 16
}

func (w *pdfWriter) renderCutList(r Report) {
	w.section("Cut List")
	rows := make([][]string, len(r.Result.Pieces))
	for i, p := range r.Result.Pieces {
		rows[i] = []string{
			fmt.Sprintf("%d", i+1),
			p.Name,
			fmt.Sprintf("%d", p.Quantity),
			fmt.Sprintf("%d", p.Length),
			fmt.Sprintf("%d", p.Width),
			string(p.Class),
			r.describe(p.MaterialID),
			p.Edges.String(),
		}
	}
	w.table(
		[]string{"#", "Piece", "Qty", "Length", "Width", "Class", "Material", "Edges"},
		[]float64{10, 50, 15, 22, 22, 30, 88, 30},
		rows,
	)
}

func (w *pdfWriter) renderMaterials(r Report) {
	w.y += 6
	w.section("Materials")
	rows := make([][]string, len(r.Result.Materials))
	for i, m := range r.Result.Materials {
		rows[i] = []string{m.MaterialID, r.describe(m.MaterialID), formatQuantity(m.Quantity), m.Unit}
	}
	w.table([]string{"ID", "Description", "Quantity", "Unit"}, []float64{30, 157, 50, 30}, rows)
}

// renderOverview draws every distinct panel to scale, banded edges in bold.
func (w *pdfWriter) renderOverview(pieces []model.Panel) {
	pdf := w.pdf
	w.section("Panel Overview")

	longest := 0
	for _, p := range pieces {
		longest = max(longest, p.Length, p.Width)
	}
	// One scale for all panels so relative sizes stay honest.
	scale := math.Min((overviewCell-10)/float64(longest), (overviewRowH-14)/float64(longest))

	for i, p := range pieces {
		col := i % overviewCols
		if col == 0 && i > 0 {
			w.y += overviewRowH
		}
		if w.y+overviewRowH > pageHeight-marginBottom {
			pdf.AddPage()
			w.y = marginTop
		}
		cellX := marginLeft + float64(col)*overviewCell
		pw := float64(p.Length) * scale
		ph := float64(p.Width) * scale
		px := cellX + (overviewCell-pw)/2
		py := w.y + 2 + (overviewRowH-14-ph)/2

		c := partColors[i%len(partColors)]
		pdf.SetFillColor(c.R, c.G, c.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.2)
		pdf.Rect(px, py, pw, ph, "FD")
		drawBandedEdges(pdf, p.Edges, px, py, pw, ph)

		pdf.SetFont("Helvetica", "", labelFontSize(overviewCell, 14))
		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(cellX, w.y+overviewRowH-12)
		pdf.CellFormat(overviewCell, 4, w.tr(fmt.Sprintf("%s x%d", p.Name, p.Quantity)), "", 0, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 6)
		pdf.SetTextColor(80, 80, 80)
		pdf.SetXY(cellX, w.y+overviewRowH-8)
		pdf.CellFormat(overviewCell, 4, fmt.Sprintf("%d x %d mm | %s", p.Length, p.Width, p.Edges), "", 0, "C", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
	w.y += overviewRowH
}

// drawBandedEdges strokes banded edges over a panel rectangle. L1 is the top
// length edge, L2 the bottom, W1 the left width edge and W2 the right.
func drawBandedEdges(pdf *fpdf.Fpdf, e model.EdgeBanding, x, y, w, h float64) {
	if !e.HasAny() {
		return
	}
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(bandWidth)
	if e.L1 {
		pdf.Line(x, y, x+w, y)
	}
	if e.L2 {
		pdf.Line(x, y+h, x+w, y+h)
	}
	if e.W1 {
		pdf.Line(x, y, x, y+h)
	}
	if e.W2 {
		pdf.Line(x+w, y, x+w, y+h)
	}
	pdf.SetLineWidth(0.2)
}

func (w *pdfWriter) renderEdgeBanding(r Report) {
	pdf := w.pdf
	summary := r.EdgeBanding()
	w.section("Edge Banding")

	items := []struct {
		label string
		value string
	}{
		{"Banded Pieces", fmt.Sprintf("%d", summary.PanelCount)},
		{"Banded Edges", fmt.Sprintf("%d", summary.EdgeCount)},
		{"Total Length", formatQuantity(summary.TotalLinearM) + " m"},
		{"Waste", fmt.Sprintf("%.0f%%", summary.WastePercent)},
		{"Total With Waste", formatQuantity(summary.TotalWithWasteM) + " m"},
	}
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		pdf.SetXY(marginLeft+5, w.y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		w.y += 7
	}

	breakdown := model.CalculatePerPanelEdgeBanding(r.Result.Pieces)
	if len(breakdown) == 0 {
		return
	}
	w.y += 3
	rows := make([][]string, len(breakdown))
	for i, b := range breakdown {
		rows[i] = []string{
			b.Name,
			fmt.Sprintf("%d x %d", b.Length, b.Width),
			fmt.Sprintf("%d", b.Quantity),
			b.Edges,
			formatQuantity(b.LengthPerUnit),
			formatQuantity(b.TotalLength),
		}
	}
	w.table([]string{"Piece", "Size", "Qty", "Edges", "Per Piece (mm)", "Total (mm)"}, []float64{60, 45, 20, 45, 45, 52}, rows)
}

func (w *pdfWriter) renderPurchase(r Report) {
	est := r.Purchase()
	w.y += 6
	w.section("Purchase Estimate")
	rows := make([][]string, len(est.Lines))
	for i, l := range est.Lines {
		rows[i] = []string{
			l.Description,
			formatQuantity(l.Quantity) + " " + l.Unit,
			fmt.Sprintf("%.0f%%", l.WastePercent),
			formatQuantity(round2(l.QuantityWithWaste)),
			fmt.Sprintf("%d %s", l.CommercialUnits, l.CommercialUnit),
		}
	}
	w.table([]string{"Material", "Required", "Waste", "With Waste", "Buy"}, []float64{110, 45, 22, 45, 45}, rows)
}

func (w *pdfWriter) renderFooter() {
	pdf := w.pdf
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(contentWidth, 4, "Generated by ModuleCut - Furniture Module Calculator", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func (w *pdfWriter) section(title string) {
	w.breakIfNeeded(7 + 2*rowHeight)
	w.pdf.SetFont("Helvetica", "B", 12)
	w.pdf.SetXY(marginLeft, w.y)
	w.pdf.CellFormat(100, 7, title, "", 0, "L", false, 0, "")
	w.y += 9
}

// table draws a bordered table with alternating row shading, repeating the
// header after a page break.
func (w *pdfWriter) table(headers []string, widths []float64, rows [][]string) {
	pdf := w.pdf
	header := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		x := marginLeft
		for i, h := range headers {
			pdf.SetXY(x, w.y)
			pdf.CellFormat(widths[i], rowHeight, h, "1", 0, "C", true, 0, "")
			x += widths[i]
		}
		w.y += rowHeight
		pdf.SetFont("Helvetica", "", 9)
	}

	header()
	for i, row := range rows {
		if w.breakIfNeeded(rowHeight) {
			header()
		}
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		x := marginLeft
		for j, cell := range row {
			align := "C"
			if j == 1 || widths[j] >= 80 {
				align = "L"
			}
			pdf.SetXY(x, w.y)
			pdf.CellFormat(widths[j], rowHeight, w.tr(cell), "1", 0, align, true, 0, "")
			x += widths[j]
		}
		w.y += rowHeight
	}
}

// breakIfNeeded starts a new page when h does not fit and reports whether it did.
func (w *pdfWriter) breakIfNeeded(h float64) bool {
	if w.y+h <= pageHeight-marginBottom-6 {
		return false
	}
	w.pdf.AddPage()
	w.y = marginTop
	return true
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
