package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	sheetCutList   = "Cut List"
	sheetMaterials = "Materials"
	sheetPurchase  = "Purchase"
)

var (
	cutListHeaders   = []string{"#", "Piece", "Qty", "Length (mm)", "Width (mm)", "Class", "Material", "L1", "L2", "W1", "W2", "Edge (mm)"}
	materialHeaders  = []string{"ID", "Description", "Quantity", "Unit"}
	purchaseHeaders  = []string{"ID", "Description", "Quantity", "Unit", "Waste %", "With Waste", "Commercial Unit", "Per Commercial", "Buy"}
	cutListColWidths = []float64{5, 22, 6, 12, 12, 14, 30, 5, 5, 5, 5, 12}
)

// ExportXLSX writes the cut list, bill of materials and purchase estimate of a
// report to an Excel workbook with one sheet each.
func ExportXLSX(path string, r Report) error {
	f, err := BuildWorkbook(r)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// BuildWorkbook builds the report workbook in memory.
func BuildWorkbook(r Report) (*excelize.File, error) {
	if len(r.Result.Pieces) == 0 {
		return nil, fmt.Errorf("no pieces to export")
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetCutList); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	for _, name := range []string{sheetMaterials, sheetPurchase} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 1}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create total style: %w", err)
	}

	writeHeaders(f, sheetCutList, cutListHeaders, headerStyle)
	for i, p := range r.Result.Pieces {
		edgeMM := p.Edges.LinearLength(float64(p.Length), float64(p.Width)) * float64(p.Quantity)
		writeRow(f, sheetCutList, i+2, []any{
			i + 1, p.Name, p.Quantity, p.Length, p.Width, string(p.Class), r.describe(p.MaterialID),
			mark(p.Edges.L1), mark(p.Edges.L2), mark(p.Edges.W1), mark(p.Edges.W2), edgeMM,
		})
	}
	totalRow := len(r.Result.Pieces) + 2
	f.SetCellValue(sheetCutList, fmt.Sprintf("A%d", totalRow), "Total")
	f.SetCellFormula(sheetCutList, fmt.Sprintf("C%d", totalRow), fmt.Sprintf("SUM(C2:C%d)", totalRow-1))
	f.SetCellFormula(sheetCutList, fmt.Sprintf("L%d", totalRow), fmt.Sprintf("SUM(L2:L%d)", totalRow-1))
	f.SetCellStyle(sheetCutList, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("L%d", totalRow), totalStyle)
	for i, w := range cutListColWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetCutList, col, col, w)
	}

	writeHeaders(f, sheetMaterials, materialHeaders, headerStyle)
	for i, m := range r.Result.Materials {
		writeRow(f, sheetMaterials, i+2, []any{m.MaterialID, r.describe(m.MaterialID), m.Quantity, m.Unit})
	}
	f.SetColWidth(sheetMaterials, "B", "B", 36)

	est := r.Purchase()
	writeHeaders(f, sheetPurchase, purchaseHeaders, headerStyle)
	for i, l := range est.Lines {
		writeRow(f, sheetPurchase, i+2, []any{
			l.MaterialID, l.Description, l.Quantity, l.Unit, l.WastePercent,
			round2(l.QuantityWithWaste), l.CommercialUnit, l.UnitsPerCommercial, l.CommercialUnits,
		})
	}
	f.SetColWidth(sheetPurchase, "B", "B", 36)
	f.SetColWidth(sheetPurchase, "G", "G", 16)

	f.SetActiveSheet(0)
	return f, nil
}

func writeHeaders(f *excelize.File, sheet string, headers []string, style int) {
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, style)
	}
}

func writeRow(f *excelize.File, sheet string, row int, values []any) {
	for i, v := range values {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), v)
	}
}

func mark(banded bool) string {
	if banded {
		return "X"
	}
	return ""
}
