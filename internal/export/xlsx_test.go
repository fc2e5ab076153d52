package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportXLSX(t *testing.T) {
	r := buildTestReport(t)
	path := filepath.Join(t.TempDir(), "module.xlsx")

	require.NoError(t, ExportXLSX(path, r))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetCutList, sheetMaterials, sheetPurchase}, f.GetSheetList())

	rows, err := f.GetRows(sheetCutList)
	require.NoError(t, err)
	require.Len(t, rows, len(r.Result.Pieces)+2, "header, pieces, total")
	assert.Equal(t, cutListHeaders, rows[0])
	assert.Equal(t, "Side", rows[1][1])
	assert.Equal(t, "2", rows[1][2])
	assert.Equal(t, "Total", rows[len(rows)-1][0])

	formula, err := f.GetCellFormula(sheetCutList, "C7")
	require.NoError(t, err)
	assert.Equal(t, "SUM(C2:C6)", formula)

	rows, err = f.GetRows(sheetMaterials)
	require.NoError(t, err)
	require.Len(t, rows, len(r.Result.Materials)+1)
	assert.Equal(t, "mat-1", rows[1][0])
	assert.Equal(t, "White Melamine 18mm on MDF", rows[1][1])
	assert.Equal(t, "m²", rows[1][3])

	rows, err = f.GetRows(sheetPurchase)
	require.NoError(t, err)
	require.Len(t, rows, len(r.Result.Materials)+1)
	assert.Equal(t, "sheet", rows[1][6])
	assert.Equal(t, "1", rows[1][8], "2.2755 m² + 15% fits one 5.03 m² sheet")
}

func TestBuildWorkbook_Empty(t *testing.T) {
	_, err := BuildWorkbook(Report{})
	assert.Error(t, err)
}

func TestMark(t *testing.T) {
	assert.Equal(t, "X", mark(true))
	assert.Equal(t, "", mark(false))
}
