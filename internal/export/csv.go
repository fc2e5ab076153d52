package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ExportCSV writes the cut list followed by the bill of materials to a CSV file.
func ExportCSV(path string, r Report) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	if err := WriteCSV(file, r); err != nil {
		return err
	}
	return file.Close()
}

// WriteCSV writes the report as two blocks separated by an empty line:
// pieces (name, quantity, length, width, class, material, edges) and materials
// (id, description, quantity, unit).
func WriteCSV(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)

	records := [][]string{{"Piece", "Quantity", "Length", "Width", "Class", "Material", "Edges"}}
	for _, p := range r.Result.Pieces {
		records = append(records, []string{
			p.Name,
			strconv.Itoa(p.Quantity),
			strconv.Itoa(p.Length),
			strconv.Itoa(p.Width),
			string(p.Class),
			p.MaterialID,
			p.Edges.String(),
		})
	}
	records = append(records, []string{}, []string{"Material", "Description", "Quantity", "Unit"})
	for _, m := range r.Result.Materials {
		records = append(records, []string{
			m.MaterialID,
			r.describe(m.MaterialID),
			strconv.FormatFloat(m.Quantity, 'f', -1, 64),
			m.Unit,
		})
	}

	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}
