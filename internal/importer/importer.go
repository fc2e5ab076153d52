// Package importer reads batches of module descriptions from CSV and Excel
// files. It supports automatic delimiter detection, flexible column mapping,
// and case-insensitive English or Spanish header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/ModuleCut/internal/engine"
	"github.com/piwi3910/ModuleCut/internal/model"
	"github.com/piwi3910/ModuleCut/internal/project"
)

// ImportResult holds the results of an import operation. Rows that fail to
// parse are reported in Errors and skipped; the rest of the batch is kept.
type ImportResult struct {
	Jobs     []project.Job
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
// A negative index means the column is absent.
type ColumnMapping struct {
	Label     int
	Type      int
	Width     int
	Height    int
	Depth     int
	Doors     int
	Drawers   int
	Shelves   int
	Divisions int
	Rods      int
	DoorType  int
	Open      int
	Profile   int
}

func (m *ColumnMapping) roles() map[string]*int {
	return map[string]*int{
		"label":     &m.Label,
		"type":      &m.Type,
		"width":     &m.Width,
		"height":    &m.Height,
		"depth":     &m.Depth,
		"doors":     &m.Doors,
		"drawers":   &m.Drawers,
		"shelves":   &m.Shelves,
		"divisions": &m.Divisions,
		"rods":      &m.Rods,
		"door type": &m.DoorType,
		"open":      &m.Open,
		"profile":   &m.Profile,
	}
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"label":     {"label", "name", "module", "description", "etiqueta", "nombre", "modulo", "módulo"},
	"type":      {"type", "module type", "module_type", "kind", "tipo", "tipo modulo", "tipo módulo"},
	"width":     {"width", "w", "ancho"},
	"height":    {"height", "h", "alto", "altura"},
	"depth":     {"depth", "d", "profundidad", "prof"},
	"doors":     {"doors", "door", "puertas"},
	"drawers":   {"drawers", "drawer", "cajones"},
	"shelves":   {"shelves", "shelf", "estantes"},
	"divisions": {"divisions", "division", "divisiones"},
	"rods":      {"rods", "hanging rods", "hanging_rods", "barrales", "barral"},
	"door type": {"door type", "door_type", "doortype", "tipo puerta", "tipo de puerta"},
	"open":      {"open", "open module", "open_module", "abierto"},
	"profile":   {"profile", "selection", "perfil"},
}

// positionalMapping is used when the first row is not a header:
// type, width, height, depth, doors, drawers, shelves, divisions, rods, door type, open, profile.
var positionalMapping = ColumnMapping{
	Label: -1, Type: 0, Width: 1, Height: 2, Depth: 3,
	Doors: 4, Drawers: 5, Shelves: 6, Divisions: 7, Rods: 8,
	DoorType: 9, Open: 10, Profile: 11,
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Prefer consistency, then more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// Returns the mapping and true if a header was detected, or the positional
// mapping and false if no known header name was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{}
	roles := mapping.roles()
	for _, idx := range roles {
		*idx = -1
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias && *roles[role] == -1 {
					*roles[role] = i
					isHeader = true
				}
			}
		}
	}

	if !isHeader {
		return positionalMapping, false
	}
	return mapping, true
}

// ParseModuleType resolves a type cell given either as a tag ("placard") or a
// display label ("Wardrobe"), case-insensitively. Unknown values are returned
// lowercased and left for the calculator to reject.
func ParseModuleType(s string) (model.ModuleType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for _, t := range engine.Types() {
		if normalized == string(t) || normalized == strings.ToLower(engine.Label(t)) {
			return t, true
		}
	}
	return model.ModuleType(normalized), false
}

// parseDoorType converts a door type cell to a model.DoorType.
func parseDoorType(s string) (model.DoorType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "board", "melamine", "placa", "melamina":
		return model.DoorBoard, true
	case "glass", "vidrio", "aluminio", "aluminium":
		return model.DoorGlass, true
	default:
		return model.DoorBoard, false
	}
}

// parseBool accepts the usual spreadsheet spellings of yes and no.
func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "no", "n", "false", "0", "-":
		return false, true
	case "yes", "y", "si", "sí", "s", "true", "1", "x":
		return true, true
	default:
		return false, false
	}
}

// parseInt parses a whole number, accepting decimals that Excel may produce
// and rounding them to the nearest unit.
func parseInt(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(math.Round(f)), nil
}

// getCell safely retrieves a cell value from a row by column index.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow extracts a Job from a row using the given column mapping.
// Range checks are left to the calculator; only malformed cells are errors here.
func parseRow(row []string, mapping ColumnMapping, rowLabel string) (project.Job, string, []string) {
	var warnings []string

	typeStr := getCell(row, mapping.Type)
	if typeStr == "" {
		return project.Job{}, fmt.Sprintf("%s: Missing module type", rowLabel), nil
	}
	moduleType, known := ParseModuleType(typeStr)
	if !known {
		warnings = append(warnings, fmt.Sprintf("%s: Unknown module type '%s'", rowLabel, typeStr))
	}

	spec := model.ModuleSpec{
		Label:      getCell(row, mapping.Label),
		ModuleType: moduleType,
		Selection:  model.ComponentSelection{},
	}

	required := []struct {
		name string
		idx  int
		dst  *int
	}{
		{"width", mapping.Width, &spec.Dimensions.Width},
		{"height", mapping.Height, &spec.Dimensions.Height},
		{"depth", mapping.Depth, &spec.Dimensions.Depth},
	}
	for _, f := range required {
		s := getCell(row, f.idx)
		if s == "" {
			return project.Job{}, fmt.Sprintf("%s: Missing %s value", rowLabel, f.name), nil
		}
		n, err := parseInt(s)
		if err != nil {
			return project.Job{}, fmt.Sprintf("%s: Invalid %s '%s'", rowLabel, f.name, s), nil
		}
		*f.dst = n
	}

	optional := []struct {
		name string
		idx  int
		dst  *int
	}{
		{"doors", mapping.Doors, &spec.Config.Doors},
		{"drawers", mapping.Drawers, &spec.Config.Drawers},
		{"shelves", mapping.Shelves, &spec.Config.Shelves},
		{"divisions", mapping.Divisions, &spec.Config.Divisions},
		{"rods", mapping.Rods, &spec.Config.HangingRods},
	}
	for _, f := range optional {
		s := getCell(row, f.idx)
		if s == "" {
			continue
		}
		n, err := parseInt(s)
		if err != nil {
			return project.Job{}, fmt.Sprintf("%s: Invalid %s '%s'", rowLabel, f.name, s), nil
		}
		*f.dst = n
	}

	if s := getCell(row, mapping.DoorType); s != "" {
		dt, ok := parseDoorType(s)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("%s: Unknown door type '%s', defaulting to board", rowLabel, s))
		}
		spec.DoorType = dt
	}

	if s := getCell(row, mapping.Open); s != "" {
		open, ok := parseBool(s)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("%s: Unrecognized open value '%s', assuming closed", rowLabel, s))
		}
		spec.OpenModule = open
	}

	return project.Job{Profile: getCell(row, mapping.Profile), Module: spec}, "", warnings
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports module specs from a CSV file, detecting the delimiter
// and mapping columns by header names.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	var warnings []string
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		warnings = append(warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	records, err := readCSV(bytes.NewReader(data), delimiter)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}
	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", warnings)
}

// ImportCSVFromReader imports module specs from a CSV reader with a known delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	records, err := readCSV(reader, delimiter)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot read CSV: %v", err)}}
	}
	if len(records) == 0 {
		return ImportResult{Errors: []string{"File is empty"}}
	}
	return importFromRows(records, "Line", nil)
}

func readCSV(r io.Reader, delimiter rune) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

// ImportExcel imports module specs from the first sheet of an Excel file.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}
	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// Import picks the CSV or Excel reader from the file extension.
func Import(path string) ImportResult {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xlsm") {
		return ImportExcel(path)
	}
	return ImportCSV(path)
}

// importFromRows is the shared import logic for both CSV and Excel data.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		var missing []string
		for _, c := range []struct {
			name string
			idx  int
		}{
			{"Type", mapping.Type},
			{"Width", mapping.Width},
			{"Height", mapping.Height},
			{"Depth", mapping.Depth},
		} {
			if c.idx == -1 {
				missing = append(missing, c.name)
			}
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 4 {
		// An unrecognized header still has a non-numeric width column
		if _, err := parseInt(strings.TrimSpace(rows[0][positionalMapping.Width])); err != nil {
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		job, errMsg, warnings := parseRow(row, mapping, rowLabel)
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Warnings = append(result.Warnings, warnings...)
		result.Jobs = append(result.Jobs, job)
	}

	return result
}
