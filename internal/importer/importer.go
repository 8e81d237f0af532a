// Package importer provides CSV and Excel import of slot bindings.
// It supports automatic delimiter detection, flexible column mapping,
// and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/piwi3910/PulseBoard/internal/model"
	"github.com/xuri/excelize/v2"
)

// SlotBinding is one imported row: a slot name and the source config
// to bind to it.
type SlotBinding struct {
	Slot   string
	Config model.SlotConfig
}

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Bindings []SlotBinding
	Errors   []string
	Warnings []string
}

// ApplyTo writes the imported bindings into a panel source config,
// later rows overriding earlier ones. Returns a warning per binding
// whose slot is outside the panel's current grid: the binding is still
// stored (it activates if the grid grows), it just will not sample.
func (r ImportResult) ApplyTo(cfg *model.PanelSourceConfig) []string {
	active := make(map[string]bool)
	for _, name := range cfg.SlotNames() {
		active[name] = true
	}

	var warnings []string
	for _, b := range r.Bindings {
		cfg.SetSlot(b.Slot, b.Config)
		if !active[b.Slot] {
			warnings = append(warnings, fmt.Sprintf("Slot %s is outside the current group layout", b.Slot))
		}
	}
	return warnings
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Slot    int
	Source  int
	Caption int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"slot":    {"slot", "slot name", "position", "cell", "key", "item"},
	"source":  {"source", "source id", "data source", "sensor", "metric", "provider"},
	"caption": {"caption", "caption override", "label", "title", "display name", "name"},
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
		reader.FieldsPerRecord = -1 // Allow variable field counts

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		// Score: count how many rows have the same column count as the first row
		// Only consider delimiters that produce more than 1 column
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

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each column role.
// Returns the mapping and true if a header was detected, or a default positional
// mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Slot:    -1,
		Source:  -1,
		Caption: -1,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					switch role {
					case "slot":
						if mapping.Slot == -1 {
							mapping.Slot = i
						}
					case "source":
						if mapping.Source == -1 {
							mapping.Source = i
						}
					case "caption":
						if mapping.Caption == -1 {
							mapping.Caption = i
						}
					}
				}
			}
		}
	}

	if !isHeader {
		// Fall back to positional mapping: Slot, Source, Caption
		return ColumnMapping{
			Slot:    0,
			Source:  1,
			Caption: 2,
		}, false
	}

	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow extracts a slot binding from a row using the given column mapping.
// Returns the binding, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string) (SlotBinding, string, string) {
	slotStr := strings.ToLower(getCell(row, mapping.Slot))
	if slotStr == "" {
		return SlotBinding{}, fmt.Sprintf("%s: Missing slot name", rowLabel), ""
	}

	key, ok := model.ParseSlotKey(slotStr)
	if !ok {
		return SlotBinding{}, fmt.Sprintf("%s: Invalid slot name '%s'", rowLabel, slotStr), ""
	}

	var warning string
	if key.Legacy {
		key = key.Migrated()
		warning = fmt.Sprintf("%s: Legacy slot name '%s', using '%s'", rowLabel, slotStr, key.String())
	}

	source := strings.ToLower(getCell(row, mapping.Source))
	if source == "" {
		return SlotBinding{}, fmt.Sprintf("%s: Missing source value", rowLabel), ""
	}
	// "none" and "-" clear the slot binding
	if source == "-" {
		source = "none"
	}

	binding := SlotBinding{
		Slot: key.String(),
		Config: model.SlotConfig{
			SourceID:        source,
			CaptionOverride: getCell(row, mapping.Caption),
		},
	}
	return binding, "", warning
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

// ImportCSV imports slot bindings from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
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

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
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

// ImportCSVFromReader imports slot bindings from a CSV reader with a specific
// delimiter. This is useful for testing or when the delimiter is already known.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports slot bindings from an Excel (.xlsx, .xls) file.
// Reads the first sheet and auto-detects column mapping from headers.
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

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row into bindings.
// A slot bound twice keeps the later row's config, with a warning.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	// Detect columns from first row
	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		// Validate that required columns were found
		missing := []string{}
		if mapping.Slot == -1 {
			missing = append(missing, "Slot")
		}
		if mapping.Source == -1 {
			missing = append(missing, "Source")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else {
		// No header: check if the first cell parses as a slot name.
		// If not, treat the row as an unrecognized header and skip it.
		if len(rows[0]) >= 2 {
			first := strings.ToLower(strings.TrimSpace(rows[0][0]))
			if _, ok := model.ParseSlotKey(first); !ok {
				startRow = 1
				result.Warnings = append(result.Warnings, "Detected header row, skipping")
			}
		}
	}

	seen := make(map[string]int)
	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		lineNum := i + 1

		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, lineNum)
		binding, errMsg, warning := parseRow(row, mapping, rowLabel)

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		if prev, dup := seen[binding.Slot]; dup {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s: Slot %s bound twice, keeping this row", rowLabel, binding.Slot))
			result.Bindings[prev] = binding
			continue
		}
		seen[binding.Slot] = len(result.Bindings)
		result.Bindings = append(result.Bindings, binding)
	}

	return result
}
