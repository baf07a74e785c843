// Package importer provides CSV/TSV and Excel intake for customer order
// lines and frame requests. It supports automatic delimiter detection,
// flexible column mapping, and case-insensitive header recognition.
// Problems accumulate per row; a bad row never aborts the import.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// DetectCSVDelimiter determines the most likely delimiter in the data.
// It tries comma, semicolon, tab, and pipe; the delimiter producing the
// most consistent multi-column row shape wins.
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

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// getCell safely retrieves a trimmed cell value by column index.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
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

// findColumn matches header cells against aliases, returning the first
// matching column index or -1.
func findColumn(row []string, aliases []string) int {
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for _, alias := range aliases {
			if normalized == alias {
				return i
			}
		}
	}
	return -1
}

// readCSVFile loads a delimited file, auto-detecting the delimiter.
// Non-comma delimiters are surfaced as a warning rather than hidden.
func readCSVFile(path string) ([][]string, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil, fmt.Errorf("file is empty")
	}

	var warnings []string
	delimiter := DetectCSVDelimiter(data)
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
		return nil, warnings, fmt.Errorf("cannot read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, warnings, fmt.Errorf("file is empty")
	}
	return records, warnings, nil
}

// readExcelFile loads the first sheet of an .xlsx workbook as rows.
func readExcelFile(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("Excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("cannot read Excel data: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet is empty")
	}
	return rows, nil
}
