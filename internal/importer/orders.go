package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/piwi3910/printlab/internal/model"
)

// OrderResult holds the outcome of an order import.
type OrderResult struct {
	Lines    []model.OrderLine
	Errors   []string
	Warnings []string
}

// orderColumns maps order-sheet roles to their column indices.
type orderColumns struct {
	Code     int
	Quantity int
	Images   int
	Artist   int
}

// Accepted header aliases per column role (all lowercase).
var orderAliases = map[string][]string{
	"code":     {"code", "product", "product code", "item", "sku"},
	"quantity": {"quantity", "qty", "count", "num", "amount"},
	"images":   {"images", "image", "image codes", "poses", "pose", "codes"},
	"artist":   {"artist", "artist series", "as"},
}

// detectOrderColumns examines a header row. It returns the mapping and
// true when a header was recognized, or the positional default
// (code, quantity, images, artist) and false otherwise.
func detectOrderColumns(row []string) (orderColumns, bool) {
	cols := orderColumns{
		Code:     findColumn(row, orderAliases["code"]),
		Quantity: findColumn(row, orderAliases["quantity"]),
		Images:   findColumn(row, orderAliases["images"]),
		Artist:   findColumn(row, orderAliases["artist"]),
	}
	if cols.Code == -1 && cols.Quantity == -1 && cols.Images == -1 {
		return orderColumns{Code: 0, Quantity: 1, Images: 2, Artist: 3}, false
	}
	return cols, true
}

// splitImageCodes splits a cell of image codes on spaces, commas, or
// semicolons.
func splitImageCodes(cell string) []string {
	fields := strings.FieldsFunc(cell, func(r rune) bool {
		return r == ' ' || r == ',' || r == ';'
	})
	return fields
}

// parseBoolCell reads common spreadsheet truthy markers.
func parseBoolCell(cell string) bool {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "1", "y", "yes", "true", "x":
		return true
	default:
		return false
	}
}

// parseOrderRow extracts one order line from a row. The retouch flag is
// derived by intersecting the row's image codes with the retouch set.
func parseOrderRow(row []string, cols orderColumns, rowLabel string, retouch map[string]bool) (model.OrderLine, string) {
	code := getCell(row, cols.Code)
	if code == "" {
		return model.OrderLine{}, fmt.Sprintf("%s: missing product code", rowLabel)
	}

	qtyStr := getCell(row, cols.Quantity)
	if qtyStr == "" {
		return model.OrderLine{}, fmt.Sprintf("%s: missing quantity", rowLabel)
	}
	qty, err := strconv.Atoi(qtyStr)
	if err != nil {
		return model.OrderLine{}, fmt.Sprintf("%s: invalid quantity '%s'", rowLabel, qtyStr)
	}
	if qty <= 0 {
		return model.OrderLine{}, fmt.Sprintf("%s: quantity must be positive", rowLabel)
	}

	images := model.NormalizeImageCodes(splitImageCodes(getCell(row, cols.Images)))

	line := model.OrderLine{
		Code:     code,
		Quantity: qty,
		Images:   images,
		Artist:   parseBoolCell(getCell(row, cols.Artist)),
	}
	for _, img := range images {
		if retouch[img] {
			line.Retouch = true
			break
		}
	}
	return line, ""
}

// ImportOrdersCSV imports order lines from a delimited file. The retouch
// set holds normalized image codes flagged for retouching; ownership of
// the set stays with the caller.
func ImportOrdersCSV(path string, retouch map[string]bool) OrderResult {
	result := OrderResult{}
	records, warnings, err := readCSVFile(path)
	result.Warnings = warnings
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result
	}
	return importOrderRows(records, "Line", result.Warnings, retouch)
}

// ImportOrdersExcel imports order lines from the first sheet of an .xlsx
// workbook.
func ImportOrdersExcel(path string, retouch map[string]bool) OrderResult {
	rows, err := readExcelFile(path)
	if err != nil {
		return OrderResult{Errors: []string{err.Error()}}
	}
	return importOrderRows(rows, "Row", nil, retouch)
}

// importOrderRows is the shared intake logic for CSV and Excel data.
func importOrderRows(rows [][]string, rowPrefix string, initialWarnings []string, retouch map[string]bool) OrderResult {
	result := OrderResult{Warnings: initialWarnings}

	cols, hasHeader := detectOrderColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")
	} else if len(rows[0]) >= 2 {
		// No recognized header: if the quantity column is not numeric the
		// first row is likely an unrecognized header, skip it.
		if _, err := strconv.Atoi(strings.TrimSpace(rows[0][1])); err != nil {
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
		line, errMsg := parseOrderRow(row, cols, rowLabel, retouch)
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Lines = append(result.Lines, line)
	}

	return result
}
