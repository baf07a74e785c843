package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/piwi3910/printlab/internal/model"
)

// FrameResult holds the outcome of a frame request import.
type FrameResult struct {
	Frames   []model.FrameRequest
	Errors   []string
	Warnings []string
}

// frameColumns maps frame-sheet roles to their column indices.
type frameColumns struct {
	FrameNo     int
	Quantity    int
	Description int
}

var frameAliases = map[string][]string{
	"frame":       {"frame", "frame no", "frame_no", "frame number", "no"},
	"quantity":    {"quantity", "qty", "count", "num", "amount"},
	"description": {"description", "desc", "frame description", "style"},
}

// detectFrameColumns examines a header row, falling back to the
// positional default (frame_no, quantity, description).
func detectFrameColumns(row []string) (frameColumns, bool) {
	cols := frameColumns{
		FrameNo:     findColumn(row, frameAliases["frame"]),
		Quantity:    findColumn(row, frameAliases["quantity"]),
		Description: findColumn(row, frameAliases["description"]),
	}
	if cols.FrameNo == -1 && cols.Quantity == -1 && cols.Description == -1 {
		return frameColumns{FrameNo: 0, Quantity: 1, Description: 2}, false
	}
	return cols, true
}

// parseFrameRow extracts one frame request from a row.
func parseFrameRow(row []string, cols frameColumns, rowLabel string) (model.FrameRequest, string) {
	frameNo := getCell(row, cols.FrameNo)
	if frameNo == "" {
		return model.FrameRequest{}, fmt.Sprintf("%s: missing frame number", rowLabel)
	}

	qtyStr := getCell(row, cols.Quantity)
	if qtyStr == "" {
		return model.FrameRequest{}, fmt.Sprintf("%s: missing quantity", rowLabel)
	}
	qty, err := strconv.Atoi(qtyStr)
	if err != nil {
		return model.FrameRequest{}, fmt.Sprintf("%s: invalid quantity '%s'", rowLabel, qtyStr)
	}
	if qty <= 0 {
		return model.FrameRequest{}, fmt.Sprintf("%s: quantity must be positive", rowLabel)
	}

	return model.FrameRequest{
		FrameNo:     frameNo,
		Quantity:    qty,
		Description: getCell(row, cols.Description),
	}, ""
}

// ImportFramesCSV imports frame requests from a delimited file.
func ImportFramesCSV(path string) FrameResult {
	result := FrameResult{}
	records, warnings, err := readCSVFile(path)
	result.Warnings = warnings
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result
	}
	return importFrameRows(records, "Line", result.Warnings)
}

// ImportFramesExcel imports frame requests from the first sheet of an
// .xlsx workbook.
func ImportFramesExcel(path string) FrameResult {
	rows, err := readExcelFile(path)
	if err != nil {
		return FrameResult{Errors: []string{err.Error()}}
	}
	return importFrameRows(rows, "Row", nil)
}

func importFrameRows(rows [][]string, rowPrefix string, initialWarnings []string) FrameResult {
	result := FrameResult{Warnings: initialWarnings}

	cols, hasHeader := detectFrameColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")
	} else if len(rows[0]) >= 2 {
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
		frame, errMsg := parseFrameRow(row, cols, rowLabel)
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Frames = append(result.Frames, frame)
	}

	return result
}
