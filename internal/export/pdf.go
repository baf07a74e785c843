// Package export renders an assembled order into deliverable files: a
// production summary PDF, QR-coded claim labels, and an Excel item list.
package export

import (
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/printlab/internal/model"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	rowHeight    = 7.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// Item table column widths in mm. Name, size, images, frame, flags.
var columnWidths = []float64{62, 20, 48, 26, 24}

// OrderPDF generates the production summary PDF for one assembled order:
// the ordered item table, per-request frame allocation results, and any
// intake warnings.
func OrderPDF(path, orderRef string, items []model.PrintItem, demands []model.FrameDemand, warnings []string) error {
	if len(items) == 0 {
		return fmt.Errorf("no items to export")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(contentWidth, headerHeight, fmt.Sprintf("Order %s - %d print items", orderRef, len(items)), "", 1, "L", false, 0, "")

	renderItemTable(pdf, items)
	renderDemands(pdf, demands)
	renderWarnings(pdf, warnings)

	return pdf.OutputFileAndClose(path)
}

// renderItemTable draws the ordered item list.
func renderItemTable(pdf *fpdf.Fpdf, items []model.PrintItem) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetX(marginLeft)
	headers := []string{"Item", "Size", "Images", "Frame", "Flags"}
	for i, h := range headers {
		pdf.CellFormat(columnWidths[i], rowHeight, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, item := range items {
		pdf.SetX(marginLeft)
		pdf.CellFormat(columnWidths[0], rowHeight, truncate(pdf, item.DisplayName, columnWidths[0]-2), "1", 0, "L", false, 0, "")
		pdf.CellFormat(columnWidths[1], rowHeight, item.Size, "1", 0, "L", false, 0, "")
		pdf.CellFormat(columnWidths[2], rowHeight, strings.Join(item.Images, " "), "1", 0, "L", false, 0, "")
		pdf.CellFormat(columnWidths[3], rowHeight, frameCell(item), "1", 0, "L", false, 0, "")
		pdf.CellFormat(columnWidths[4], rowHeight, flagCell(item), "1", 1, "L", false, 0, "")
	}
}

// renderDemands draws the frame allocation outcome per request.
func renderDemands(pdf *fpdf.Fpdf, demands []model.FrameDemand) {
	if len(demands) == 0 {
		return
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetX(marginLeft)
	pdf.CellFormat(contentWidth, rowHeight, "Frame allocation", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, d := range demands {
		pdf.SetX(marginLeft)
		line := fmt.Sprintf("%s: %d x %s %s - assigned %d", d.FrameNo, d.Quantity, d.Size, d.Color, d.Assigned)
		if d.Residual() > 0 {
			line += fmt.Sprintf(", UNMET %d", d.Residual())
			pdf.SetTextColor(180, 0, 0)
		}
		pdf.CellFormat(contentWidth, 5, line, "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
}

// renderWarnings draws intake warnings at the end of the document.
func renderWarnings(pdf *fpdf.Fpdf, warnings []string) {
	if len(warnings) == 0 {
		return
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetX(marginLeft)
	pdf.CellFormat(contentWidth, rowHeight, "Warnings", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(100, 100, 100)
	for _, w := range warnings {
		pdf.SetX(marginLeft)
		pdf.CellFormat(contentWidth, 5, truncate(pdf, w, contentWidth-2), "", 1, "L", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
}

// frameCell formats the frame column for an item.
func frameCell(item model.PrintItem) string {
	if item.Framed {
		return item.FrameColor
	}
	if item.Kind == model.KindTrio && item.FrameColor != "" {
		return item.FrameColor + " (trio)"
	}
	return "-"
}

// flagCell formats the flags column for an item.
func flagCell(item model.PrintItem) string {
	var flags []string
	if item.Complimentary {
		flags = append(flags, "comp")
	}
	if item.Artist {
		flags = append(flags, "artist")
	}
	if item.Retouch {
		flags = append(flags, "retouch")
	}
	if len(flags) == 0 {
		return "-"
	}
	return strings.Join(flags, ",")
}

// truncate shortens s with an ellipsis so it fits the given width.
func truncate(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > width {
		s = s[:len(s)-1]
	}
	return s + "..."
}
