package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/printlab/internal/model"
)

// LabelInfo holds the data encoded into each claim label's QR code.
type LabelInfo struct {
	OrderRef   string   `json:"order"`
	ItemID     string   `json:"item_id"`
	Code       string   `json:"code"`
	Size       string   `json:"size"`
	Images     []string `json:"images"`
	FrameColor string   `json:"frame_color,omitempty"`
	SheetType  string   `json:"sheet_type"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10
// rows per page on US Letter).
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ClaimLabels generates a PDF of QR-coded claim labels, one per print
// item, for matching finished prints back to the customer order.
func ClaimLabels(path, orderRef string, items []model.PrintItem) error {
	if len(items) == 0 {
		return fmt.Errorf("no items to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, item := range items {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		info := LabelInfo{
			OrderRef:   orderRef,
			ItemID:     item.ID,
			Code:       item.Code,
			Size:       item.Size,
			Images:     item.Images,
			FrameColor: item.FrameColor,
			SheetType:  string(item.SheetType),
		}
		if err := renderLabel(pdf, x, y, item, info); err != nil {
			return fmt.Errorf("failed to render label for item %s: %w", item.ID, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single claim label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, item model.PrintItem, info LabelInfo) error {
	// Light border as a cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s", item.ID)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	pdf.CellFormat(textW, 4.5, truncate(pdf, item.DisplayName, textW), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	pdf.CellFormat(textW, 3.5, fmt.Sprintf("%s  %s", item.Size, item.SheetType), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	pdf.CellFormat(textW, 3, "Images: "+truncate(pdf, joinImages(item.Images), textW-12), "", 1, "L", false, 0, "")

	if item.Framed {
		pdf.SetXY(textX, y+labelPadding+12.5)
		pdf.SetFont("Helvetica", "I", 6)
		pdf.SetTextColor(150, 100, 0)
		pdf.CellFormat(textW, 3, "Framed: "+item.FrameColor, "", 1, "L", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// joinImages formats image codes for the label text line.
func joinImages(images []string) string {
	out := ""
	for _, img := range images {
		if img == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += img
	}
	return out
}
