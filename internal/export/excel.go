package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/printlab/internal/model"
)

// OrderExcel writes the assembled order as an .xlsx workbook: one row per
// print item on the first sheet, frame allocation results on a second.
func OrderExcel(path, orderRef string, items []model.PrintItem, demands []model.FrameDemand) error {
	if len(items) == 0 {
		return fmt.Errorf("no items to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetName(sheet, "Items"); err != nil {
		return err
	}
	sheet = "Items"

	header := []interface{}{"#", "Order", "Item", "Code", "Size", "Sheet Type", "Images", "Frame", "Comp", "Artist", "Retouch"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, item := range items {
		frame := ""
		if item.Framed {
			frame = item.FrameColor
		}
		row := []interface{}{
			i + 1,
			orderRef,
			item.DisplayName,
			item.Code,
			item.Size,
			string(item.SheetType),
			strings.Join(item.Images, " "),
			frame,
			item.Complimentary,
			item.Artist,
			item.Retouch,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	if len(demands) > 0 {
		if _, err := f.NewSheet("Frames"); err != nil {
			return err
		}
		frameHeader := []interface{}{"Frame No", "Size", "Color", "Requested", "Assigned", "Unmet"}
		if err := f.SetSheetRow("Frames", "A1", &frameHeader); err != nil {
			return err
		}
		for i, d := range demands {
			row := []interface{}{d.FrameNo, d.Size, d.Color, d.Quantity, d.Assigned, d.Residual()}
			cell := fmt.Sprintf("A%d", i+2)
			if err := f.SetSheetRow("Frames", cell, &row); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}
