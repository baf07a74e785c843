package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/piwi3910/printlab/internal/model"
)

// ErrUnknownProduct is returned when an order line references a product
// code absent from the catalog and the engine runs with UnknownFail.
var ErrUnknownProduct = errors.New("unknown product code")

// trioImageCount is the fixed number of poses on a trio composite.
const trioImageCount = 3

// Expand turns one order line into its concrete print items, dispatching
// on the catalog kind. Quantity is expanded into repeated items with
// quantity 1; sheet products yield one item per sheet, not one per print
// inside it. An unknown product code returns ErrUnknownProduct under
// UnknownFail, or an empty slice under UnknownSkip.
func (e *Engine) Expand(line model.OrderLine) ([]model.PrintItem, error) {
	if !line.Valid() {
		return nil, fmt.Errorf("malformed order line %q: quantity %d", line.Code, line.Quantity)
	}

	spec, ok := e.catalog.Lookup(line.Code)
	if !ok {
		if e.Settings.UnknownCode == UnknownFail {
			return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, line.Code)
		}
		return nil, nil
	}

	items := make([]model.PrintItem, 0, line.Quantity)
	for i := 0; i < line.Quantity; i++ {
		items = append(items, e.buildItem(spec, line))
	}
	return items, nil
}

// buildItem constructs a single print item for one unit of the line.
func (e *Engine) buildItem(spec model.ProductSpec, line model.OrderLine) model.PrintItem {
	images := model.NormalizeImageCodes(line.Images)
	slug := productSlug(spec)

	item := model.NewPrintItem(spec.Code, slug, spec.Kind, images)
	item.Size = sizeOf(spec)
	item.Artist = line.Artist
	item.Retouch = line.Retouch
	item.DisplayName = spec.Name

	switch spec.Kind {
	case model.KindWalletSheet, model.KindSmallSheet:
		item.SheetType = model.SheetMulti

	case model.KindPairSheet:
		// One representative code per pair sheet; the second physical
		// print is a rendering duplicate, not a data model entry.
		item.SheetType = model.SheetPair
		if len(images) > 0 {
			item.Images = images[:1:1]
		}

	case model.KindTrio:
		item.Images = padImages(images, trioImageCount)
		item.MatColor = spec.Mat
		item.FrameColor = spec.Frame

	case model.KindComplimentary:
		item.Complimentary = true
	}

	return item
}

// productSlug builds the item slug from product code and finish.
func productSlug(spec model.ProductSpec) string {
	if spec.Finish == "" {
		return strings.ToLower(spec.Code)
	}
	return strings.ToLower(spec.Code) + "-" + strings.ToLower(spec.Finish)
}

// sizeOf resolves the size group of a spec, falling back to a size
// pattern found in the display name.
func sizeOf(spec model.ProductSpec) string {
	if spec.Group != "" {
		return spec.Group
	}
	if size, ok := model.ExtractSize(spec.Name); ok {
		return size
	}
	return ""
}

// padImages pads with empty strings or truncates so exactly n remain.
func padImages(images []string, n int) []string {
	out := make([]string, n)
	copy(out, images)
	return out
}

// expandAll expands every line, applying the malformed-line and
// unknown-code policies. The directory pose line, when present, must
// already be at the front of lines.
func (e *Engine) expandAll(lines []model.OrderLine) ([]model.PrintItem, []string, error) {
	var items []model.PrintItem
	var warnings []string

	for _, line := range lines {
		if !line.Valid() {
			warnings = append(warnings, fmt.Sprintf("dropped malformed order line %q (quantity %d)", line.Code, line.Quantity))
			continue
		}
		expanded, err := e.Expand(line)
		if err != nil {
			if e.Settings.UnknownCode == UnknownFail {
				return nil, warnings, err
			}
			warnings = append(warnings, err.Error())
			continue
		}
		if expanded == nil {
			warnings = append(warnings, fmt.Sprintf("skipped unknown product code %q", line.Code))
			continue
		}
		items = append(items, expanded...)
	}
	return items, warnings, nil
}

// directoryPoseLine builds the synthetic complimentary line injected ahead
// of normal expansion when the order carries a directory pose and the
// configured complimentary product exists in the catalog.
func (e *Engine) directoryPoseLine(pose string) (model.OrderLine, bool) {
	if pose == "" || e.Settings.DirectoryPoseCode == "" {
		return model.OrderLine{}, false
	}
	spec, ok := e.catalog.Lookup(e.Settings.DirectoryPoseCode)
	if !ok || spec.Kind != model.KindComplimentary {
		return model.OrderLine{}, false
	}
	return model.OrderLine{
		Code:     e.Settings.DirectoryPoseCode,
		Quantity: 1,
		Images:   []string{model.NormalizeImageCode(pose)},
	}, true
}
