package engine

import (
	"fmt"

	"github.com/piwi3910/printlab/internal/model"
)

// BuildDemands normalizes raw frame requests into ordered demands and the
// aggregated inventory. Known frame numbers resolve through the frame
// metadata table; otherwise size and color are parsed from the free-text
// description. A request whose size cannot be determined contributes no
// inventory and is reported as a warning, never as a failure. Caller-owned
// requests are never mutated.
func (e *Engine) BuildDemands(requests []model.FrameRequest) ([]model.FrameDemand, model.FrameInventory, []string) {
	demands := make([]model.FrameDemand, 0, len(requests))
	inventory := make(model.FrameInventory)
	var warnings []string

	for _, req := range requests {
		if req.Quantity <= 0 {
			continue
		}

		size, color, ok := e.normalizeRequest(req)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("dropped frame request %q: no size in %q", req.FrameNo, req.Description))
			continue
		}

		demands = append(demands, model.FrameDemand{
			FrameNo:  req.FrameNo,
			Size:     size,
			Color:    color,
			Quantity: req.Quantity,
		})
		inventory.Add(size, color, req.Quantity)
	}
	return demands, inventory, warnings
}

// normalizeRequest resolves a request to (size, color), preferring exact
// frame metadata over description parsing.
func (e *Engine) normalizeRequest(req model.FrameRequest) (size, color string, ok bool) {
	if meta, found := e.frameMeta[req.FrameNo]; found && meta.Size != "" {
		color = meta.Color
		if color == "" {
			color = model.ExtractColor(req.Description)
		}
		return meta.Size, color, true
	}

	size, found := model.ExtractSize(req.Description)
	if !found {
		return "", "", false
	}
	return size, model.ExtractColor(req.Description), true
}

// demandForSize sums the residual quantity of all demands of a size.
func demandForSize(demands []model.FrameDemand, size string) int {
	var total int
	for _, d := range demands {
		if d.Size == size {
			total += d.Residual()
		}
	}
	return total
}
