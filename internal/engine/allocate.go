package engine

import "github.com/piwi3910/printlab/internal/model"

// frameEligible reports whether an item may receive a frame from the
// size-based allocator. Pair sheets are framed through the explode path,
// and complimentary prints never receive frames.
func frameEligible(item model.PrintItem) bool {
	return item.Kind == model.KindLargePrint &&
		!item.Framed &&
		!item.Complimentary &&
		item.SheetType != model.SheetPair
}

// Allocate greedily assigns frame demand to eligible print items. Demands
// are visited in input order; each walks its size bucket in item creation
// order, framing the first unframed items until the demand is satisfied or
// the bucket is exhausted. Demand left unsatisfied is residual, reported
// rather than retried. Demands of the pair size are skipped here; the pair
// machine consumes them.
func (e *Engine) Allocate(items []model.PrintItem, demands []model.FrameDemand, inventory model.FrameInventory) {
	// Size buckets hold indexes into items, preserving creation order.
	buckets := make(map[string][]int)
	for i, item := range items {
		if frameEligible(item) && item.Size != "" {
			buckets[item.Size] = append(buckets[item.Size], i)
		}
	}

	for di := range demands {
		d := &demands[di]
		if d.Size == e.Settings.PairSize {
			continue
		}
		for _, idx := range buckets[d.Size] {
			if d.Residual() == 0 {
				break
			}
			item := &items[idx]
			if item.Framed {
				continue
			}
			if !inventory.Take(d.Size, d.Color) {
				break
			}
			item.FrameColor = d.Color
			item.Framed = true
			d.Assigned++
		}
	}
}
