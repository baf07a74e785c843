package engine

import "github.com/piwi3910/printlab/internal/model"

// ExplodePairs runs the pair-size state machine. The pair size is sold as
// a 2-up sheet but framed as singles, so when frame demand for that size
// exists, every pair sheet is exploded into two adjacent singles, demand
// is assigned to the singles in creation order, and unframed leftovers are
// repacked two at a time into fresh pair sheets. With zero demand the item
// list is returned unchanged.
//
// The returned list orders the pair-size group last: framed singles, then
// repacked pairs, then at most one leftover single.
func (e *Engine) ExplodePairs(items []model.PrintItem, demands []model.FrameDemand, inventory model.FrameInventory) []model.PrintItem {
	size := e.Settings.PairSize
	remaining := demandForSize(demands, size)
	if remaining == 0 {
		return items
	}

	rest := make([]model.PrintItem, 0, len(items))
	var singles []model.PrintItem
	for _, item := range items {
		if item.Kind == model.KindPairSheet && item.Size == size {
			a, b := explodePair(item)
			singles = append(singles, a, b)
			continue
		}
		rest = append(rest, item)
	}
	if len(singles) == 0 {
		return items
	}

	// Assign pair-size demand to the singles in creation order.
	di := 0
	for i := range singles {
		if remaining == 0 {
			break
		}
		for di < len(demands) && (demands[di].Size != size || demands[di].Residual() == 0) {
			di++
		}
		if di == len(demands) {
			break
		}
		d := &demands[di]
		if !inventory.Take(size, d.Color) {
			break
		}
		singles[i].FrameColor = d.Color
		singles[i].Framed = true
		d.Assigned++
		remaining--
	}

	var framed, unframed []model.PrintItem
	for _, s := range singles {
		if s.Framed {
			framed = append(framed, s)
		} else {
			unframed = append(unframed, s)
		}
	}

	// Repack unframed singles front-to-back, two per new pair sheet.
	var repacked []model.PrintItem
	for len(unframed) >= 2 {
		repacked = append(repacked, repackPair(unframed[0], unframed[1]))
		unframed = unframed[2:]
	}

	out := append(rest, framed...)
	out = append(out, repacked...)
	out = append(out, unframed...) // at most one leftover single
	return out
}

// explodePair builds two independently owned singles from one pair sheet.
// Each carries the pair's one image code and inherits its flags; neither
// aliases the original.
func explodePair(pair model.PrintItem) (model.PrintItem, model.PrintItem) {
	build := func() model.PrintItem {
		s := model.NewPrintItem(pair.Code, pair.Slug, pair.Kind, pair.Images)
		s.SheetType = model.SheetSingle
		s.Size = pair.Size
		s.Artist = pair.Artist
		s.Retouch = pair.Retouch
		s.DisplayName = pair.DisplayName
		return s
	}
	return build(), build()
}

// repackPair merges two unframed singles into one new pair sheet,
// discarding their individual frame state. When the singles came from
// different original pairs, both image codes are kept.
func repackPair(a, b model.PrintItem) model.PrintItem {
	images := a.Images
	if len(a.Images) > 0 && len(b.Images) > 0 && a.Images[0] != b.Images[0] {
		images = []string{a.Images[0], b.Images[0]}
	}
	p := model.NewPrintItem(a.Code, a.Slug, model.KindPairSheet, images)
	p.SheetType = model.SheetPair
	p.Size = a.Size
	p.Artist = a.Artist || b.Artist
	p.Retouch = a.Retouch || b.Retouch
	p.DisplayName = a.DisplayName
	return p
}
