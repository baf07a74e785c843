package engine

import "github.com/piwi3910/printlab/internal/model"

// Assemble produces the final ordered item list handed to rendering.
// Every item is given a non-empty display name, then the list is stably
// partitioned: all non-large items first, followed by the large-print
// category with complimentary prints last. Creation order is preserved
// within each group.
func (e *Engine) Assemble(items []model.PrintItem) []model.PrintItem {
	out := make([]model.PrintItem, 0, len(items))
	var large, comp []model.PrintItem

	for _, item := range items {
		if item.DisplayName == "" {
			item.DisplayName = e.Settings.FallbackDisplayName
		}
		switch {
		case !item.IsLargeCategory():
			out = append(out, item)
		case item.Complimentary:
			comp = append(comp, item)
		default:
			large = append(large, item)
		}
	}

	out = append(out, large...)
	out = append(out, comp...)
	return out
}
