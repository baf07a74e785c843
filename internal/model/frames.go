package model

// FrameRequest is one raw line of the customer's frame order. The engine
// treats these as read-only input; allocation results are reported through
// FrameDemand working copies instead of in-place quantity decrements.
type FrameRequest struct {
	FrameNo     string `json:"frame_no"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description"` // Free text, e.g. "5x7 cherry wood frame"
}

// FrameMeta maps a known frame number to its exact size and color, used in
// preference to free-text description parsing.
type FrameMeta struct {
	Size  string `json:"size"`
	Color string `json:"color"`
}

// FrameDemand is a normalized frame request owned by the engine for the
// duration of one run. Assigned tracks how many frames were matched to
// print items; the remainder is unmet demand, reported rather than raised.
type FrameDemand struct {
	FrameNo  string `json:"frame_no"`
	Size     string `json:"size"`
	Color    string `json:"color"`
	Quantity int    `json:"quantity"`
	Assigned int    `json:"assigned"`
}

// Residual returns the unmet portion of the demand.
func (d FrameDemand) Residual() int {
	return d.Quantity - d.Assigned
}

// FrameInventory aggregates available frame counts by size and color.
// Counts are decremented during allocation and never go negative.
type FrameInventory map[string]map[string]int

// Add increases the available count for a (size, color) bucket.
func (inv FrameInventory) Add(size, color string, n int) {
	if n <= 0 {
		return
	}
	if inv[size] == nil {
		inv[size] = make(map[string]int)
	}
	inv[size][color] += n
}

// Take removes one frame from the (size, color) bucket. It returns false
// and leaves the inventory untouched when the bucket is empty.
func (inv FrameInventory) Take(size, color string) bool {
	if inv[size] == nil || inv[size][color] <= 0 {
		return false
	}
	inv[size][color]--
	return true
}

// Count returns the available count for a (size, color) bucket.
func (inv FrameInventory) Count(size, color string) int {
	if inv[size] == nil {
		return 0
	}
	return inv[size][color]
}

// TotalForSize returns the available count across all colors of a size.
func (inv FrameInventory) TotalForSize(size string) int {
	var total int
	for _, n := range inv[size] {
		total += n
	}
	return total
}

// Clone returns an independently owned copy of the inventory.
func (inv FrameInventory) Clone() FrameInventory {
	out := make(FrameInventory, len(inv))
	for size, colors := range inv {
		out[size] = make(map[string]int, len(colors))
		for color, n := range colors {
			out[size][color] = n
		}
	}
	return out
}
