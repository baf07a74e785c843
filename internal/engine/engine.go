package engine

import (
	"github.com/piwi3910/printlab/internal/catalog"
	"github.com/piwi3910/printlab/internal/model"
)

// Engine maps a raw customer order onto a concrete, orderable print item
// list. It is purely synchronous and owns no shared state: the catalog and
// frame metadata are injected at construction, and each Run works on its
// own demand and inventory copies.
type Engine struct {
	Settings Settings

	catalog   *catalog.Catalog
	frameMeta map[string]model.FrameMeta
}

// New creates an engine over the given catalog with default settings.
func New(cat *catalog.Catalog) *Engine {
	return NewWithSettings(cat, DefaultSettings())
}

// NewWithSettings creates an engine with explicit settings.
func NewWithSettings(cat *catalog.Catalog, settings Settings) *Engine {
	return &Engine{
		Settings:  settings,
		catalog:   cat,
		frameMeta: make(map[string]model.FrameMeta),
	}
}

// SetFrameMeta installs the frame_no lookup table consulted before
// free-text frame description parsing.
func (e *Engine) SetFrameMeta(meta map[string]model.FrameMeta) {
	if meta == nil {
		meta = make(map[string]model.FrameMeta)
	}
	e.frameMeta = meta
}

// Order is one customer order handed to the engine: the parsed line items,
// an optional directory pose image code, and the raw frame requests.
type Order struct {
	Lines         []model.OrderLine
	DirectoryPose string
	Frames        []model.FrameRequest
}

// Result is the outcome of one engine run. Items is the final ordered
// list; Demands carries per-request assignment counts whose residuals are
// unmet frame demand; Inventory holds the frames left over. Warnings
// collect every non-fatal condition met along the way.
type Result struct {
	Items     []model.PrintItem
	Demands   []model.FrameDemand
	Inventory model.FrameInventory
	Warnings  []string
}

// UnmetDemands returns the demands that ended with residual quantity.
func (r Result) UnmetDemands() []model.FrameDemand {
	var unmet []model.FrameDemand
	for _, d := range r.Demands {
		if d.Residual() > 0 {
			unmet = append(unmet, d)
		}
	}
	return unmet
}

// Run executes the full mapping sequence: directory pose injection, row
// expansion, frame normalization, the pair explode/assign/repack machine,
// general frame allocation, and final assembly. A best-effort result is
// always produced; the only fatal condition is an unknown product code
// under the UnknownFail policy.
func (e *Engine) Run(order Order) (Result, error) {
	lines := order.Lines
	if poseLine, ok := e.directoryPoseLine(order.DirectoryPose); ok {
		lines = append([]model.OrderLine{poseLine}, lines...)
	}

	items, warnings, err := e.expandAll(lines)
	if err != nil {
		return Result{Warnings: warnings}, err
	}

	demands, inventory, frameWarnings := e.BuildDemands(order.Frames)
	warnings = append(warnings, frameWarnings...)

	items = e.ExplodePairs(items, demands, inventory)
	e.Allocate(items, demands, inventory)

	return Result{
		Items:     e.Assemble(items),
		Demands:   demands,
		Inventory: inventory,
		Warnings:  warnings,
	}, nil
}
