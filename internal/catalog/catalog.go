// Package catalog provides the read-only product catalog mapping product
// codes to their structural metadata. The catalog is loaded once and
// injected into every engine call; there is no process-wide shared state.
package catalog

import (
	"sort"

	"github.com/piwi3910/printlab/internal/model"
)

// Catalog is an immutable lookup from product code to ProductSpec.
type Catalog struct {
	specs map[string]model.ProductSpec
}

// New builds a catalog from the given specs. Later entries with a
// duplicate code replace earlier ones.
func New(specs []model.ProductSpec) *Catalog {
	m := make(map[string]model.ProductSpec, len(specs))
	for _, s := range specs {
		m[s.Code] = s
	}
	return &Catalog{specs: m}
}

// Lookup returns the spec for a product code, and whether it exists.
func (c *Catalog) Lookup(code string) (model.ProductSpec, bool) {
	s, ok := c.specs[code]
	return s, ok
}

// Codes returns all product codes in sorted order.
func (c *Catalog) Codes() []string {
	codes := make([]string, 0, len(c.specs))
	for code := range c.specs {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Specs returns the catalog entries ordered by code, for persistence.
func (c *Catalog) Specs() []model.ProductSpec {
	specs := make([]model.ProductSpec, 0, len(c.specs))
	for _, code := range c.Codes() {
		specs = append(specs, c.specs[code])
	}
	return specs
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.specs)
}

// Default returns a catalog populated with the lab's standard product table.
func Default() *Catalog {
	return New([]model.ProductSpec{
		{Code: "810", Kind: model.KindLargePrint, Finish: "matte", Group: "8x10", Name: "8x10 Print"},
		{Code: "810G", Kind: model.KindLargePrint, Finish: "glossy", Group: "8x10", Name: "8x10 Glossy Print"},
		{Code: "1114", Kind: model.KindLargePrint, Finish: "matte", Group: "11x14", Name: "11x14 Print"},
		{Code: "1620", Kind: model.KindLargePrint, Finish: "matte", Group: "16x20", Name: "16x20 Print"},
		{Code: "57P", Kind: model.KindPairSheet, Finish: "matte", Group: "5x7", Name: "5x7 Pair Sheet"},
		{Code: "WAL", Kind: model.KindWalletSheet, Finish: "glossy", Group: "wallet", Name: "Wallet Sheet"},
		{Code: "35S", Kind: model.KindSmallSheet, Finish: "glossy", Group: "3.5x5", Name: "3.5x5 Sheet"},
		{Code: "TRIO", Kind: model.KindTrio, Finish: "matte", Mat: "gray", Frame: "black", Group: "10x20", Name: "Trio Composite"},
		{Code: "DIR", Kind: model.KindComplimentary, Finish: "matte", Group: "8x10", Name: "Complimentary Directory Print"},
	})
}
