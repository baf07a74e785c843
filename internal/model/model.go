package model

import "github.com/google/uuid"

// Kind represents the structural kind of a catalog product.
type Kind int

const (
	KindLargePrint    Kind = iota // Individual print, one item per ordered unit
	KindWalletSheet               // Multi-print wallet sheet, one item per sheet
	KindSmallSheet                // Multi-print small sheet, one item per sheet
	KindPairSheet                 // 2-up pair sheet, may be exploded into singles
	KindTrio                      // Three-image composite with fixed mat/frame colors
	KindComplimentary             // Free bonus print, ordered last in its category
)

func (k Kind) String() string {
	switch k {
	case KindWalletSheet:
		return "WalletSheet"
	case KindSmallSheet:
		return "SmallSheet"
	case KindPairSheet:
		return "PairSheet"
	case KindTrio:
		return "Trio"
	case KindComplimentary:
		return "Complimentary"
	default:
		return "LargePrint"
	}
}

// SheetType describes the physical layout of a print item.
type SheetType string

const (
	SheetSingle SheetType = "single" // One print per unit
	SheetPair   SheetType = "pair"   // Two prints per unit (2-up)
	SheetMulti  SheetType = "sheet"  // Wallet or small sheet layout
)

// ProductSpec is one immutable catalog entry mapping a product code to its
// structural metadata. Trio entries carry mat/frame color defaults; frame
// allocation never overrides them.
type ProductSpec struct {
	Code   string `json:"code"`
	Kind   Kind   `json:"kind"`
	Finish string `json:"finish"`           // e.g. "matte", "glossy"
	Mat    string `json:"mat,omitempty"`    // Trio mat color default
	Frame  string `json:"frame,omitempty"`  // Trio frame color default
	Group  string `json:"group,omitempty"`  // Size grouping key, e.g. "8x10"
	Name   string `json:"name,omitempty"`   // Display name template
}

// OrderLine is one parsed input row of a customer order. It is created once
// by the intake parser and consumed exactly once by the row expander.
type OrderLine struct {
	Code     string   `json:"code"`
	Quantity int      `json:"quantity"`
	Images   []string `json:"images"` // Ordered 4-digit image codes
	Artist   bool     `json:"artist"`
	Retouch  bool     `json:"retouch"`
}

// Valid reports whether the line carries the fields expansion requires.
// Lines with a non-positive quantity or no product code are dropped.
func (l OrderLine) Valid() bool {
	return l.Code != "" && l.Quantity > 0
}

// PrintItem is one concrete, orderable output unit. Multiplicity is
// represented by repeated items: Quantity is always 1 after expansion.
type PrintItem struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	Slug          string    `json:"slug"`
	Kind          Kind      `json:"kind"`
	Size          string    `json:"size"` // Normalized size group, e.g. "5x7"
	SheetType     SheetType `json:"sheet_type"`
	Images        []string  `json:"images"`
	Quantity      int       `json:"quantity"`
	Complimentary bool      `json:"complimentary"`
	Artist        bool      `json:"artist"`
	Retouch       bool      `json:"retouch"`
	MatColor      string    `json:"mat_color,omitempty"`   // Trio only
	FrameColor    string    `json:"frame_color,omitempty"` // Set by the allocator
	Framed        bool      `json:"framed"`
	DisplayName   string    `json:"display_name"`
}

// NewPrintItem creates a PrintItem with a generated ID and quantity 1.
func NewPrintItem(code, slug string, kind Kind, images []string) PrintItem {
	imgs := make([]string, len(images))
	copy(imgs, images)
	return PrintItem{
		ID:        uuid.New().String()[:8],
		Code:      code,
		Slug:      slug,
		Kind:      kind,
		SheetType: SheetSingle,
		Images:    imgs,
		Quantity:  1,
	}
}

// IsLargeCategory reports whether the item sorts within the large-print
// partition of the assembled order. Complimentary bonus prints share the
// category so they can be ordered after the paid large prints.
func (p PrintItem) IsLargeCategory() bool {
	return p.Kind == KindLargePrint || p.Kind == KindComplimentary
}
