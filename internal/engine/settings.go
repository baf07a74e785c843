// Package engine implements the order mapping and frame allocation engine:
// row expansion of order lines into print items, frame request
// normalization, greedy frame allocation, and the 5x7 pair
// explode/assign/repack state machine.
package engine

// UnknownCodePolicy controls how the expander treats order lines whose
// product code is absent from the catalog.
type UnknownCodePolicy int

const (
	UnknownSkip UnknownCodePolicy = iota // Drop the line, record a warning
	UnknownFail                          // Abort expansion with ErrUnknownProduct
)

func (p UnknownCodePolicy) String() string {
	if p == UnknownFail {
		return "fail"
	}
	return "skip"
}

// Settings holds engine configuration.
type Settings struct {
	// UnknownCode selects the policy for order lines with a product code
	// the catalog does not know. The two legacy entry points disagreed;
	// the policy is configurable and applied consistently.
	UnknownCode UnknownCodePolicy `json:"unknown_code"`

	// PairSize is the size group sold as a 2-up pair sheet but framed as
	// singles, driving the explode/repack machine.
	PairSize string `json:"pair_size"`

	// DirectoryPoseCode is the complimentary product injected when an
	// order carries a directory pose reference.
	DirectoryPoseCode string `json:"directory_pose_code"`

	// FallbackDisplayName is given to items that reach assembly unnamed.
	FallbackDisplayName string `json:"fallback_display_name"`
}

// DefaultSettings returns the engine defaults used by the lab.
func DefaultSettings() Settings {
	return Settings{
		UnknownCode:         UnknownSkip,
		PairSize:            "5x7",
		DirectoryPoseCode:   "DIR",
		FallbackDisplayName: "Print Item",
	}
}
