package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// sizeRe matches a print size such as "5x7", "5 x 7" or "8X10" inside
// free text. Internal whitespace is tolerated and stripped on normalization.
var sizeRe = regexp.MustCompile(`(?i)(\d+)\s*x\s*(\d+)`)

// ExtractSize finds the first NxM size pattern in s and returns it
// normalized to lowercase with no internal whitespace, e.g. "5x7".
// It returns false when s contains no recognizable size.
func ExtractSize(s string) (string, bool) {
	m := sizeRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1] + "x" + m[2], true
}

// Frame colors recognized in free-text descriptions. Anything else is black.
const (
	ColorBlack  = "black"
	ColorCherry = "cherry"
	ColorWhite  = "white"
)

// ExtractColor returns the frame color named in s, defaulting to black.
func ExtractColor(s string) string {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, ColorCherry):
		return ColorCherry
	case strings.Contains(lower, ColorWhite):
		return ColorWhite
	default:
		return ColorBlack
	}
}

// NormalizeImageCode pads a numeric image code to four digits so downstream
// image resolution can key on a canonical form. Non-numeric codes are
// returned trimmed but otherwise unchanged.
func NormalizeImageCode(code string) string {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return ""
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return trimmed
	}
	return fmt.Sprintf("%04d", n)
}

// NormalizeImageCodes normalizes each code in order, dropping empties.
func NormalizeImageCodes(codes []string) []string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if norm := NormalizeImageCode(c); norm != "" {
			out = append(out, norm)
		}
	}
	return out
}
