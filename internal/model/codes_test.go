package model

import "testing"

func TestExtractSizeBasic(t *testing.T) {
	size, ok := ExtractSize("5x7 cherry wood frame")
	if !ok {
		t.Fatal("expected size to be found")
	}
	if size != "5x7" {
		t.Errorf("expected 5x7, got %s", size)
	}
}

func TestExtractSizeWhitespaceAndCase(t *testing.T) {
	cases := map[string]string{
		"8 X 10 black frame":  "8x10",
		"frame 11 x14 white":  "11x14",
		"Deluxe 5X7 Pair":     "5x7",
	}
	for in, want := range cases {
		got, ok := ExtractSize(in)
		if !ok {
			t.Errorf("expected size in %q", in)
			continue
		}
		if got != want {
			t.Errorf("ExtractSize(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestExtractSizeMissing(t *testing.T) {
	if _, ok := ExtractSize("ornate gold frame"); ok {
		t.Error("expected no size in description without NxM pattern")
	}
}

func TestExtractColor(t *testing.T) {
	if got := ExtractColor("5x7 Cherry finish"); got != ColorCherry {
		t.Errorf("expected cherry, got %s", got)
	}
	if got := ExtractColor("8x10 WHITE frame"); got != ColorWhite {
		t.Errorf("expected white, got %s", got)
	}
	if got := ExtractColor("8x10 frame"); got != ColorBlack {
		t.Errorf("expected black default, got %s", got)
	}
}

func TestNormalizeImageCode(t *testing.T) {
	cases := map[string]string{
		"7":     "0007",
		"42":    "0042",
		"0042":  "0042",
		"1234":  "1234",
		" 15 ":  "0015",
		"A12":   "A12",
		"":      "",
	}
	for in, want := range cases {
		if got := NormalizeImageCode(in); got != want {
			t.Errorf("NormalizeImageCode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeImageCodesDropsEmpties(t *testing.T) {
	got := NormalizeImageCodes([]string{"7", "", "13"})
	if len(got) != 2 {
		t.Fatalf("expected 2 codes, got %d", len(got))
	}
	if got[0] != "0007" || got[1] != "0013" {
		t.Errorf("unexpected codes: %v", got)
	}
}
