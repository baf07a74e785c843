package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/printlab/internal/catalog"
	"github.com/piwi3910/printlab/internal/model"
)

func TestSaveAndLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "catalog.json")

	cat := catalog.New([]model.ProductSpec{
		{Code: "810", Kind: model.KindLargePrint, Finish: "matte", Group: "8x10"},
		{Code: "57P", Kind: model.KindPairSheet, Finish: "matte", Group: "5x7"},
	})
	if err := SaveCatalog(path, cat); err != nil {
		t.Fatalf("SaveCatalog: %v", err)
	}

	loaded, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if loaded.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", loaded.Len())
	}
	spec, ok := loaded.Lookup("57P")
	if !ok || spec.Kind != model.KindPairSheet {
		t.Errorf("57P did not survive the round trip: %+v", spec)
	}
}

func TestLoadCatalogMissingFileCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")

	cat, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if cat.Len() == 0 {
		t.Error("expected default catalog entries")
	}
	if _, statErr := os.Stat(path); statErr != nil {
		t.Errorf("expected default catalog to be written: %v", statErr)
	}
}

func TestLoadCatalogInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte("{nope"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCatalog(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestSaveAndLoadFrameMeta(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames.json")

	meta := map[string]model.FrameMeta{
		"F9": {Size: "11x14", Color: model.ColorWhite},
	}
	if err := SaveFrameMeta(path, meta); err != nil {
		t.Fatalf("SaveFrameMeta: %v", err)
	}

	loaded, err := LoadFrameMeta(path)
	if err != nil {
		t.Fatalf("LoadFrameMeta: %v", err)
	}
	if loaded["F9"].Size != "11x14" {
		t.Errorf("frame meta did not survive round trip: %+v", loaded)
	}
}

func TestLoadFrameMetaMissingFile(t *testing.T) {
	meta, err := LoadFrameMeta(filepath.Join(t.TempDir(), "frames.json"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if meta == nil || len(meta) != 0 {
		t.Errorf("expected empty table, got %v", meta)
	}
}

func TestSaveAndLoadRetouchCodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "retouch.json")

	if err := SaveRetouchCodes(path, []string{"12", "0044"}); err != nil {
		t.Fatalf("SaveRetouchCodes: %v", err)
	}

	set, err := LoadRetouchCodes(path)
	if err != nil {
		t.Fatalf("LoadRetouchCodes: %v", err)
	}
	if !set["0012"] || !set["0044"] {
		t.Errorf("expected normalized codes in set, got %v", set)
	}
}

func TestLoadRetouchCodesMissingFile(t *testing.T) {
	set, err := LoadRetouchCodes(filepath.Join(t.TempDir(), "retouch.json"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(set) != 0 {
		t.Errorf("expected empty set, got %v", set)
	}
}
