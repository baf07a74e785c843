package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/printlab/internal/model"
)

// DefaultFrameMetaPath returns the default path for the frame metadata
// file mapping frame numbers to exact size and color.
func DefaultFrameMetaPath() string {
	return filepath.Join(DefaultConfigDir(), "frames.json")
}

// SaveFrameMeta persists the frame metadata table as JSON.
func SaveFrameMeta(path string, meta map[string]model.FrameMeta) error {
	return writeJSON(path, meta)
}

// LoadFrameMeta reads the frame metadata table. A missing file yields an
// empty table with no error; free-text description parsing covers those
// frames.
func LoadFrameMeta(path string) (map[string]model.FrameMeta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]model.FrameMeta{}, nil
		}
		return nil, err
	}
	var meta map[string]model.FrameMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	if meta == nil {
		meta = map[string]model.FrameMeta{}
	}
	return meta, nil
}

// DefaultRetouchPath returns the default path for the retouch code list.
func DefaultRetouchPath() string {
	return filepath.Join(DefaultConfigDir(), "retouch.json")
}

// SaveRetouchCodes persists the retouch code list as JSON.
func SaveRetouchCodes(path string, codes []string) error {
	return writeJSON(path, model.NormalizeImageCodes(codes))
}

// LoadRetouchCodes reads the retouch code list into a normalized lookup
// set. A missing file yields an empty set with no error.
func LoadRetouchCodes(path string) (map[string]bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]bool{}, nil
		}
		return nil, err
	}
	var codes []string
	if err := json.Unmarshal(data, &codes); err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(codes))
	for _, c := range model.NormalizeImageCodes(codes) {
		set[c] = true
	}
	return set, nil
}
