// Package project handles persistence of lab configuration: the product
// catalog, frame metadata, and the retouch code list, all as JSON files
// under the user's config directory.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/printlab/internal/catalog"
	"github.com/piwi3910/printlab/internal/model"
)

// DefaultConfigDir returns the default directory for application
// configuration. On all platforms this is ~/.printlab/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".printlab")
}

// DefaultCatalogPath returns the default path for the catalog file.
func DefaultCatalogPath() string {
	return filepath.Join(DefaultConfigDir(), "catalog.json")
}

// SaveCatalog persists catalog entries to the given path as JSON,
// creating missing parent directories automatically.
func SaveCatalog(path string, cat *catalog.Catalog) error {
	return writeJSON(path, cat.Specs())
}

// LoadCatalog reads a catalog from the given path. If the file does not
// exist, it returns the default catalog and saves it.
func LoadCatalog(path string) (*catalog.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cat := catalog.Default()
			if saveErr := SaveCatalog(path, cat); saveErr != nil {
				return cat, saveErr
			}
			return cat, nil
		}
		return nil, err
	}
	var specs []model.ProductSpec
	if err := json.Unmarshal(data, &specs); err != nil {
		return nil, err
	}
	return catalog.New(specs), nil
}

// writeJSON marshals v with indentation and writes it to path.
func writeJSON(path string, v interface{}) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
