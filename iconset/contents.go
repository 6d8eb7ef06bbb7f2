package iconset

import (
	"os"
	"path/filepath"
)

// Contents reports which catalog renditions are present in a staging
// directory, in catalog order. Files outside the catalog are ignored.
func Contents(dir string) ([]Rendition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	present := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".png" {
			continue
		}
		present[e.Name()] = true
	}

	var found []Rendition
	for _, r := range Catalog {
		if present[r.Name] {
			found = append(found, r)
		}
	}
	return found, nil
}
