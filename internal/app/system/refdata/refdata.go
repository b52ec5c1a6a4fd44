// Package refdata loads the static reference datasets (districts and
// upazilas) from JSON files on disk.
//
// Files are read on every call; nothing is cached, so edits to a file are
// visible on the next request without a restart.
package refdata

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/dalemusser/bloodbank/internal/domain/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Dataset names a reference file.
type Dataset struct {
	Name string // "districts" or "upazilas"
	Path string
}

var errNotArray = errors.New("reference file is not a JSON array")

// Load reads path, which must contain a JSON array of objects that each carry
// a string "name", and returns the elements sorted by name. Any read or parse
// problem fails the whole load.
func Load(path string) ([]models.Place, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var places []models.Place
	if err := json.Unmarshal(b, &places); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if places == nil {
		return nil, fmt.Errorf("parse %s: %w", path, errNotArray)
	}
	SortByName(places)
	return places, nil
}

// SortByName orders places by name using the root-locale collation, the
// same ordering a browser's localeCompare produces. Equal names keep their
// file order.
func SortByName(places []models.Place) {
	// A Collator keeps internal buffers and is not safe for concurrent use,
	// so each sort gets its own.
	c := collate.New(language.Und)
	sort.SliceStable(places, func(i, j int) bool {
		return c.CompareString(places[i].Name, places[j].Name) < 0
	})
}

// Exists reports whether the dataset file is present and readable.
func (d Dataset) Exists() error {
	f, err := os.Open(d.Path)
	if err != nil {
		return err
	}
	return f.Close()
}
