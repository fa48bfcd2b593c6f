package document

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/blueprint-dev/blueprint/internal/errors"
)

// LoadDir loads every document in a directory, sorted by file name.
// Non-YAML files are skipped.
func LoadDir(dir string) ([]*Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.New("E142").
			WithDetail("Cannot read documents directory " + dir).
			Wrap(err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".yaml" || ext == ".yml" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	docs := make([]*Document, 0, len(names))
	for _, name := range names {
		doc, err := Load(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
