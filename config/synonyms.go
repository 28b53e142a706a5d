package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/fulmenhq/meilirank/synonym"
)

// synonymPackFile is the on-disk shape of one synonym pack YAML file: a
// flat mapping of base word to its synonym list.
type synonymPackFile map[string][]string

// LoadSynonymPacks discovers every "*.yaml"/"*.yml" file under dir using a
// doublestar glob (spec ambient "Configuration"), parses each as a
// synonymPackFile, and merges all of them into a fresh synonym.Table. All
// "*.yaml" matches are applied first, then all "*.yml" matches, each group
// in the order doublestar returns them.
func LoadSynonymPacks(dir string) (*synonym.Table, error) {
	table := synonym.New()
	if dir == "" {
		return table, nil
	}

	patterns := []string{
		filepath.Join(dir, "*.yaml"),
		filepath.Join(dir, "*.yml"),
	}

	seen := make(map[string]bool)
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		for _, path := range matches {
			if seen[path] {
				continue
			}
			seen[path] = true

			if err := loadSynonymPackInto(table, path); err != nil {
				return nil, err
			}
		}
	}

	return table, nil
}

func loadSynonymPackInto(table *synonym.Table, path string) error {
	data, err := os.ReadFile(path) // #nosec G304 -- operator-provided synonym pack directory
	if err != nil {
		return fmt.Errorf("read synonym pack %s: %w", path, err)
	}

	var pack synonymPackFile
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return fmt.Errorf("parse synonym pack %s: %w", path, err)
	}

	if err := table.RegisterAll(pack); err != nil {
		return fmt.Errorf("register synonym pack %s: %w", path, err)
	}
	return nil
}
