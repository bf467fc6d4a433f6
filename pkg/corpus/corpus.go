// Package corpus loads pre-tokenized document collections from YAML
// files for the example commands. The file format is a map of document
// id to term list plus an optional list of queries:
//
//	documents:
//	  fruits: [apple, banana, orange]
//	  vegetables: [tomato, cucumber, radish]
//	queries:
//	  - [apple, banana]
package corpus

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Corpus is a pre-tokenized document collection with optional queries.
type Corpus struct {
	Documents map[string][]string `yaml:"documents"`
	Queries   [][]string          `yaml:"queries"`
}

// Load reads and parses a corpus YAML file.
func Load(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus file %s: %w", path, err)
	}
	var c Corpus
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing corpus file %s: %w", path, err)
	}
	if len(c.Documents) == 0 {
		return nil, fmt.Errorf("corpus file %s contains no documents", path)
	}
	return &c, nil
}
