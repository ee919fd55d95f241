// Package vocabulary loads the skill match universe from a deployment
// supplied YAML file, falling back to the engine's built-in list.
package vocabulary

import (
	"fmt"
	"os"

	"github.com/pearl24680/NUVORA-RESUME-SCANNER/internal/match"

	"gopkg.in/yaml.v3"
)

type file struct {
	Skills []string `yaml:"skills"`
}

// Load reads a vocabulary file of the form:
//
//	skills:
//	  - python
//	  - power bi
//
// An empty path returns the built-in default vocabulary. A file that
// parses but contains no usable terms is a configuration error.
func Load(path string) (*match.Vocabulary, error) {
	if path == "" {
		return match.DefaultVocabulary(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vocabulary file %q: %w", path, err)
	}

	var parsed file
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parsing vocabulary file %q: %w", path, err)
	}

	vocab, err := match.NewVocabulary(parsed.Skills)
	if err != nil {
		return nil, fmt.Errorf("vocabulary file %q: %w", path, err)
	}

	return vocab, nil
}
