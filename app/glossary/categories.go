package glossary

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultCategories is the built-in sampling pool used when no categories
// file is present.
var defaultCategories = []string{
	"Computer security",
	"Cryptography",
	"Operating systems",
	"Computer networking",
	"Programming languages",
	"Distributed computing",
	"Databases",
	"Software engineering",
	"Machine learning",
	"Web development",
}

type categoriesFile struct {
	Categories []string `yaml:"categories"`
}

// LoadCategories reads the Wikipedia category list from a YAML file. A
// missing file is not an error; the built-in defaults are returned.
func LoadCategories(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaultCategories, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read categories file: %w", err)
	}

	var parsed categoriesFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse categories file: %w", err)
	}

	if len(parsed.Categories) == 0 {
		return defaultCategories, nil
	}

	for i, category := range parsed.Categories {
		if category == "" {
			return nil, fmt.Errorf("empty category name at index %d", i)
		}
	}

	return parsed.Categories, nil
}
