package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/catalog.yaml
var defaultCatalogYAML []byte

// Load loads the content catalog.
// Search order: customPath -> ~/.ticketrush/configs/catalog.yaml ->
// ./configs/catalog.yaml -> embedded default.
// The returned catalog is always validated.
func Load(customPath string) (*Catalog, error) {
	if customPath != "" {
		return loadFile(customPath)
	}

	if userPath := userCatalogPath(); userPath != "" {
		if c, err := loadFile(userPath); err == nil {
			return c, nil
		}
	}

	if c, err := loadFile(filepath.Join("configs", "catalog.yaml")); err == nil {
		return c, nil
	}

	return parse(defaultCatalogYAML, "embedded default")
}

// loadFile reads and parses a catalog YAML file.
func loadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: cannot read %s: %w", path, err)
	}
	return parse(data, path)
}

// parse unmarshals and validates catalog YAML.
func parse(data []byte, source string) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("catalog: cannot parse %s: %w", source, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog: invalid content in %s: %w", source, err)
	}
	return &c, nil
}

// userCatalogPath returns the user catalog path, or empty if home is
// unavailable.
func userCatalogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ticketrush", "configs", "catalog.yaml")
}

// Default returns the embedded default catalog.
// Panics if the embedded content is invalid, which is a build defect.
func Default() *Catalog {
	c, err := parse(defaultCatalogYAML, "embedded default")
	if err != nil {
		panic(err)
	}
	return c
}
