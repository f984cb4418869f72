package refdata

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultMaxDistance is the edit-distance ceiling for hazard substance
// correction.
const DefaultMaxDistance = 3

// Config bundles the reference data a Normalizer is constructed with. Tests
// substitute small fixture tables; production code starts from
// DefaultConfig and optionally merges a TOML override file.
type Config struct {
	ProductCategories Table
	HazardCategories  Table
	Countries         CountrySet

	// HazardSubstances, when non-empty, is a fixed vocabulary for substance
	// correction. When empty the normalizer self-deduplicates within each
	// batch instead.
	HazardSubstances []string

	MaxDistance int
}

// DefaultConfig returns the built-in reference data.
func DefaultConfig() Config {
	return Config{
		ProductCategories: ProductCategories(),
		HazardCategories:  HazardCategories(),
		Countries:         Countries(),
		MaxDistance:       DefaultMaxDistance,
	}
}

// tomlOverride is the on-disk override shape. Every section is optional;
// present sections replace or extend the defaults.
type tomlOverride struct {
	MaxDistance       int                     `toml:"max_distance"`
	Countries         []string                `toml:"countries"`
	HazardSubstances  []string                `toml:"hazard_substances"`
	ProductCategories map[string]CategoryPair `toml:"product_categories"`
	HazardCategories  map[string]CategoryPair `toml:"hazard_categories"`
}

// LoadConfig returns DefaultConfig merged with the TOML override at path.
// An empty path returns the defaults untouched.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read reference data: %w", err)
	}
	var ov tomlOverride
	if err := toml.Unmarshal(data, &ov); err != nil {
		return cfg, fmt.Errorf("parse reference data: %w", err)
	}
	if ov.MaxDistance > 0 {
		cfg.MaxDistance = ov.MaxDistance
	}
	if len(ov.Countries) > 0 {
		set := make(CountrySet, len(ov.Countries))
		for _, n := range ov.Countries {
			set[strings.ToLower(strings.TrimSpace(n))] = strings.TrimSpace(n)
		}
		cfg.Countries = set
	}
	if len(ov.HazardSubstances) > 0 {
		cfg.HazardSubstances = ov.HazardSubstances
	}
	for k, v := range ov.ProductCategories {
		cfg.ProductCategories[strings.ToLower(k)] = v
	}
	for k, v := range ov.HazardCategories {
		cfg.HazardCategories[strings.ToLower(k)] = v
	}
	return cfg, nil
}
