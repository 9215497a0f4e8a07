package synth

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"inequalitydb/model"
)

//go:embed countries.yaml
var embeddedCatalog []byte

type catalogFile struct {
	Countries []model.Country `yaml:"countries"`
}

// DefaultCatalog returns the built-in 48-country reference set.
func DefaultCatalog() ([]model.Country, error) {
	return parseCatalog(embeddedCatalog)
}

// LoadCatalog reads a country catalog from a YAML file at path.
func LoadCatalog(path string) ([]model.Country, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	countries, err := parseCatalog(b)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return countries, nil
}

func parseCatalog(b []byte) ([]model.Country, error) {
	var f catalogFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}
	if len(f.Countries) == 0 {
		return nil, fmt.Errorf("catalog contains no countries")
	}

	seen := make(map[string]bool, len(f.Countries))
	for _, c := range f.Countries {
		if len(c.Code) != 3 {
			return nil, fmt.Errorf("country %q: code must be 3 letters, got %q", c.Name, c.Code)
		}
		if seen[c.Code] {
			return nil, fmt.Errorf("duplicate country code %q", c.Code)
		}
		seen[c.Code] = true
		if c.Name == "" {
			return nil, fmt.Errorf("country %s: missing name", c.Code)
		}
		if !c.Region.IsValid() {
			return nil, fmt.Errorf("country %s: unknown region %q", c.Code, c.Region)
		}
		if !c.IncomeGroup.IsValid() {
			return nil, fmt.Errorf("country %s: unknown income group %q", c.Code, c.IncomeGroup)
		}
	}
	return f.Countries, nil
}
