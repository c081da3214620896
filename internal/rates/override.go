package rates

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overrideFile is the YAML shape of a rates override document
type overrideFile struct {
	Years []TaxYearParameters `yaml:"years"`
}

// LoadOverride reads a YAML rates file and merges it over the built-in
// table. Each year in the file replaces that year's built-in parameters
// wholesale; years not mentioned keep their defaults. Any malformation
// is a fatal configuration error surfaced before computation.
func LoadOverride(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rates file %s: %w", path, err)
	}

	var of overrideFile
	if err := yaml.Unmarshal(data, &of); err != nil {
		return nil, fmt.Errorf("failed to parse rates file %s: %w", path, err)
	}
	if len(of.Years) == 0 {
		return nil, fmt.Errorf("rates file %s defines no years", path)
	}

	merged := map[int]TaxYearParameters{}
	for _, y := range DefaultTable().years {
		merged[y.Year] = y
	}
	for _, y := range of.Years {
		merged[y.Year] = y
	}

	params := make([]TaxYearParameters, 0, len(merged))
	for _, y := range merged {
		params = append(params, y)
	}
	table, err := NewTable(params)
	if err != nil {
		return nil, fmt.Errorf("rates file %s: %w", path, err)
	}
	return table, nil
}
