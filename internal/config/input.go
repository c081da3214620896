package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/taxcalc/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a YAML configuration: one base case of taxpayer
// inputs plus optional what-if scenarios. Absent numeric fields
// unmarshal to zero, which the engine treats as legitimate input.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration checks the structural validity of the loaded
// configuration. Numeric validation of the inputs themselves happens at
// the engine boundary.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.Inputs.TaxYear <= 0 {
		return fmt.Errorf("inputs.tax_year is required")
	}
	if _, err := domain.ParseFilingStatus(string(config.Inputs.FilingStatus)); err != nil {
		return fmt.Errorf("inputs.filing_status: %w", err)
	}

	seen := map[string]bool{}
	for i, scenario := range config.Scenarios {
		if scenario.Name == "" {
			return fmt.Errorf("scenario %d: name is required", i)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("scenario %d: duplicate name %q", i, scenario.Name)
		}
		seen[scenario.Name] = true
		if len(scenario.Adjustments) == 0 {
			return fmt.Errorf("scenario %q: at least one adjustment is required", scenario.Name)
		}
	}
	return nil
}
