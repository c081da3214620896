package domain

// Configuration is the top-level YAML input document: one base case of
// taxpayer inputs plus optional named what-if scenarios.
type Configuration struct {
	Inputs    TaxpayerInputs `yaml:"inputs" json:"inputs"`
	Scenarios []Scenario     `yaml:"scenarios" json:"scenarios"`
}

// Scenario is a named set of parameter deltas applied to the base-case
// inputs. Adjustment values are strings: "+N" adds N to the base value,
// "-N" subtracts, and a bare "N" replaces it. Keys are the yaml field
// names of TaxpayerInputs (e.g. cg_long_term, income_wages).
type Scenario struct {
	Name        string            `yaml:"name" json:"name"`
	Description string            `yaml:"description" json:"description"`
	Adjustments map[string]string `yaml:"adjustments" json:"adjustments"`
}
