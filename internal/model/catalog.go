package model

// OperatorDefinition is one operator entry in a custom catalog file.
// Either From/To (a literal token swap) or Pattern/Replacement is set.
type OperatorDefinition struct {
	Name        string `yaml:"name" toml:"name"`
	Type        string `yaml:"type" toml:"type"`
	Description string `yaml:"description,omitempty" toml:"description"`
	From        string `yaml:"from,omitempty" toml:"from"`
	To          string `yaml:"to,omitempty" toml:"to"`
	Pattern     string `yaml:"pattern,omitempty" toml:"pattern"`
	Replacement string `yaml:"replacement,omitempty" toml:"replacement"`
	Skip        string `yaml:"skip,omitempty" toml:"skip"`
	Requires    string `yaml:"requires,omitempty" toml:"requires"`
}

// CatalogFile is the on-disk layout of a custom catalog.
type CatalogFile struct {
	Operators []OperatorDefinition `yaml:"operators" toml:"operators"`
}
