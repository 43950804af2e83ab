package config

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"villagejoin/internal/locality"
)

// Default file locations.
const (
	DefaultBoundaryDir   = "./data/json"
	DefaultIncomePath    = "./data/110_165-9.csv"
	DefaultEducationPath = "./data/revnew.csv"
	DefaultMergedPath    = "./data/data.json"
	DefaultAbsentPath    = "./data/absent_keys.txt"

	// DefaultEducationSkipRows skips the title row above the education header.
	DefaultEducationSkipRows = 1
)

// Config models the YAML run configuration.
type Config struct {
	Inputs    Inputs    `yaml:"inputs"`
	Outputs   Outputs   `yaml:"outputs"`
	Normalize Normalize `yaml:"normalize"`
	Residual  Residual  `yaml:"residual"`
}

// Inputs locates the three sources.
type Inputs struct {
	BoundaryDir string `yaml:"boundary_dir"`
	Income      CSV    `yaml:"income"`
	Education   CSV    `yaml:"education"`
}

// CSV locates one CSV source.
type CSV struct {
	Path     string `yaml:"path"`
	SkipRows *int   `yaml:"skip_rows,omitempty"`
}

// Outputs locates the files a run writes.
type Outputs struct {
	Merged string `yaml:"merged"`
	Absent string `yaml:"absent"`
	SQLite string `yaml:"sqlite,omitempty"`
}

// Normalize configures one key matcher per source.
type Normalize struct {
	Boundary  Matcher `yaml:"boundary"`
	Income    Matcher `yaml:"income"`
	Education Matcher `yaml:"education"`
}

// Matcher configures a locality.Matcher. Nil lists fall back to defaults;
// an explicit empty list disables the fixes.
type Matcher struct {
	Pattern string                 `yaml:"pattern"`
	Before  []locality.Replacement `yaml:"before,omitempty"`
	After   []locality.Replacement `yaml:"after,omitempty"`
}

// Residual configures the summary-row filter of the CSV sources.
type Residual struct {
	DistrictSuffixes []string `yaml:"district_suffixes"`
	Villages         []string `yaml:"villages"`
}

// Default returns the built-in configuration.
func Default() *Config {
	var cfg Config

	applyDefaults(&cfg)

	return &cfg
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	setDefault(&cfg.Inputs.BoundaryDir, DefaultBoundaryDir)
	setDefault(&cfg.Inputs.Income.Path, DefaultIncomePath)
	setDefault(&cfg.Inputs.Education.Path, DefaultEducationPath)
	setDefault(&cfg.Outputs.Merged, DefaultMergedPath)
	setDefault(&cfg.Outputs.Absent, DefaultAbsentPath)

	if cfg.Inputs.Income.SkipRows == nil {
		cfg.Inputs.Income.SkipRows = intPtr(0)
	}

	if cfg.Inputs.Education.SkipRows == nil {
		cfg.Inputs.Education.SkipRows = intPtr(DefaultEducationSkipRows)
	}

	n := &cfg.Normalize
	setDefault(&n.Boundary.Pattern, locality.VillagePattern)
	setDefault(&n.Income.Pattern, locality.DistrictPattern)
	setDefault(&n.Education.Pattern, locality.DistrictPattern)

	if n.Boundary.After == nil {
		n.Boundary.After = slices.Clone(locality.BoundaryAfter)
	}

	if n.Education.Before == nil {
		n.Education.Before = slices.Clone(locality.EducationBefore)
	}

	def := locality.DefaultResidual()
	if cfg.Residual.DistrictSuffixes == nil {
		cfg.Residual.DistrictSuffixes = def.DistrictSuffixes
	}

	if cfg.Residual.Villages == nil {
		cfg.Residual.Villages = def.Villages
	}
}

// Validate checks that every pattern compiles and skip counts are sane.
func (c *Config) Validate() error {
	for name, m := range map[string]Matcher{
		"boundary":  c.Normalize.Boundary,
		"income":    c.Normalize.Income,
		"education": c.Normalize.Education,
	} {
		if _, err := m.Build(); err != nil {
			return fmt.Errorf("normalize.%s: %w", name, err)
		}
	}

	if c.Inputs.Income.Skip() < 0 || c.Inputs.Education.Skip() < 0 {
		return fmt.Errorf("skip_rows must not be negative")
	}

	return nil
}

// Build compiles the matcher.
func (m Matcher) Build() (*locality.Matcher, error) {
	return locality.NewMatcher(m.Pattern, m.Before, m.After)
}

// Skip returns the configured skip count.
func (c CSV) Skip() int {
	if c.SkipRows == nil {
		return 0
	}

	return *c.SkipRows
}

// Filter converts the residual settings.
func (r Residual) Filter() locality.Residual {
	return locality.Residual{
		DistrictSuffixes: r.DistrictSuffixes,
		Villages:         r.Villages,
	}
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

func intPtr(v int) *int {
	return &v
}
