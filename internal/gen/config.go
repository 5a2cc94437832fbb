package gen

import (
	"fmt"
	"go/token"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"intcast/primitive"
)

// Config holds configuration for code generation.
type Config struct {
	// Package is the name of the generated package.
	Package string `yaml:"package"`
	// CastImport is the import path of package cast. Empty means the code is
	// generated into package cast itself.
	CastImport string `yaml:"cast_import,omitempty"`
	// OptionImport is the import path of package option. Empty means the
	// option package next to CastImport.
	OptionImport string `yaml:"option_import,omitempty"`
	// Output is the name of the generated file.
	Output string `yaml:"output"`
	// Targets lists the Go type names to generate functions for, in order.
	Targets []string `yaml:"targets"`
}

// DefaultConfig returns the configuration that produces cast/targets_gen.go.
func DefaultConfig() Config {
	cfg := Config{}
	applyDefaults(&cfg)

	return cfg
}

// LoadConfig loads and parses a YAML generator config from the given path.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	return ParseConfig(data)
}

// ParseConfig parses YAML data into a Config and validates it.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Package == "" {
		cfg.Package = "cast"
	}

	if cfg.Output == "" {
		cfg.Output = "targets_gen.go"
	}

	if len(cfg.Targets) == 0 {
		for _, k := range primitive.Kinds() {
			cfg.Targets = append(cfg.Targets, k.TypeName())
		}
	}
}

// Validate checks that the config can produce a compilable file.
func (c *Config) Validate() error {
	if !token.IsIdentifier(c.Package) {
		return fmt.Errorf("invalid package name %q", c.Package)
	}

	if !strings.HasSuffix(c.Output, ".go") || strings.ContainsAny(c.Output, `/\`) {
		return fmt.Errorf("output %q must be a .go file name without directories", c.Output)
	}

	if len(c.Targets) == 0 {
		return fmt.Errorf("no targets configured")
	}

	seen := make(map[primitive.KindEnum]struct{}, len(c.Targets))
	for _, name := range c.Targets {
		k, err := primitive.ParseKind(name)
		if err != nil {
			return fmt.Errorf("target: %w", err)
		}

		if _, ok := seen[k]; ok {
			return fmt.Errorf("duplicate target %q", name)
		}

		seen[k] = struct{}{}
	}

	return nil
}

// optionImportPath resolves OptionImport, falling back to the sibling of CastImport.
func (c *Config) optionImportPath() string {
	switch {
	case c.OptionImport != "":
		return c.OptionImport
	case c.CastImport != "":
		return path.Join(path.Dir(c.CastImport), "option")
	}

	return "intcast/option"
}

// Kinds returns the configured targets as kinds. It assumes Validate passed.
func (c *Config) Kinds() []primitive.KindEnum {
	res := make([]primitive.KindEnum, 0, len(c.Targets))
	for _, name := range c.Targets {
		k, _ := primitive.ParseKind(name)
		res = append(res, k)
	}

	return res
}

// Marshal serializes a Config to YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
