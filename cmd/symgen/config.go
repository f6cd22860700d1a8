package main

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/symtensor/internal/codegen"
)

// Config is the generator configuration, read from YAML and overridden by flags.
type Config struct {
	Package   string `yaml:"package" validate:"required,lowercase,alphanum"`
	OutputDir string `yaml:"output_dir" validate:"required"`
	Import    string `yaml:"import" validate:"required"`
	MinRank   int    `yaml:"min_rank" validate:"gte=0,ltefield=MaxRank"`
	MaxRank   int    `yaml:"max_rank" validate:"gte=0,lte=8"`
	Workers   int    `yaml:"workers" validate:"gte=0"`
}

var configValidate = validator.New()

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Package:   "tensors",
		OutputDir: ".",
		Import:    codegen.DefaultImport,
		MinRank:   0,
		MaxRank:   4,
		Workers:   0,
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
