package utils

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrConfig = errors.New("invalid configuration file")

const (
	DefaultOutput = "input.txt"
	DefaultCount  = 50000
	DefaultMin    = 1
	DefaultMax    = 1000
)

// Config represents the generator configuration. Pointer fields are nil
// when a config file leaves them out.
type Config struct {
	Output string  `yaml:"output"`
	Count  *int    `yaml:"count"`
	Min    *int64  `yaml:"min"`
	Max    *int64  `yaml:"max"`
	Seed   *uint64 `yaml:"seed"`
}

// DefaultConfig returns the built-in parameters
func DefaultConfig() *Config {
	count, lo, hi := DefaultCount, int64(DefaultMin), int64(DefaultMax)
	return &Config{
		Output: DefaultOutput,
		Count:  &count,
		Min:    &lo,
		Max:    &hi,
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w %s: %w", ErrConfig, path, err)
	}

	return &config, nil
}

// Merge overlays the fields set in other onto c
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Output != "" {
		c.Output = other.Output
	}
	if other.Count != nil {
		c.Count = other.Count
	}
	if other.Min != nil {
		c.Min = other.Min
	}
	if other.Max != nil {
		c.Max = other.Max
	}
	if other.Seed != nil {
		c.Seed = other.Seed
	}
}
