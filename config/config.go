// Package config holds the run configuration of the decoder.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Display modes.
const (
	ModeStep = "step" // Pause after every instruction
	ModeAll  = "all"  // Run to the end without pausing
	ModeAsk  = "ask"  // Ask the user which mode to use
)

// Config holds the options of a decoding run.
type Config struct {
	// Mode selects the pacing. Default: ask.
	Mode string `yaml:"mode"`

	// ShowRegisters prints the register file after each instruction.
	// Default: true.
	ShowRegisters bool `yaml:"show_registers"`

	// Color highlights branch outcomes and unknown words on a terminal.
	// Default: false.
	Color bool `yaml:"color"`

	// Trace logs every executed instruction at debug level.
	Trace bool `yaml:"trace"`

	// Stats prints instruction statistics at the end of the run.
	Stats bool `yaml:"stats"`

	// DumpPath, when set, receives the final register state as JSON.
	DumpPath string `yaml:"dump_path"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Mode:          ModeAsk,
		ShowRegisters: true,
	}
}

// Load loads a Config from a YAML file. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

// Save writes the Config to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks that the Config is usable.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeStep, ModeAll, ModeAsk:
	default:
		return fmt.Errorf("mode must be one of %q, %q, %q; got %q",
			ModeStep, ModeAll, ModeAsk, c.Mode)
	}
	return nil
}

// Clone returns a copy of the Config.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
