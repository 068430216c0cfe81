// Package config holds the run settings of the sig-tracer command.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"sig-tracer/internal/fingerprint"
)

// Config is read from a YAML file; command line flags override it.
type Config struct {
	OutputDir string             `yaml:"output_dir"`
	Format    fingerprint.Format `yaml:"format"`

	// CaptureDebugSnapshots writes one PNG per parse phase next to the
	// fingerprint.
	CaptureDebugSnapshots bool `yaml:"capture_debug_snapshots"`

	Overlay      bool `yaml:"overlay"`
	OverlayScale int  `yaml:"overlay_scale"`

	Workers int  `yaml:"workers"`
	Verbose bool `yaml:"verbose"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		OutputDir:    "out",
		Format:       fingerprint.FormatJSON,
		OverlayScale: 4,
		Workers:      runtime.NumCPU(),
	}
}

// Load reads path over the defaults, so keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Save writes cfg as YAML.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.OutputDir == "" {
		errs = append(errs, errors.New("output_dir is empty"))
	}
	if c.Format != fingerprint.FormatJSON && c.Format != fingerprint.FormatYAML {
		errs = append(errs, fmt.Errorf("format %q is not json or yaml", c.Format))
	}
	if c.OverlayScale < 1 {
		errs = append(errs, fmt.Errorf("overlay_scale %d must be at least 1", c.OverlayScale))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers %d must be at least 1", c.Workers))
	}
	return errors.Join(errs...)
}
