// Package config loads lockin tool settings from defaults, a YAML file,
// LOCKIN_ environment variables and command-line flags, in increasing
// precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. LOCKIN_SCAN_STEP.
const EnvPrefix = "LOCKIN"

// Config represents the tool configuration.
type Config struct {
	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`

	// Window is the window name used by every command.
	Window string `mapstructure:"window" yaml:"window"`
	// Header is the comma-separated header field list of written records.
	Header string `mapstructure:"header" yaml:"header"`

	Input    InputConfig    `mapstructure:"input" yaml:"input"`
	Filter   FilterConfig   `mapstructure:"filter" yaml:"filter"`
	Spectrum SpectrumConfig `mapstructure:"spectrum" yaml:"spectrum"`
	Lock     LockConfig     `mapstructure:"lock" yaml:"lock"`
	Scan     ScanConfig     `mapstructure:"scan" yaml:"scan"`
	Generate GenerateConfig `mapstructure:"generate" yaml:"generate"`
}

// InputConfig describes how recordings are read.
type InputConfig struct {
	// Width is the element width in bytes, 4 or 8.
	Width      int     `mapstructure:"width" yaml:"width"`
	SampleRate float64 `mapstructure:"sample_rate" yaml:"sample_rate"`
	// Crop averages groups of adjacent samples; 1 disables it.
	Crop int `mapstructure:"crop" yaml:"crop"`
}

// FilterConfig holds filter and band command settings.
type FilterConfig struct {
	Kind       string  `mapstructure:"kind" yaml:"kind"`
	Transition float64 `mapstructure:"transition" yaml:"transition"`
	Width      float64 `mapstructure:"width" yaml:"width"`
}

// SpectrumConfig holds spectrum command settings.
type SpectrumConfig struct {
	Resolution float64 `mapstructure:"resolution" yaml:"resolution"`
	// Overlap < 0 selects the window's ideal overlap.
	Overlap  float64 `mapstructure:"overlap" yaml:"overlap"`
	RemoveDC bool    `mapstructure:"remove_dc" yaml:"remove_dc"`
}

// LockConfig holds lock command settings.
type LockConfig struct {
	Frequency   float64 `mapstructure:"frequency" yaml:"frequency"`
	Transition  float64 `mapstructure:"transition" yaml:"transition"`
	PhaseOffset float64 `mapstructure:"phase_offset" yaml:"phase_offset"`
}

// ScanConfig holds scan command settings. Zero bounds and step are
// derived from the recording.
type ScanConfig struct {
	Transition float64 `mapstructure:"transition" yaml:"transition"`
	Low        float64 `mapstructure:"low" yaml:"low"`
	High       float64 `mapstructure:"high" yaml:"high"`
	Step       float64 `mapstructure:"step" yaml:"step"`
	// Unwrap removes 2*pi jumps from the phase column.
	Unwrap bool `mapstructure:"unwrap" yaml:"unwrap"`
}

// GenerateConfig holds generate command settings.
type GenerateConfig struct {
	Samples    int     `mapstructure:"samples" yaml:"samples"`
	SampleRate float64 `mapstructure:"sample_rate" yaml:"sample_rate"`
	LSB        float64 `mapstructure:"lsb" yaml:"lsb"`
	Seed       int64   `mapstructure:"seed" yaml:"seed"`
	Noise      float64 `mapstructure:"noise" yaml:"noise"`
}

// New returns a viper instance with defaults and environment lookup set.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("window", "HAMMING")
	v.SetDefault("header", "fs,fr,S1,S2,NENBW,ENBW")

	v.SetDefault("input.width", 8)
	v.SetDefault("input.sample_rate", 10000.0)
	v.SetDefault("input.crop", 1)

	v.SetDefault("filter.kind", "lowpass")
	v.SetDefault("filter.transition", 0.0)
	v.SetDefault("filter.width", 1.0)

	v.SetDefault("spectrum.resolution", 0.0)
	v.SetDefault("spectrum.overlap", -1.0)
	v.SetDefault("spectrum.remove_dc", true)

	v.SetDefault("lock.frequency", 0.0)
	v.SetDefault("lock.transition", 0.1)
	v.SetDefault("lock.phase_offset", 0.0)

	v.SetDefault("scan.transition", 0.1)
	v.SetDefault("scan.low", 0.0)
	v.SetDefault("scan.high", 0.0)
	v.SetDefault("scan.step", 0.0)
	v.SetDefault("scan.unwrap", false)

	v.SetDefault("generate.samples", 1000000)
	v.SetDefault("generate.sample_rate", 10000.0)
	v.SetDefault("generate.lsb", 1e-3)
	v.SetDefault("generate.seed", 1)
	v.SetDefault("generate.noise", 0.0)
}

// ReadFile reads path, or searches lockin.yaml in the working directory,
// $HOME/.lockin and /etc/lockin when path is empty. A missing searched
// file is not an error.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".lockin"))
		}
		v.AddConfigPath("/etc/lockin")
		v.SetConfigName("lockin")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: read: %w", err)
	}
	return nil
}

// BindFlags binds each flag named in keys to its configuration key so that
// flags set on the command line take precedence.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) error {
	for name, key := range keys {
		f := flags.Lookup(name)
		if f == nil {
			return fmt.Errorf("config: unknown flag %q", name)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config: bind %q: %w", name, err)
		}
	}
	return nil
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unable to decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that do not depend on the recording.
func (c *Config) Validate() error {
	if c.Input.Width != 4 && c.Input.Width != 8 {
		return fmt.Errorf("config: input width must be 4 or 8: %d", c.Input.Width)
	}
	if c.Input.SampleRate <= 0 {
		return fmt.Errorf("config: input sample rate must be > 0: %f", c.Input.SampleRate)
	}
	if c.Input.Crop < 1 {
		return fmt.Errorf("config: crop must be >= 1: %d", c.Input.Crop)
	}
	if c.Spectrum.Overlap >= 1 {
		return fmt.Errorf("config: overlap must be < 1: %f", c.Spectrum.Overlap)
	}
	if c.Generate.Samples <= 0 {
		return fmt.Errorf("config: generate samples must be > 0: %d", c.Generate.Samples)
	}
	return nil
}
