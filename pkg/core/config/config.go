// ============================================================================
// unitx - Dimensional analysis for Go
// ============================================================================
//
// Package:     config
// Description: CLI configuration loaded from TOML or YAML files
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	mdwerror "github.com/msto63/unitx/foundation/core/error"
	mdwerrors "github.com/msto63/unitx/foundation/core/errors"
	mdwlog "github.com/msto63/unitx/foundation/core/log"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding the config path
const EnvConfigPath = "UNITX_CONFIG"

// AirDensity is the density of air at sea level in kg/m³. Box contents
// must be denser than this.
const AirDensity = 1.225

// Config holds the complete CLI configuration
type Config struct {
	General  GeneralConfig  `toml:"general" yaml:"general"`
	Output   OutputConfig   `toml:"output" yaml:"output"`
	Examples ExamplesConfig `toml:"examples" yaml:"examples"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// OutputConfig controls how quantities are printed
type OutputConfig struct {
	// Precision is the number of significant digits for %g and the
	// number of decimals for %f and %e
	Precision int `toml:"precision" yaml:"precision"`

	// Notation is one of "g", "f" or "e"
	Notation string `toml:"notation" yaml:"notation"`

	NoColor bool `toml:"no_color" yaml:"no_color"`
}

// ExamplesConfig holds the inputs of the example computations
type ExamplesConfig struct {
	Hello     HelloConfig     `toml:"hello" yaml:"hello"`
	Box       BoxConfig       `toml:"box" yaml:"box"`
	Capacitor CapacitorConfig `toml:"capacitor" yaml:"capacitor"`
}

// HelloConfig holds the two trips of the average speed example
type HelloConfig struct {
	DistanceKm float64  `toml:"distance_km" yaml:"distance_km"`
	DistanceMi float64  `toml:"distance_mi" yaml:"distance_mi"`
	Duration   Duration `toml:"duration" yaml:"duration"`
}

// BoxConfig holds the box dimensions and the fill measurement
type BoxConfig struct {
	LengthMm   float64  `toml:"length_mm" yaml:"length_mm"`
	WidthMm    float64  `toml:"width_mm" yaml:"width_mm"`
	HeightMm   float64  `toml:"height_mm" yaml:"height_mm"`
	Density    float64  `toml:"density" yaml:"density"`
	FillMassKg float64  `toml:"fill_mass_kg" yaml:"fill_mass_kg"`
	FillTime   Duration `toml:"fill_time" yaml:"fill_time"`
}

// CapacitorConfig holds the RC circuit and the sampling sweep
type CapacitorConfig struct {
	CapacitanceUF  float64  `toml:"capacitance_uf" yaml:"capacitance_uf"`
	ResistanceKOhm float64  `toml:"resistance_kohm" yaml:"resistance_kohm"`
	Voltage        float64  `toml:"voltage" yaml:"voltage"`
	Step           Duration `toml:"step" yaml:"step"`
	End            Duration `toml:"end" yaml:"end"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// MarshalYAML formats the duration as a string scalar
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension.
// Unknown keys are rejected.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, configError("Load", err, mdwerror.CodeNotFound, "config file not found: %s", path)
		}
		return nil, configError("Load", err, mdwerror.CodeConfigError, "failed to read config: %s", path)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, configError("Load", err, mdwerror.CodeConfigError, "failed to parse config: %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, configError("Load", nil, mdwerror.CodeInvalidConfig, "unknown config key %q in %s", undecoded[0].String(), path)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, configError("Load", err, mdwerror.CodeConfigError, "failed to parse config: %s", path)
		}
	default:
		return nil, configError("Load", nil, mdwerror.CodeInvalidConfig, "unsupported config format %q", ext)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from the UNITX_CONFIG environment
// variable or the first default location that exists
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, configError("LoadFromEnv", nil, mdwerror.CodeNotFound,
			"no config file found, set %s or create unitx.toml", EnvConfigPath)
	}

	return Load(path)
}

// DefaultPaths lists the locations searched by LoadFromEnv
func DefaultPaths() []string {
	paths := []string{
		"./unitx.toml",
		"./unitx.yaml",
		"./configs/unitx.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "unitx", "config.toml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "unitx"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Output
	if c.Output.Precision == 0 {
		c.Output.Precision = 6
	}
	if c.Output.Notation == "" {
		c.Output.Notation = "g"
	}

	// Hello
	h := &c.Examples.Hello
	if h.DistanceKm == 0 {
		h.DistanceKm = 220
	}
	if h.DistanceMi == 0 {
		h.DistanceMi = 140
	}
	if h.Duration.Duration == 0 {
		h.Duration.Duration = 2 * time.Hour
	}

	// Box
	b := &c.Examples.Box
	if b.LengthMm == 0 {
		b.LengthMm = 1000
	}
	if b.WidthMm == 0 {
		b.WidthMm = 500
	}
	if b.HeightMm == 0 {
		b.HeightMm = 200
	}
	if b.Density == 0 {
		b.Density = 1000
	}
	if b.FillMassKg == 0 {
		b.FillMassKg = 20
	}
	if b.FillTime.Duration == 0 {
		b.FillTime.Duration = 200 * time.Second
	}

	// Capacitor
	cp := &c.Examples.Capacitor
	if cp.CapacitanceUF == 0 {
		cp.CapacitanceUF = 0.47
	}
	if cp.ResistanceKOhm == 0 {
		cp.ResistanceKOhm = 4.7
	}
	if cp.Voltage == 0 {
		cp.Voltage = 5
	}
	if cp.Step.Duration == 0 {
		cp.Step.Duration = time.Millisecond
	}
	if cp.End.Duration == 0 {
		cp.End.Duration = 50 * time.Millisecond
	}
}

// Validate checks value ranges after defaults have been applied
func (c *Config) Validate() error {
	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, err)
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, err)
	}

	if c.Output.Precision < 1 || c.Output.Precision > 17 {
		return invalid("output.precision", c.Output.Precision, nil)
	}
	switch c.Output.Notation {
	case "g", "f", "e":
	default:
		return invalid("output.notation", c.Output.Notation, nil)
	}

	h := c.Examples.Hello
	if h.DistanceKm < 0 {
		return invalid("examples.hello.distance_km", h.DistanceKm, nil)
	}
	if h.DistanceMi < 0 {
		return invalid("examples.hello.distance_mi", h.DistanceMi, nil)
	}
	if h.Duration.Duration <= 0 {
		return invalid("examples.hello.duration", h.Duration, nil)
	}

	b := c.Examples.Box
	for _, dim := range []struct {
		key string
		v   float64
	}{
		{"examples.box.length_mm", b.LengthMm},
		{"examples.box.width_mm", b.WidthMm},
		{"examples.box.height_mm", b.HeightMm},
	} {
		if dim.v <= 0 {
			return invalid(dim.key, dim.v, nil)
		}
	}
	if b.Density <= AirDensity {
		return invalid("examples.box.density", b.Density, nil)
	}
	if b.FillMassKg < 0 {
		return invalid("examples.box.fill_mass_kg", b.FillMassKg, nil)
	}
	if b.FillTime.Duration <= 0 {
		return invalid("examples.box.fill_time", b.FillTime, nil)
	}

	cp := c.Examples.Capacitor
	if cp.CapacitanceUF <= 0 {
		return invalid("examples.capacitor.capacitance_uf", cp.CapacitanceUF, nil)
	}
	if cp.ResistanceKOhm <= 0 {
		return invalid("examples.capacitor.resistance_kohm", cp.ResistanceKOhm, nil)
	}
	if cp.Step.Duration <= 0 {
		return invalid("examples.capacitor.step", cp.Step, nil)
	}
	if cp.End.Duration < 0 {
		return invalid("examples.capacitor.end", cp.End, nil)
	}

	return nil
}

func configError(operation string, cause error, code mdwerror.Code, format string, args ...interface{}) *mdwerror.Error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
		Operation("config." + operation).
		Messagef(format, args...).
		Cause(cause).
		Code(code).
		Build()
}

func invalid(key string, value interface{}, cause error) *mdwerror.Error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
		Operation("config.Validate").
		Messagef("invalid value for %s: %v", key, value).
		Cause(cause).
		Detail("key", key).
		Code(mdwerror.CodeInvalidConfig).
		Build()
}
