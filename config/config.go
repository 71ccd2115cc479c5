// SPDX-License-Identifier: MIT
// Package: latgen/config
//
// config.go - run configuration, file loading and validation.

// Package config holds the latgen run configuration.
//
// A configuration starts from Default, is optionally overlaid by a YAML or
// TOML file (chosen by extension) and finally by command-line flags. Validate
// checks field ranges with struct tags and that the topology name is known.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/latgen/geo"
	"github.com/katalvlaran/latgen/workload"
)

// Defaults.
const (
	DefaultMeanBandwidth = 37.5
	DefaultTopology      = "fcon"
	DefaultLatencyPage   = "ogpage.html"
	DefaultCoordinates   = "longlat"
	DefaultUserAgent     = "latgen/1.0"
	DefaultLogLevel      = "info"
)

var (
	// ErrUnsupportedFile indicates a config file extension with no decoder.
	ErrUnsupportedFile = errors.New("config: unsupported config file")

	// ErrInvalid indicates a configuration that failed validation.
	ErrInvalid = errors.New("config: invalid configuration")

	validate = validator.New()
)

// Log configures logging and rotation.
type Log struct {
	Level      string `yaml:"level" toml:"level" validate:"omitempty,oneof=trace debug info warn warning error fatal panic"`
	File       string `yaml:"file" toml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" toml:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `yaml:"max_backups" toml:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `yaml:"max_age_days" toml:"max_age_days" validate:"gte=0"`
	Compress   bool   `yaml:"compress" toml:"compress"`
}

// Geocoder configures the coordinate lookup service.
type Geocoder struct {
	URL       string `yaml:"url" toml:"url" validate:"omitempty,url"`
	UserAgent string `yaml:"user_agent" toml:"user_agent"`
}

// Config is one latgen run.
type Config struct {
	// Nodes is the node count; 0 means "take it from the workload header".
	Nodes         int     `yaml:"nodes" toml:"nodes" validate:"gte=0"`
	MeanBandwidth float64 `yaml:"mean_bandwidth" toml:"mean_bandwidth"`
	Topology      string  `yaml:"topology" toml:"topology" validate:"required"`
	Seed          int64   `yaml:"seed" toml:"seed"`

	LatencyPage string `yaml:"latency_page" toml:"latency_page" validate:"required"`
	Coordinates string `yaml:"coordinates" toml:"coordinates" validate:"required"`

	OutputFile   string `yaml:"output_file" toml:"output_file"`
	WorkloadFile string `yaml:"workload_file" toml:"workload_file"`
	GraphFile    string `yaml:"graph_file" toml:"graph_file"`
	LabelEdges   bool   `yaml:"label_edges" toml:"label_edges"`
	MetricsFile  string `yaml:"metrics_file" toml:"metrics_file"`

	UpdateCoordinates bool     `yaml:"update_coordinates" toml:"update_coordinates"`
	Geocoder          Geocoder `yaml:"geocoder" toml:"geocoder"`

	Log Log `yaml:"log" toml:"log"`
}

// Default returns the configuration used when nothing is specified.
func Default() Config {
	return Config{
		MeanBandwidth: DefaultMeanBandwidth,
		Topology:      DefaultTopology,
		LatencyPage:   DefaultLatencyPage,
		Coordinates:   DefaultCoordinates,
		Geocoder:      Geocoder{URL: geo.DefaultNominatimURL, UserAgent: DefaultUserAgent},
		Log: Log{
			Level:      DefaultLogLevel,
			MaxSizeMB:  100,
			MaxBackups: 7,
			MaxAgeDays: 30,
			Compress:   true,
		},
	}
}

// Load overlays the file at path onto Default. Fields absent from the file
// keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("Load: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		_, err = toml.Decode(string(data), &cfg)
	default:
		return cfg, fmt.Errorf("Load(%s): %q: %w", path, ext, ErrUnsupportedFile)
	}
	if err != nil {
		return cfg, fmt.Errorf("Load(%s): %w", path, err)
	}

	return cfg, nil
}

// ResolveNodes returns the node count for the run. An unset count is read
// from the workload header when a workload is configured, and otherwise
// defaults to workload.DefaultNodeCount.
func (c Config) ResolveNodes() (int, error) {
	if c.Nodes > 0 {
		return c.Nodes, nil
	}
	if c.WorkloadFile == "" {
		return workload.DefaultNodeCount, nil
	}
	n, err := workload.ReadNodeCount(c.WorkloadFile)
	if err != nil {
		return 0, fmt.Errorf("ResolveNodes: %w", err)
	}

	return n, nil
}

// Validate checks cfg. topologies lists the accepted topology names; a nil
// list skips that check.
func (c Config) Validate(topologies []string) error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("Validate: %s failed %q (value %v): %w", fe.Namespace(), fe.Tag(), fe.Value(), ErrInvalid)
		}
		return fmt.Errorf("Validate: %v: %w", err, ErrInvalid)
	}

	if topologies == nil {
		return nil
	}
	for _, name := range topologies {
		if name == c.Topology {
			return nil
		}
	}

	return fmt.Errorf("Validate: topology %q not in %v: %w", c.Topology, topologies, ErrInvalid)
}
