package logging

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/yaml.v3"
)

// Config describes a Logger assembly: which built-in destinations to
// attach and the severity range each one admits.
//
//	console:
//	  min: warning
//	metrics:
//	  min: debug
//	  max: wtf
//
// Omitted bounds keep the destination's defaults (admit everything).
// Destinations from other packages, such as dialog, are attached by the
// caller after Build.
type Config struct {
	Console *DestinationConfig `yaml:"console,omitempty"`
	Metrics *DestinationConfig `yaml:"metrics,omitempty"`
}

// DestinationConfig carries the optional severity bounds for one
// destination.
type DestinationConfig struct {
	Min *Severity `yaml:"min,omitempty"`
	Max *Severity `yaml:"max,omitempty"`
}

// Apply sets the configured bounds on destination, leaving omitted bounds
// alone.
func (c *DestinationConfig) Apply(destination Destination) {
	if c == nil {
		return
	}
	if c.Min != nil {
		destination.SetMinSeverity(*c.Min)
	}
	if c.Max != nil {
		destination.SetMaxSeverity(*c.Max)
	}
}

// ParseConfig decodes a YAML logging configuration.
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing logging config: %w", err)
	}
	return &config, nil
}

// LoadConfigFile reads and decodes a YAML logging configuration file.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading logging config: %w", err)
	}
	return ParseConfig(data)
}

// Build assembles a new Logger from the configuration. Metrics counters,
// when configured, are registered on reg; pass
// prometheus.DefaultRegisterer for the process-wide registry.
func (c *Config) Build(reg prometheus.Registerer) *Logger {
	logger := New()
	if c.Console != nil {
		console := NewConsoleDestination()
		c.Console.Apply(console)
		logger.AddDestination(console)
	}
	if c.Metrics != nil {
		metrics := NewMetricsDestination(reg)
		c.Metrics.Apply(metrics)
		logger.AddDestination(metrics)
	}
	return logger
}
