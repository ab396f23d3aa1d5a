// Package config loads the settings of the as-completed demo binary.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// DefaultYAML documents every setting with its default value.
const DefaultYAML = `# as-completed demo configuration
log_level: info

# Random waits collected in completion order.
wait_n:
  count: 5
  max_delay: 1s

# Runtime measurement of concurrent comprehensions.
comprehension:
  batches: 4
  count: 10
  interval: 100ms
  max_value: 10
`

// WaitNConfig configures the random-wait batch.
type WaitNConfig struct {
	Count    int           `yaml:"count"`
	MaxDelay time.Duration `yaml:"max_delay"`
}

// ComprehensionConfig configures the parallel generator batches.
type ComprehensionConfig struct {
	Batches  int           `yaml:"batches"`
	Count    int           `yaml:"count"`
	Interval time.Duration `yaml:"interval"`
	MaxValue float64       `yaml:"max_value"`
}

type Config struct {
	LogLevel      string              `yaml:"log_level"`
	WaitN         WaitNConfig         `yaml:"wait_n"`
	Comprehension ComprehensionConfig `yaml:"comprehension"`
}

// Default returns the configuration described by DefaultYAML.
func Default() Config {
	cfg, err := Parse([]byte(DefaultYAML))
	if err != nil {
		panic(err)
	}
	return cfg
}

// Parse decodes YAML on top of zero values and validates the result.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads path and overlays it on the defaults. An empty path yields the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.WaitN.Count < 0:
		return fmt.Errorf("%w: wait_n.count must not be negative", ErrInvalidConfig)
	case c.WaitN.MaxDelay < 0:
		return fmt.Errorf("%w: wait_n.max_delay must not be negative", ErrInvalidConfig)
	case c.Comprehension.Batches < 0:
		return fmt.Errorf("%w: comprehension.batches must not be negative", ErrInvalidConfig)
	case c.Comprehension.Count < 0:
		return fmt.Errorf("%w: comprehension.count must not be negative", ErrInvalidConfig)
	case c.Comprehension.Interval < 0:
		return fmt.Errorf("%w: comprehension.interval must not be negative", ErrInvalidConfig)
	case c.Comprehension.MaxValue < 0:
		return fmt.Errorf("%w: comprehension.max_value must not be negative", ErrInvalidConfig)
	}
	return nil
}
