// Package config loads picker option files written in YAML or TOML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrNoItems is returned by Validate when there is nothing to pick from.
var ErrNoItems = errors.New("no items to pick from")

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// Format is the syntax of an option file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Config holds the options of one picker invocation.
type Config struct {
	// Title is shown in the top border of the popup.
	Title string `yaml:"title" toml:"title"`
	// Items are the labels of the options, in order.
	Items []string `yaml:"items" toml:"items"`
	// Selected is the zero-based index of the option under the cursor at
	// start.
	Selected int `yaml:"selected" toml:"selected"`
	// Width is the render width in print mode. 0 means the terminal width.
	Width int `yaml:"width" toml:"width"`

	Log LogConfig `yaml:"log" toml:"log"`
}

// LogConfig configures the diagnostic log.
type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
	File  string `yaml:"file" toml:"file"`
}

// Load reads the option file at path. The format follows the file
// extension: .toml is TOML, everything else YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := LoadFromBytes(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromBytes parses data in the given format after expanding ${VAR} and
// ${VAR:-default} references to environment variables.
func LoadFromBytes(data []byte, format Format) (*Config, error) {
	expanded := []byte(expandEnvVars(string(data)))

	var cfg Config
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(expanded, &cfg); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(expanded, &cfg); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config format %q", format)
	}
	return &cfg, nil
}

// FormatFromPath returns the format matching the file extension of path.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Validate checks that there are items and that Selected points at one of
// them.
func (c *Config) Validate() error {
	if len(c.Items) == 0 {
		return ErrNoItems
	}
	if c.Selected < 0 || c.Selected >= len(c.Items) {
		return fmt.Errorf("selected index %d out of range [0, %d)", c.Selected, len(c.Items))
	}
	if c.Width < 0 {
		return fmt.Errorf("width must not be negative, got %d", c.Width)
	}
	return nil
}

// expandEnvVars replaces ${VAR} with environment variable values
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		varName := envVarRegex.FindStringSubmatch(match)[1]

		// Handle default values: ${VAR:-default}
		varName, defaultValue, _ := strings.Cut(varName, ":-")
		if value := os.Getenv(varName); value != "" {
			return value
		}
		return defaultValue
	})
}
