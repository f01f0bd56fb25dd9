package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a supported configuration file format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// configBaseName is the file name (without extension) searched for in config dirs.
const configBaseName = "jezzball"

// ErrUnknownFormat is returned for config files with an unsupported extension.
var ErrUnknownFormat = errors.New("config: unknown config format")

// FormatForPath picks a format from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Parse decodes data on top of the built-in defaults, so omitted keys keep
// their default values, and validates the result.
func Parse(data []byte, format Format) (JezzballConfig, error) {
	cfg := DefaultJezzballConfig()

	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &cfg)
	case FormatTOML:
		err = toml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	if err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", format, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the config for values the engine cannot run with.
func (c JezzballConfig) Validate() error {
	if c.Field.CellSize <= 0 {
		return fmt.Errorf("config: field.cell_size must be positive, got %d", c.Field.CellSize)
	}
	if c.Field.Width < 0 || c.Field.Height < 0 {
		return fmt.Errorf("config: field size must not be negative, got %dx%d", c.Field.Width, c.Field.Height)
	}
	if c.Ball.Radius <= 0 {
		return fmt.Errorf("config: ball.radius must be positive, got %v", c.Ball.Radius)
	}
	if c.Barrier.GrowthPeriodMS <= 0 {
		return fmt.Errorf("config: barrier.growth_period_ms must be positive, got %d", c.Barrier.GrowthPeriodMS)
	}
	switch c.Ball.EdgeMode {
	case "recenter", "bounce":
	default:
		return fmt.Errorf("config: ball.edge_mode must be recenter or bounce, got %q", c.Ball.EdgeMode)
	}
	return nil
}

// LoadFile loads and parses a single config file.
func LoadFile(path string) (JezzballConfig, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return DefaultJezzballConfig(), err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultJezzballConfig(), fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Load loads the JezzBall configuration.
// Search order: customPath -> ~/.jezzball/configs/jezzball.{yaml,toml} ->
// ./configs/jezzball.{yaml,toml} -> embedded default.
// Only an explicit customPath can produce an error; broken files found
// while searching are skipped.
func Load(customPath string) (JezzballConfig, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	for _, dir := range searchDirs() {
		for _, ext := range []string{".yaml", ".yml", ".toml"} {
			path := filepath.Join(dir, configBaseName+ext)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if cfg, err := LoadFile(path); err == nil {
				return cfg, nil
			}
		}
	}

	cfg, err := Parse(defaultJezzballYAML, FormatYAML)
	if err != nil {
		return DefaultJezzballConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// searchDirs returns the directories searched for a config file.
func searchDirs() []string {
	dirs := make([]string, 0, 2)
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".jezzball", "configs"))
	}
	return append(dirs, "configs")
}

// Marshal encodes a config in the given format.
func Marshal(cfg JezzballConfig, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(cfg)
	case FormatTOML:
		var sb strings.Builder
		if err := toml.NewEncoder(&sb).Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: encode toml: %w", err)
		}
		return []byte(sb.String()), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}
