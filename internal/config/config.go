package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// CurrentVersion is the newest config schema this build understands
const CurrentVersion = 1

// Config represents a picker definition: widget settings and its options
type Config struct {
	Version     int           `toml:"version" yaml:"version" json:"version"`
	Placeholder string        `toml:"placeholder,omitempty" yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	Search      bool          `toml:"search" yaml:"search" json:"search"`
	Select      string        `toml:"select,omitempty" yaml:"select,omitempty" json:"select,omitempty"` // value selected at start
	UISettings  UISettings    `toml:"ui" yaml:"ui" json:"ui"`
	Options     []OptionEntry `toml:"options,omitempty" yaml:"options,omitempty" json:"options,omitempty"` // ungrouped
	Groups      []GroupEntry  `toml:"groups,omitempty" yaml:"groups,omitempty" json:"groups,omitempty"`
}

// UISettings represents terminal-related configuration
type UISettings struct {
	Top      int  `toml:"top" yaml:"top" json:"top"`          // blank rows above the widget
	Height   int  `toml:"height" yaml:"height" json:"height"` // visible option rows
	Width    int  `toml:"width" yaml:"width" json:"width"`
	Mouse    bool `toml:"mouse" yaml:"mouse" json:"mouse"`
	KeepOpen bool `toml:"keep_open" yaml:"keep_open" json:"keep_open"` // do not exit after a selection
}

// OptionEntry is one option. Value may be a string or a number and is
// coerced with domain.Key. A missing value defaults to the text and
// missing text to the value.
type OptionEntry struct {
	Value    any    `toml:"value,omitempty" yaml:"value,omitempty" json:"value,omitempty"`
	Text     string `toml:"text,omitempty" yaml:"text,omitempty" json:"text,omitempty"`
	Selected bool   `toml:"selected,omitempty" yaml:"selected,omitempty" json:"selected,omitempty"`
}

// GroupEntry is a labeled list of options
type GroupEntry struct {
	Label   string        `toml:"label" yaml:"label" json:"label"`
	Options []OptionEntry `toml:"options" yaml:"options" json:"options"`
}

// Format is a config file encoding
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnsupportedFormat is returned for files whose extension maps to no format
var ErrUnsupportedFormat = errors.New("unsupported config format")

// FormatForPath picks the encoding from the file extension
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
	log      logr.Logger
}

// NewConfigService creates a config service whose default file lives in
// the user config directory
func NewConfigService(log logr.Logger) ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "combo", "config.toml"),
		log:      log,
	}
}

// DefaultPath returns the path Load reads from
func DefaultPath() string {
	return NewConfigService(logr.Discard()).(*configService).filePath
}

// Load loads the default config file, or the default configuration when
// the file does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cs.log.V(1).Info("no config file, using defaults", "path", cs.filePath)
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cs.log.V(1).Info("config loaded", "path", path, "options", cfg.OptionCount())
	return cfg, nil
}

// SaveToPath saves configuration to a specific path in the format its
// extension names
func (cs *configService) SaveToPath(config *Config, path string) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}

	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := Marshal(config, format)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	cs.log.V(1).Info("config saved", "path", path)
	return nil
}

// Parse decodes data on top of the default configuration and validates it
func Parse(data []byte, format Format) (*Config, error) {
	cfg := DefaultConfig()

	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, cfg)
	case FormatYAML:
		err = yaml.Unmarshal(data, cfg)
	case FormatJSON:
		err = json.Unmarshal(data, cfg)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal encodes config in format
func Marshal(config *Config, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		return toml.Marshal(config)
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(config); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatJSON:
		return json.MarshalIndent(config, "", "  ")
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Validate checks the settings that cannot be repaired silently
func (c *Config) Validate() error {
	if c.Version > CurrentVersion {
		return fmt.Errorf("config version %d is newer than supported version %d", c.Version, CurrentVersion)
	}
	if c.UISettings.Top < 0 || c.UISettings.Height < 0 || c.UISettings.Width < 0 {
		return errors.New("ui sizes must not be negative")
	}
	return nil
}

// OptionCount returns the number of options across all sections
func (c *Config) OptionCount() int {
	n := len(c.Options)
	for _, g := range c.Groups {
		n += len(g.Options)
	}
	return n
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Search:  true,
		UISettings: UISettings{
			Top:    0,
			Height: 8,
			Width:  40,
			Mouse:  true,
		},
	}
}

// SampleConfig returns the configuration written by the init command
func SampleConfig() *Config {
	cfg := DefaultConfig()
	cfg.Placeholder = "Pick a fruit"
	cfg.Options = []OptionEntry{
		{Value: "none", Text: "Nothing, thanks"},
	}
	cfg.Groups = []GroupEntry{
		{Label: "Fruit", Options: []OptionEntry{
			{Value: "apple", Text: "Apple"},
			{Value: "banana", Text: "Banana"},
			{Value: "cherry", Text: "Cherry"},
		}},
		{Label: "Vegetables", Options: []OptionEntry{
			{Value: "kale", Text: "Kale"},
			{Value: "leek", Text: "Leek"},
		}},
	}
	return cfg
}
