package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"
)

// File is the on-disk configuration.
type File struct {
	// Address of the bulb: a MAC address on Linux/Windows, a CoreBluetooth
	// UUID on macOS.
	Address string `yaml:"address"`

	// DefaultBrightness is used by the TUI as the starting brightness.
	DefaultBrightness uint8 `yaml:"defaultBrightness"`

	// Presets maps a name to a colour string (#rrggbb or r,g,b).
	Presets map[string]string `yaml:"presets"`
}

// fileOverlay mirrors File with pointers where zero is a valid setting.
type fileOverlay struct {
	Address           string            `yaml:"address"`
	DefaultBrightness *uint8            `yaml:"defaultBrightness"`
	Presets           map[string]string `yaml:"presets"`
}

// EnvAddress overrides File.Address when set.
const EnvAddress = "SWBULB_ADDRESS"

// DefaultPath returns ~/.config/swbulb/config.yaml, or "" when the user
// config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "swbulb", "config.yaml")
}

// Load reads defaults, then the file at path, then environment
// overrides. A missing file is not an error.
func Load(path string) (*File, error) {
	cfg := defaultFile()

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func defaultFile() *File {
	return &File{
		DefaultBrightness: 100,
		Presets: map[string]string{
			"red":   "#ff0000",
			"green": "#00ff00",
			"blue":  "#0000ff",
			"white": "#ffffff",
			"warm":  "#ffb46b",
		},
	}
}

func loadFromFile(cfg *File, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fromFile fileOverlay
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	Debugf("Loaded config from %s", path)

	if fromFile.Address != "" {
		cfg.Address = fromFile.Address
	}
	if fromFile.DefaultBrightness != nil {
		cfg.DefaultBrightness = *fromFile.DefaultBrightness
	}
	for name, color := range fromFile.Presets {
		cfg.Presets[strings.ToLower(name)] = color
	}
	return nil
}

func applyEnvOverrides(cfg *File) {
	if addr := os.Getenv(EnvAddress); addr != "" {
		cfg.Address = addr
	}
}

func validate(cfg *File) error {
	if cfg.DefaultBrightness > 100 {
		return fmt.Errorf("defaultBrightness %d out of range 0-100", cfg.DefaultBrightness)
	}
	return nil
}
