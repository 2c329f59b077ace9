// Package config handles loading when.toml configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/amonks/when/internal/paths"
	internalstrings "github.com/amonks/when/internal/strings"
	"github.com/amonks/when/internal/validation"
)

// FileName is the project config file name.
const FileName = "when.toml"

// DefaultWidth is the display width used when none is configured.
const DefaultWidth = 80

// Config represents the when.toml configuration file.
type Config struct {
	Store   Store   `toml:"store"`
	Log     Log     `toml:"log"`
	Display Display `toml:"display"`
}

// Store selects where tasks are kept.
type Store struct {
	// Backend is "jsonl" or "sqlite". Defaults to jsonl.
	Backend string `toml:"backend"`
	// Path is the store file. Defaults to a file under the data directory.
	Path string `toml:"path"`
}

// Log configures diagnostics.
type Log struct {
	// Level is debug, info, warn or error. Defaults to warn.
	Level string `toml:"level"`
	// File receives JSON log lines instead of stderr when set.
	File string `toml:"file"`
}

// ColorMode says when output is coloured.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ValidColorModes lists the accepted color modes.
func ValidColorModes() []ColorMode {
	return []ColorMode{ColorAuto, ColorAlways, ColorNever}
}

// Display configures terminal output.
type Display struct {
	Color ColorMode `toml:"color"`
	Width int       `toml:"width"`
}

var (
	// ErrInvalidColorMode is returned for an unknown display.color.
	ErrInvalidColorMode = errors.New("invalid color mode")

	// ErrInvalidLogLevel is returned for an unknown log.level.
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// LogLevels lists the accepted log levels.
func LogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Load loads configuration from dir and the global config file, then fills
// defaults. Returns the defaults if no config files exist.
func Load(dir string) (*Config, error) {
	globalPath, err := paths.DefaultConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(dir, FileName))
	if err != nil {
		return nil, err
	}

	merged := mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta)
	if err := merged.applyDefaults(); err != nil {
		return nil, err
	}
	return merged, nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Store.Backend = mergeKeyword(projectMeta.IsDefined("store", "backend"), projectCfg.Store.Backend, globalCfg.Store.Backend)
	merged.Store.Path = mergeString(projectMeta.IsDefined("store", "path"), projectCfg.Store.Path, globalCfg.Store.Path)
	merged.Log.Level = mergeKeyword(projectMeta.IsDefined("log", "level"), projectCfg.Log.Level, globalCfg.Log.Level)
	merged.Log.File = mergeString(projectMeta.IsDefined("log", "file"), projectCfg.Log.File, globalCfg.Log.File)
	merged.Display.Color = ColorMode(mergeKeyword(projectMeta.IsDefined("display", "color"), string(projectCfg.Display.Color), string(globalCfg.Display.Color)))
	merged.Display.Width = globalCfg.Display.Width
	if projectMeta.IsDefined("display", "width") {
		merged.Display.Width = projectCfg.Display.Width
	}

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}

func mergeKeyword(projectDefined bool, projectValue, globalValue string) string {
	return internalstrings.NormalizeLowerTrimSpace(mergeString(projectDefined, projectValue, globalValue))
}

func (c *Config) applyDefaults() error {
	if c.Store.Backend == "" {
		c.Store.Backend = "jsonl"
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if !slices.Contains(LogLevels(), c.Log.Level) {
		return validation.FormatInvalidValueError(ErrInvalidLogLevel, c.Log.Level, LogLevels())
	}

	if c.Display.Color == "" {
		c.Display.Color = ColorAuto
	}
	switch c.Display.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return validation.FormatInvalidValueError(ErrInvalidColorMode, c.Display.Color, ValidColorModes())
	}
	if c.Display.Width <= 0 {
		c.Display.Width = DefaultWidth
	}
	return nil
}
