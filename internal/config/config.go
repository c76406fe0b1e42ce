package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-safemd/internal/fileutil"
	"github.com/alnah/go-safemd/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidLimit    = errors.New("invalid limit")
)

// Limits on configured values.
const (
	MaxPathLength      = 4096     // Output directory
	MaxStyleLength     = 50       // Chroma style name
	MaxInputBytesLimit = 64 << 20 // Upper bound for limits.maxInputBytes
	MaxWorkersLimit    = 64       // Upper bound for limits.workers
)

// Default values.
const (
	DefaultMaxInputBytes = 1 << 20
	DefaultStyle         = "github"
)

// appDir is the directory under the user config directory searched for
// named configs.
const appDir = "go-safemd"

// Config holds all configuration for rendering.
type Config struct {
	Render RenderConfig `yaml:"render"`
	Limits LimitsConfig `yaml:"limits"`
	Output OutputConfig `yaml:"output"`
}

// RenderConfig toggles Markdown extensions.
type RenderConfig struct {
	HardWrap         bool `yaml:"hardWrap"`
	Autolink         bool `yaml:"autolink"`
	Tables           bool `yaml:"tables"`
	FencedCodeBlocks bool `yaml:"fencedCodeBlocks"`
	Strikethrough    bool `yaml:"strikethrough"`
	Superscript      bool `yaml:"superscript"`
}

// LimitsConfig bounds resource usage.
type LimitsConfig struct {
	MaxInputBytes int `yaml:"maxInputBytes"` // 0 = no limit
	Workers       int `yaml:"workers"`       // 0 = auto
}

// OutputConfig defines output destination and page options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = next to the source
	Standalone bool   `yaml:"standalone"` // Wrap fragments in a full HTML page
	Style      string `yaml:"style"`      // Chroma style for standalone pages
}

// Validate checks limits and field lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if c.Limits.MaxInputBytes < 0 || c.Limits.MaxInputBytes > MaxInputBytesLimit {
		return fmt.Errorf("%w: limits.maxInputBytes must be between 0 and %d, got %d",
			ErrInvalidLimit, MaxInputBytesLimit, c.Limits.MaxInputBytes)
	}
	if c.Limits.Workers < 0 || c.Limits.Workers > MaxWorkersLimit {
		return fmt.Errorf("%w: limits.workers must be between 0 and %d, got %d",
			ErrInvalidLimit, MaxWorkersLimit, c.Limits.Workers)
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.style", c.Output.Style, MaxStyleLength); err != nil {
		return err
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the comment preset: hard wraps, autolinks, tables
// and fenced code, with a 1 MiB input limit.
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			HardWrap:         true,
			Autolink:         true,
			Tables:           true,
			FencedCodeBlocks: true,
		},
		Limits: LimitsConfig{MaxInputBytes: DefaultMaxInputBytes},
		Output: OutputConfig{Style: DefaultStyle},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	f, err := os.Open(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	defer f.Close()

	cfg := DefaultConfig()
	if err := yamlutil.DecodeStrict(f, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup
// order: ./name.yaml, ./name.yml, then the same names under
// ~/.config/go-safemd/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	dirs := []string{""}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userConfigDir, appDir))
	}

	paths := make([]string, 0, len(extensions)*len(dirs))
	for _, dir := range dirs {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, path := range paths {
		if fileutil.FileExists(path) {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
