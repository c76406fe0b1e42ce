package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-safemd/internal/config"
)

// envPrefix is the prefix shared by all recognized variables.
const envPrefix = "SAFEMD_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // SAFEMD_CONFIG: config file name or path
	Style      string // SAFEMD_STYLE: highlight style for standalone pages
	OutputDir  string // SAFEMD_OUTPUT_DIR: default output directory
	Workers    int    // SAFEMD_WORKERS: parallel workers
	MaxBytes   int    // SAFEMD_MAX_BYTES: input size limit
	maxBytesOK bool
}

// knownEnvVars lists valid SAFEMD_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"SAFEMD_CONFIG":     true,
	"SAFEMD_STYLE":      true,
	"SAFEMD_OUTPUT_DIR": true,
	"SAFEMD_WORKERS":    true,
	"SAFEMD_MAX_BYTES":  true,
}

// loadEnvConfig reads configuration through getenv.
// Malformed numbers are ignored rather than reported.
func loadEnvConfig(getenv func(string) string) *envConfig {
	if getenv == nil {
		return &envConfig{}
	}
	cfg := &envConfig{
		ConfigPath: getenv("SAFEMD_CONFIG"),
		Style:      getenv("SAFEMD_STYLE"),
		OutputDir:  getenv("SAFEMD_OUTPUT_DIR"),
	}

	if workers := getenv("SAFEMD_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	// 0 is meaningful here: it disables the limit.
	if maxBytes := getenv("SAFEMD_MAX_BYTES"); maxBytes != "" {
		if n, err := strconv.Atoi(maxBytes); err == nil && n >= 0 {
			cfg.MaxBytes = n
			cfg.maxBytesOK = true
		}
	}

	return cfg
}

// warnUnknownEnvVars writes a warning for each unrecognized SAFEMD_* variable.
// Helps catch typos like SAFEMD_WORKER instead of SAFEMD_WORKERS.
func warnUnknownEnvVars(w io.Writer, environ func() []string) {
	if environ == nil {
		return
	}
	for _, env := range environ() {
		if strings.HasPrefix(env, envPrefix) {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// CLI flags are merged afterwards (via mergeFlags), giving:
// CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" {
		cfg.Output.Style = env.Style
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Workers > 0 {
		cfg.Limits.Workers = env.Workers
	}
	if env.maxBytesOK {
		cfg.Limits.MaxInputBytes = env.MaxBytes
	}
}
