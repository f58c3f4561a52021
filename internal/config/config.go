package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
)

const (
	defaultsFileName     = "default.yaml"
	defaultWatchInterval = time.Second
	defaultLogLevel      = "info"
	minWatchInterval     = 10 * time.Millisecond
	lineEndingNative     = "native"
	lineEndingLF         = "lf"
	lineEndingCRLF       = "crlf"
)

var (
	// defaultsRelPath is where the bundled defaults document lives relative to the repository root.
	defaultsRelPath = filepath.Join("utils", "gendefs", defaultsFileName)
	// outputRelPath is the header location relative to the defaults document's directory.
	outputRelPath = filepath.Join("..", "..", "src", "common", "Defs.h")
)

// Config holds every path and switch the generator needs, so nothing is
// derived from process-wide state after Load returns.
type Config struct {
	DefaultsPath   string
	SearchDir      string
	OutputPath     string
	OverridePath   string
	StrictOverride bool
	LineSeparator  string
	DryRun         bool
	Watch          bool
	WatchInterval  time.Duration
	LogLevel       string
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	DefaultsPath   *string
	SearchDir      *string
	OutputPath     *string
	OverridePath   *string
	StrictOverride bool
	LineEnding     *string
	DryRun         bool
	Watch          bool
	WatchInterval  *time.Duration
	LogLevel       *string
}

// Load resolves configuration with precedence:
// CLI flags > paths derived from the defaults document > repository layout discovery
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	if overrides != nil {
		if err := applyCLIOverrides(&cfg, overrides); err != nil {
			return Config{}, err
		}
	}

	if cfg.DefaultsPath == "" {
		path, err := resolveProjectPath(defaultsRelPath)
		if err != nil {
			return Config{}, fmt.Errorf("locate defaults document: %w", err)
		}
		cfg.DefaultsPath = path
	}

	deriveLayout(&cfg)

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values. Paths stay empty until discovery.
func defaultConfig() Config {
	return Config{
		LineSeparator: nativeLineSeparator(),
		WatchInterval: defaultWatchInterval,
		LogLevel:      defaultLogLevel,
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) error {
	if v := trimmed(overrides.DefaultsPath); v != "" {
		cfg.DefaultsPath = v
	}

	if v := trimmed(overrides.SearchDir); v != "" {
		cfg.SearchDir = v
	}

	if v := trimmed(overrides.OutputPath); v != "" {
		cfg.OutputPath = v
	}

	if v := trimmed(overrides.OverridePath); v != "" {
		cfg.OverridePath = v
	}

	if v := trimmed(overrides.LineEnding); v != "" {
		sep, err := parseLineEnding(v)
		if err != nil {
			return fmt.Errorf("parse line ending: %w", err)
		}
		cfg.LineSeparator = sep
	}

	if overrides.WatchInterval != nil && *overrides.WatchInterval > 0 {
		cfg.WatchInterval = *overrides.WatchInterval
	}

	if v := trimmed(overrides.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	cfg.StrictOverride = overrides.StrictOverride
	cfg.DryRun = overrides.DryRun
	cfg.Watch = overrides.Watch

	return nil
}

// deriveLayout fills the search directory and output path from the defaults document location.
func deriveLayout(cfg *Config) {
	if cfg.SearchDir == "" {
		cfg.SearchDir = filepath.Dir(cfg.DefaultsPath)
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = filepath.Clean(filepath.Join(filepath.Dir(cfg.DefaultsPath), outputRelPath))
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if cfg.DefaultsPath == "" {
		return fmt.Errorf("defaults path cannot be empty")
	}
	if cfg.OutputPath == "" {
		return fmt.Errorf("output path cannot be empty")
	}
	if cfg.Watch && cfg.DryRun {
		return fmt.Errorf("watch and dry-run cannot be combined")
	}
	if cfg.Watch && cfg.WatchInterval < minWatchInterval {
		return fmt.Errorf("watch interval must be >= %s", minWatchInterval)
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	return nil
}

// parseLineEnding maps a line ending name to the separator placed between header lines.
func parseLineEnding(raw string) (string, error) {
	switch strings.ToLower(raw) {
	case lineEndingNative:
		return nativeLineSeparator(), nil
	case lineEndingLF:
		return "\n", nil
	case lineEndingCRLF:
		return "\r\n", nil
	default:
		return "", fmt.Errorf("unknown line ending %q (want native, lf or crlf)", raw)
	}
}

func nativeLineSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

func trimmed(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}

// resolveProjectPath locates a file or directory relative to the project root by walking up the directory tree.
func resolveProjectPath(relative string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, relative)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("unable to locate %s", relative)
}
