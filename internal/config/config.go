package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/leofalp/editdecode/internal/utils"
	"github.com/leofalp/editdecode/providers/observability/slogobs"
)

// Environment variables read by Load.
const (
	EnvMaxAttemptedText = "EDITDECODE_MAX_ATTEMPTED_TEXT"
	EnvLibraryRepair    = "EDITDECODE_LIBRARY_REPAIR"
	EnvNormalize        = "EDITDECODE_NORMALIZE"
)

// DefaultEnvFile is loaded when Load is called without explicit files.
const DefaultEnvFile = ".env"

// ErrInvalidValue is wrapped by every error Load returns for a malformed variable.
var ErrInvalidValue = errors.New("config: invalid value")

// Config is the runtime configuration of the CLI and the default decoder.
type Config struct {
	LogLevel         slog.Level
	LogFormat        slogobs.Format
	MaxAttemptedText int
	LibraryRepair    bool
	Normalize        bool
}

// Default returns the configuration used when no variable is set.
func Default() Config {
	return Config{
		LogLevel:         slog.LevelInfo,
		LogFormat:        slogobs.FormatCompact,
		MaxAttemptedText: utils.DefaultMaxStringLength,
		LibraryRepair:    true,
	}
}

// Load reads the given .env files (DefaultEnvFile when none are given) and
// then the process environment. Missing files are ignored; variables already
// present in the environment take precedence over file values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (Config, error) {
	cfg := Default()

	if v, ok := lookup(slogobs.EnvLogLevel, slogobs.EnvLogLevelFallback); ok {
		level, known := slogobs.LookupLogLevel(v)
		if !known {
			return Config{}, invalid(slogobs.EnvLogLevel, v, "expected TRACE, DEBUG, INFO, WARN or ERROR")
		}
		cfg.LogLevel = level
	}

	if v, ok := lookup(slogobs.EnvLogFormat, slogobs.EnvLogFormatFallback); ok {
		format, known := slogobs.LookupFormat(v)
		if !known {
			return Config{}, invalid(slogobs.EnvLogFormat, v, "expected compact, pretty or json")
		}
		cfg.LogFormat = format
	}

	if v, ok := lookup(EnvMaxAttemptedText); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, invalid(EnvMaxAttemptedText, v, "expected a positive integer")
		}
		cfg.MaxAttemptedText = n
	}

	var err error
	if cfg.LibraryRepair, err = boolVar(EnvLibraryRepair, cfg.LibraryRepair); err != nil {
		return Config{}, err
	}
	if cfg.Normalize, err = boolVar(EnvNormalize, cfg.Normalize); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// lookup returns the first non-empty variable among keys.
func lookup(keys ...string) (string, bool) {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v, true
		}
	}
	return "", false
}

func boolVar(key string, def bool) (bool, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, invalid(key, v, "expected a boolean")
	}
	return b, nil
}

func invalid(key, value, hint string) error {
	return fmt.Errorf("%w: %s=%q: %s", ErrInvalidValue, key, value, hint)
}
