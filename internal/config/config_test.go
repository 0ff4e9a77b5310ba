package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/leofalp/editdecode/providers/observability/slogobs"
)

var allVars = []string{
	slogobs.EnvLogLevel, slogobs.EnvLogLevelFallback,
	slogobs.EnvLogFormat, slogobs.EnvLogFormatFallback,
	EnvMaxAttemptedText, EnvLibraryRepair, EnvNormalize,
}

// unsetAll removes every variable Load reads and restores them after the test.
func unsetAll(t *testing.T) {
	t.Helper()
	for _, k := range allVars {
		t.Setenv(k, "")
		if err := os.Unsetenv(k); err != nil {
			t.Fatalf("unset %s: %v", k, err)
		}
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	unsetAll(t)

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("FromEnv() = %+v, want %+v", cfg, Default())
	}
	if cfg.MaxAttemptedText != 500 || !cfg.LibraryRepair || cfg.Normalize {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestFromEnv_Values(t *testing.T) {
	unsetAll(t)
	t.Setenv(slogobs.EnvLogLevel, "debug")
	t.Setenv(slogobs.EnvLogFormat, "JSON")
	t.Setenv(EnvMaxAttemptedText, "120")
	t.Setenv(EnvLibraryRepair, "false")
	t.Setenv(EnvNormalize, "1")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}
	want := Config{
		LogLevel:         slog.LevelDebug,
		LogFormat:        slogobs.FormatJSON,
		MaxAttemptedText: 120,
		LibraryRepair:    false,
		Normalize:        true,
	}
	if cfg != want {
		t.Errorf("FromEnv() = %+v, want %+v", cfg, want)
	}
}

func TestFromEnv_FallbackVariables(t *testing.T) {
	unsetAll(t)
	t.Setenv(slogobs.EnvLogLevelFallback, "warn")
	t.Setenv(slogobs.EnvLogFormatFallback, "pretty")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}
	if cfg.LogLevel != slog.LevelWarn || cfg.LogFormat != slogobs.FormatPretty {
		t.Errorf("FromEnv() = %+v", cfg)
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{slogobs.EnvLogLevel, "loud"},
		{slogobs.EnvLogFormat, "xml"},
		{EnvMaxAttemptedText, "ten"},
		{EnvMaxAttemptedText, "0"},
		{EnvMaxAttemptedText, "-5"},
		{EnvLibraryRepair, "maybe"},
		{EnvNormalize, "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			unsetAll(t)
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()
			if !errors.Is(err, ErrInvalidValue) {
				t.Fatalf("FromEnv() error = %v, want ErrInvalidValue", err)
			}
		})
	}
}

func TestLoad_EnvFile(t *testing.T) {
	unsetAll(t)
	path := filepath.Join(t.TempDir(), "test.env")
	content := "EDITDECODE_MAX_ATTEMPTED_TEXT=64\nEDITDECODE_NORMALIZE=true\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxAttemptedText != 64 || !cfg.Normalize {
		t.Errorf("Load() = %+v", cfg)
	}
}

func TestLoad_EnvironmentWinsOverFile(t *testing.T) {
	unsetAll(t)
	t.Setenv(EnvMaxAttemptedText, "10")
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("EDITDECODE_MAX_ATTEMPTED_TEXT=64\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxAttemptedText != 10 {
		t.Errorf("MaxAttemptedText = %d, want 10", cfg.MaxAttemptedText)
	}
}

func TestLoad_MissingFileIgnored(t *testing.T) {
	unsetAll(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}
