package slogobs

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// LevelTrace sits below DEBUG. Observer writes span transitions and metric
// updates at this level.
const LevelTrace = slog.LevelDebug - 4

// Environment variables consulted by GetLogLevelFromEnv, in priority order.
const (
	EnvLogLevel         = "EDITDECODE_LOG_LEVEL"
	EnvLogLevelFallback = "LOG_LEVEL"
)

// LookupLogLevel parses a level name (case-insensitive) and reports whether
// it was recognised. Supported: TRACE, DEBUG, INFO, WARN, WARNING, ERROR.
func LookupLogLevel(level string) (slog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE":
		return LevelTrace, true
	case "DEBUG":
		return slog.LevelDebug, true
	case "INFO":
		return slog.LevelInfo, true
	case "WARN", "WARNING":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// ParseLogLevel parses a level name. Unknown values yield INFO.
func ParseLogLevel(level string) slog.Level {
	l, _ := LookupLogLevel(level)
	return l
}

// GetLogLevelFromEnv reads EDITDECODE_LOG_LEVEL, then LOG_LEVEL.
// Default: INFO
func GetLogLevelFromEnv() slog.Level {
	for _, key := range []string{EnvLogLevel, EnvLogLevelFallback} {
		if level := os.Getenv(key); level != "" {
			return ParseLogLevel(level)
		}
	}
	return slog.LevelInfo
}

// LogLevelString returns a human-readable string for the log level.
func LogLevelString(level slog.Level) string {
	switch level {
	case LevelTrace:
		return "TRACE"
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", level)
	}
}
