package slogobs

import (
	"io"
	"log/slog"
	"os"
)

// Option configures New.
type Option func(*settings)

type settings struct {
	handler HandlerOptions
	logger  *slog.Logger
}

func newSettings(opts []Option) *settings {
	s := &settings{handler: HandlerOptions{
		Format: GetFormatFromEnv(),
		Level:  GetLogLevelFromEnv(),
		Output: os.Stderr,
	}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func WithFormat(format Format) Option {
	return func(s *settings) { s.handler.Format = format }
}

func WithLevel(level slog.Level) Option {
	return func(s *settings) { s.handler.Level = level }
}

// WithOutput redirects records, which go to stderr by default. The CLI passes
// the command's stderr so decoded JSON on stdout stays clean.
func WithOutput(w io.Writer) Option {
	return func(s *settings) { s.handler.Output = w }
}

// WithLogger sends records to an existing logger. Format, level and output
// options are then ignored; filtering is up to the logger's handler.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) { s.logger = logger }
}
