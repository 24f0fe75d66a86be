// Package logging builds the bolt loggers used by the commands.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/felixgeelhaar/bolt/v3"
)

// Config configures a logger.
type Config struct {
	// Level is the minimum level (trace, debug, info, warn, error).
	Level string
	// Format is the output format (json or console).
	Format string
	// Output defaults to stderr. Stdout is kept for the SVG documents.
	Output io.Writer
}

func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
		Output: os.Stderr,
	}
}

func parseLevel(s string) bolt.Level {
	switch strings.ToLower(s) {
	case "trace":
		return bolt.TRACE
	case "debug":
		return bolt.DEBUG
	case "warn", "warning":
		return bolt.WARN
	case "error":
		return bolt.ERROR
	default:
		return bolt.INFO
	}
}

// New returns a logger writing to cfg.Output in the requested format.
func New(cfg Config) *bolt.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	out = &syncWriter{w: out}

	var handler bolt.Handler
	if strings.ToLower(cfg.Format) == "json" {
		handler = bolt.NewJSONHandler(out)
	} else {
		handler = bolt.NewConsoleHandler(out)
	}
	return bolt.New(handler).SetLevel(parseLevel(cfg.Level))
}

// syncWriter serializes the writes of the handlers. bolt does not.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(b []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(b)
}

// Discard returns a logger that drops every event.
func Discard() *bolt.Logger {
	return New(Config{Level: "error", Format: "json", Output: io.Discard})
}
