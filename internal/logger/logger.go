package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const serviceName = "salesledger"

var (
	mu   sync.Mutex
	base *zerolog.Logger
)

// Init configures the global JSON logger from the environment.
//
// Environment variables (optional):
//   - LOG_LEVEL: trace|debug|info|warn|error (default: info)
//   - LOG_PRETTY: true|false (default: false)
func Init() {
	l := fromEnv()
	set(l)
}

// New builds a logger writing to w, tagged with service=salesledger.
// With pretty set, output is human-readable console text instead of JSON.
func New(w io.Writer, level zerolog.Level, pretty bool) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Str("service", serviceName).Logger()
}

// L returns the global logger, configuring it from the environment on first
// use if Init was never called.
func L() *zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if base == nil {
		l := fromEnv()
		base = &l
	}
	return base
}

// Component returns a child of the global logger tagged with component=name,
// e.g. "importer" or "sales_service".
func Component(name string) zerolog.Logger {
	return L().With().Str("component", name).Logger()
}

func set(l zerolog.Logger) {
	mu.Lock()
	base = &l
	mu.Unlock()
}

func fromEnv() zerolog.Logger {
	level := parseLevel(getenv("LOG_LEVEL", "info"))
	pretty := strings.EqualFold(getenv("LOG_PRETTY", "false"), "true")
	return New(os.Stdout, level, pretty)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
