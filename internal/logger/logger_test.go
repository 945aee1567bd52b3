package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"ERR", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"something", zerolog.InfoLevel},
	}
	for _, c := range cases {
		if got := parseLevel(c.in); got != c.want {
			t.Fatalf("parseLevel(%q)=%v, want %v", c.in, got, c.want)
		}
	}
}

func TestGetenv(t *testing.T) {
	t.Setenv("X", "val")
	if v := getenv("X", "def"); v != "val" {
		t.Fatalf("getenv returned %q, want 'val'", v)
	}
	if v := getenv("Y", "def"); v != "def" {
		t.Fatalf("getenv returned %q, want 'def'", v)
	}
}

func TestInitAndL(t *testing.T) {
	// Info by default
	_ = os.Unsetenv("LOG_LEVEL")
	_ = os.Unsetenv("LOG_PRETTY")
	Init()
	if L() == nil {
		t.Fatalf("L() returned nil")
	}

	// Set debug level and pretty
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_PRETTY", "true")
	Init()
	if L().GetLevel() != zerolog.DebugLevel {
		t.Fatalf("expected debug level, got %v", L().GetLevel())
	}
}

// L configures itself from the environment when Init was never called.
func TestL_LazyInit(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_PRETTY", "false")
	mu.Lock()
	base = nil
	mu.Unlock()
	defer Init()

	lg := L()
	if lg == nil {
		t.Fatalf("logger is nil")
	}
	if lg.GetLevel() != zerolog.WarnLevel {
		t.Fatalf("expected warn level from env, got %v", lg.GetLevel())
	}
	if L() != lg {
		t.Fatalf("L() must return the same logger once configured")
	}
}

func TestNew_TagsServiceAndFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	lg := New(&buf, zerolog.InfoLevel, false)
	lg.Debug().Msg("hidden")
	lg.Info().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line not filtered: %s", out)
	}
	if !strings.Contains(out, `"service":"salesledger"`) || !strings.Contains(out, `"message":"shown"`) {
		t.Fatalf("unexpected log line: %s", out)
	}
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	set(New(&buf, zerolog.InfoLevel, false))
	defer Init()

	lg := Component("importer")
	lg.Info().Str("file", "sales.csv").Msg("imported")
	out := buf.String()
	if !strings.Contains(out, `"component":"importer"`) || !strings.Contains(out, `"file":"sales.csv"`) {
		t.Fatalf("unexpected log line: %s", out)
	}
}
