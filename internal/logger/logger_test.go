package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewSetsGlobalLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":         zerolog.InfoLevel,
		"debug":    zerolog.DebugLevel,
		"Warn":     zerolog.WarnLevel,
		"ERROR":    zerolog.ErrorLevel,
		"disabled": zerolog.Disabled,
	}

	for input, want := range cases {
		t.Run("level_"+input, func(t *testing.T) {
			prev := zerolog.GlobalLevel()
			t.Cleanup(func() {
				zerolog.SetGlobalLevel(prev)
			})

			var buf bytes.Buffer
			if _, err := New("production", input, &buf); err != nil {
				t.Fatalf("New returned error for level %q: %v", input, err)
			}

			if got := zerolog.GlobalLevel(); got != want {
				t.Fatalf("global level = %s, want %s", got, want)
			}
		})
	}
}

func TestNewInvalidLevel(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(prev)
	})

	if _, err := New("production", "not-a-level"); err == nil {
		t.Fatalf("expected error for invalid level")
	}
}

func TestDiagnosticWritesLevelsAndComponent(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(prev)
	})

	var buf bytes.Buffer
	l, err := New("production", "debug", &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d := NewDiagnostic(*l, "onecall")
	d.Debug("request received")
	d.Error("17-Oct-26 09:05 ** ERROR ** Not Found")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %s", len(lines), buf.String())
	}

	wantLevels := []string{"debug", "error"}
	for i, line := range lines {
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("line %d is not json: %v", i, err)
		}
		if entry["level"] != wantLevels[i] {
			t.Fatalf("line %d level = %v, want %s", i, entry["level"], wantLevels[i])
		}
		if entry["component"] != "onecall" {
			t.Fatalf("line %d component = %v", i, entry["component"])
		}
	}
	if !strings.Contains(lines[1], "Not Found") {
		t.Fatalf("expected message in error line: %s", lines[1])
	}
}

func TestDiagnosticRespectsLevel(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(prev)
	})

	var buf bytes.Buffer
	l, err := New("production", "error", &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d := NewDiagnostic(*l, "onecall")
	d.Debug("hidden")

	if buf.Len() != 0 {
		t.Fatalf("expected debug line to be filtered, got %s", buf.String())
	}
}

func TestNewRotatingFile(t *testing.T) {
	w := NewRotatingFile("logs/app.log")
	if w.Filename != "logs/app.log" || w.MaxSize != 5 || w.MaxBackups != 3 || !w.Compress {
		t.Fatalf("unexpected rotation settings %+v", w)
	}
}

func TestNewConsoleWritesReadableLines(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(prev)
	})

	var buf bytes.Buffer
	logger, err := NewConsole("info", &buf)
	if err != nil {
		t.Fatalf("NewConsole: %v", err)
	}
	logger.Info().Str("component", "onecall").Msg("hello")

	line := buf.String()
	if json.Valid(bytes.TrimSpace(buf.Bytes())) {
		t.Fatalf("expected console output, got JSON %q", line)
	}
	if !strings.Contains(line, "hello") || !strings.Contains(line, "component=onecall") {
		t.Fatalf("unexpected console line %q", line)
	}
}
