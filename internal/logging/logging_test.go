package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  slog.Level
	}{
		{name: "default", input: "", want: slog.LevelInfo},
		{name: "debug", input: "debug", want: slog.LevelDebug},
		{name: "mixed case", input: " DEBUG ", want: slog.LevelDebug},
		{name: "warn alias", input: "warning", want: slog.LevelWarn},
		{name: "error", input: "error", want: slog.LevelError},
		{name: "invalid", input: "nope", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.want {
				t.Fatalf("parseLevel(%q): got %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestOpenOutputFallsBackToStderr(t *testing.T) {
	if got := openOutput("  "); got != os.Stderr {
		t.Fatal("expected stderr for blank path")
	}
	missing := filepath.Join(t.TempDir(), "no-such-dir", "log.txt")
	if got := openOutput(missing); got != os.Stderr {
		t.Fatal("expected stderr for unopenable path")
	}
}

func TestOpenOutputAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "room-area.log")
	w := openOutput(path)
	f, ok := w.(*os.File)
	if !ok || f == os.Stderr {
		t.Fatalf("expected file writer, got %T", w)
	}
	defer f.Close()
	if _, err := f.WriteString("hello\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if string(data) != "hello\n" {
		t.Fatalf("unexpected log content %q", data)
	}
}
