package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWithOptionsLevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	l, closeLog := NewWithOptions(&buf, Options{Level: "warn", Format: "json"})
	defer closeLog()
	l.Info("hidden")
	l.Warn("shown", "component", "city")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"component":"city"`) {
		t.Fatalf("unexpected json output: %s", out)
	}
}

func TestFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sar2.log")
	var buf bytes.Buffer
	base, closeLog := NewWithOptions(&buf, Options{File: path})
	l := base.With("component", "crowd")
	l.Info("placed", "people", 3)
	if err := closeLog(); err != nil {
		t.Fatalf("close log file: %v", err)
	}
	if err := closeLog(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(b), `"people":3`) || !strings.Contains(string(b), `"component":"crowd"`) {
		t.Fatalf("unexpected file contents: %s", b)
	}
	if !strings.Contains(buf.String(), "people=3") {
		t.Fatalf("text handler missed the record: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	if ParseLevel("DEBUG") != slog.LevelDebug || ParseLevel("bogus") != slog.LevelInfo || ParseLevel("") != slog.LevelInfo {
		t.Fatalf("unexpected level parsing")
	}
}

func TestContextRoundTrip(t *testing.T) {
	l, _ := NewWithOptions(&bytes.Buffer{}, Options{})
	if FromContext(NewContext(context.Background(), l)) != l {
		t.Fatalf("logger not retrieved from context")
	}
	if FromContext(context.Background()) != slog.Default() {
		t.Fatalf("expected default logger")
	}
}
