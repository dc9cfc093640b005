package logging

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, Options{Level: "warn", Prefix: "test"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Info("hidden")
	l.Warn("shown", "score", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "score=3") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, Options{Level: "loud"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shoot.log")
	l, closer, err := OpenFile(path, Options{Level: "debug"})
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	l.Debug("hello")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	l, closer, err = OpenFile("", Options{})
	if err != nil || l == nil {
		t.Fatalf("OpenFile empty = %v, %v", l, err)
	}
	_ = closer.Close()
}
