package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("debug", &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.WithField("date", "2024-03-15").Debug("saved")
	out := buf.String()
	if !strings.Contains(out, "date=2024-03-15") || !strings.Contains(out, "msg=saved") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestNewFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("", &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected debug to be filtered at info, got %q", buf.String())
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New("loud", nil); err == nil {
		t.Fatalf("expected error for invalid level")
	}
}

func TestRotatingCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "reflect.log")
	w, err := Rotating(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := w.Write([]byte("line\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "line\n" {
		t.Fatalf("unexpected content %q", b)
	}
}
