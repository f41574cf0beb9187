package timeutil

import (
	"testing"
	"time"

	"tableflip.dev/reflect/pkg/day"
)

func TestParseWindowDefault(t *testing.T) {
	w, label, err := ParseWindow("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != (Window{Days: 7}) {
		t.Fatalf("expected one week, got %+v", w)
	}
	if label != "1w" {
		t.Fatalf("expected label 1w, got %s", label)
	}
}

func TestParseWindowComposite(t *testing.T) {
	w, label, err := ParseWindow("1y2m1w9d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != (Window{Months: 14, Days: 16}) {
		t.Fatalf("unexpected window %+v", w)
	}
	if label != "1y2m2w2d" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseWindowInvalid(t *testing.T) {
	for _, in := range []string{"noop", "3h", "0d", "2"} {
		if _, _, err := ParseWindow(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestWindowSinceIncludesUntil(t *testing.T) {
	until := day.New(2024, time.March, 15)
	w := Window{Days: 7}
	if got := w.Since(until); got != day.New(2024, time.March, 9) {
		t.Fatalf("unexpected start %s", got)
	}
	if !w.Contains(until, until) || !w.Contains(day.New(2024, time.March, 9), until) {
		t.Fatalf("window should include both ends")
	}
	if w.Contains(day.New(2024, time.March, 8), until) || w.Contains(until.Next(), until) {
		t.Fatalf("window should exclude days outside it")
	}
}

func TestWindowMonths(t *testing.T) {
	until := day.New(2024, time.March, 31)
	if got := (Window{Months: 1}).Since(until); got != day.New(2024, time.March, 3) {
		t.Fatalf("unexpected start %s", got)
	}
}
